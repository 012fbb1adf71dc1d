package navtree

import (
	"fmt"
	"math/rand"
	"testing"

	"portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(id, label, path string, parent string) models.NavigationItem {
	it := models.NavigationItem{ID: id, Label: label, Path: path, Visible: true}
	if parent != "" {
		p := parent
		it.ParentID = &p
	}
	return it
}

func TestBuild_ParentWithChild(t *testing.T) {
	rows := []models.NavigationItem{
		item("1", "Projects", "/projects", ""),
		item("2", "Software", "/projects/software", "1"),
	}

	got := Build(rows)

	require.Len(t, got, 1)
	assert.Equal(t, "Projects", got[0].Label)
	assert.Equal(t, "/projects", got[0].Path)
	require.Len(t, got[0].Subpages, 1)
	assert.Equal(t, "Software", got[0].Subpages[0].Label)
	assert.Equal(t, "/projects/software", got[0].Subpages[0].Path)
	assert.Empty(t, got[0].Subpages[0].Subpages)
}

func TestBuild_OrphanIsPromoted(t *testing.T) {
	rows := []models.NavigationItem{
		item("2", "Software", "/projects/software", "1"),
	}

	got := Build(rows)

	require.Len(t, got, 1)
	assert.Equal(t, "Software", got[0].Label)
	assert.NotNil(t, got[0].Subpages)
	assert.Empty(t, got[0].Subpages)
}

func TestBuild_EmptyInput(t *testing.T) {
	got := Build(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBuild_KeepsArrivalOrder(t *testing.T) {
	rows := []models.NavigationItem{
		item("c", "Research", "/research", ""),
		item("a", "Projects", "/projects", ""),
		item("a2", "Hardware", "/projects/hardware", "a"),
		item("b", "About", "/about", ""),
		item("a1", "Software", "/projects/software", "a"),
		item("c1", "Papers", "/research/papers", "c"),
	}

	got := Build(rows)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"Research", "Projects", "About"}, labels(got))
	assert.Equal(t, []string{"Hardware", "Software"}, labels(got[1].Subpages))
	assert.Equal(t, []string{"Papers"}, labels(got[0].Subpages))
}

func TestBuild_ChildBeforeParentInInput(t *testing.T) {
	rows := []models.NavigationItem{
		item("2", "Software", "/projects/software", "1"),
		item("1", "Projects", "/projects", ""),
	}

	got := Build(rows)

	require.Len(t, got, 1)
	assert.Equal(t, "Projects", got[0].Label)
	assert.Equal(t, []string{"Software"}, labels(got[0].Subpages))
}

func TestBuild_GrandchildrenNotRendered(t *testing.T) {
	rows := []models.NavigationItem{
		item("1", "Projects", "/projects", ""),
		item("2", "Software", "/projects/software", "1"),
		item("3", "Compilers", "/projects/software/compilers", "2"),
	}

	got := Build(rows)
	require.Len(t, got, 1)
	require.Len(t, got[0].Subpages, 1)
	assert.Empty(t, got[0].Subpages[0].Subpages)

	full := New(rows).Nodes(0)
	require.Len(t, full[0].Subpages[0].Subpages, 1)
	assert.Equal(t, "Compilers", full[0].Subpages[0].Subpages[0].Label)
}

func TestBuild_CycleHasNoEffectOnRoots(t *testing.T) {
	rows := []models.NavigationItem{
		item("root", "Home", "/", ""),
		item("x", "X", "/x", "y"),
		item("y", "Y", "/y", "x"),
	}

	got := Build(rows)
	assert.Equal(t, []string{"Home"}, labels(got))
}

func TestBuild_Idempotent(t *testing.T) {
	rows := randomRows(rand.New(rand.NewSource(7)), 40)
	assert.Equal(t, Build(rows), Build(rows))
}

// Каждая строка с родителем во входе: ровно один раз в subpages этого родителя,
// остальные строки: ровно один раз на верхнем уровне.
func TestBuild_WellFormed(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		rows := randomRows(rng, 1+rng.Intn(30))
		present := map[string]bool{}
		for _, r := range rows {
			present[r.ID] = true
		}

		got := Build(rows)

		var wantRoots []string
		wantChildren := map[string][]string{}
		for _, r := range rows {
			if r.ParentID != nil && present[*r.ParentID] {
				wantChildren[*r.ParentID] = append(wantChildren[*r.ParentID], r.ID)
				continue
			}
			wantRoots = append(wantRoots, r.ID)
		}

		require.Equal(t, wantRoots, ids(got), "round %d", round)
		for _, n := range got {
			assert.Equal(t, wantChildren[n.ID], nilIfEmpty(ids(n.Subpages)), "round %d node %s", round, n.ID)
		}
	}
}

func TestTreeCounts(t *testing.T) {
	rows := []models.NavigationItem{
		item("1", "Projects", "/projects", ""),
		item("2", "Software", "/projects/software", "1"),
		item("3", "About", "/about", ""),
	}
	tree := New(rows)
	assert.Equal(t, 3, tree.Len())
	assert.Equal(t, 2, tree.RootCount())
}

func TestMarkActive(t *testing.T) {
	nodes := Build([]models.NavigationItem{
		item("0", "Home", "/", ""),
		item("1", "Projects", "/projects", ""),
		item("2", "Software", "/projects/software", "1"),
		item("3", "Projector", "/projector", ""),
	})

	got := MarkActive(nodes, "/projects/software/compilers")

	assert.False(t, got[0].Active, "home matches only itself")
	assert.True(t, got[1].Active)
	assert.True(t, got[1].Subpages[0].Active)
	assert.False(t, got[2].Active, "prefix must stop at a path boundary")
	assert.False(t, nodes[1].Active, "input is not mutated")

	home := MarkActive(nodes, "")
	assert.True(t, home[0].Active)
}

func randomRows(rng *rand.Rand, n int) []models.NavigationItem {
	rows := make([]models.NavigationItem, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("n%d", i)
		parent := ""
		switch rng.Intn(3) {
		case 0:
		case 1:
			// родитель, который может отсутствовать во входе (скрытый)
			parent = fmt.Sprintf("n%d", rng.Intn(n+5))
		case 2:
			if i > 0 {
				parent = fmt.Sprintf("n%d", rng.Intn(i))
			}
		}
		if parent == id {
			parent = ""
		}
		rows = append(rows, item(id, "L"+id, "/"+id, parent))
	}
	// только один уровень вложенности читается, поэтому у детей детей не оставляем
	isChild := map[string]bool{}
	for _, r := range rows {
		if r.ParentID != nil {
			isChild[r.ID] = true
		}
	}
	for i := range rows {
		if rows[i].ParentID != nil && isChild[*rows[i].ParentID] {
			rows[i].ParentID = nil
		}
	}
	return rows
}

func labels(nodes []models.NavNode) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Label)
	}
	return out
}

func ids(nodes []models.NavNode) []string {
	var out []string
	for _, n := range nodes {
		out = append(out, n.ID)
	}
	return out
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}
