// Package navtree собирает плоский список строк navigation_items в дерево меню.
//
// Вход уже отфильтрован (visible = true) и отсортирован по display_order, поэтому
// порядок строк на входе и есть порядок в меню. Builder ничего не пересортировывает.
package navtree

import (
	"strings"

	"portfolio/internal/models"
)

// RenderDepth: сколько уровней подпунктов отдаёт шапка сайта.
const RenderDepth = 1

type node struct {
	item     models.NavigationItem
	children []int
}

// Tree: арена узлов меню. Связи родитель→дети хранятся индексами в nodes.
type Tree struct {
	nodes []node
	roots []int
}

// New строит арену за два прохода. Первый проход индексирует строки по id,
// второй раскладывает их: строка с найденным родителем становится его ребёнком,
// остальные (без родителя или с родителем, которого нет во входе): корнями.
// Так скрытый родитель не прячет своих детей, а поднимает их на верхний уровень.
func New(items []models.NavigationItem) *Tree {
	t := &Tree{nodes: make([]node, len(items))}
	index := make(map[string]int, len(items))
	for i, it := range items {
		t.nodes[i] = node{item: it}
		index[it.ID] = i
	}

	for i, it := range items {
		if it.IsTopLevel() {
			t.roots = append(t.roots, i)
			continue
		}
		p, ok := index[*it.ParentID]
		if !ok {
			t.roots = append(t.roots, i)
			continue
		}
		t.nodes[p].children = append(t.nodes[p].children, i)
	}
	return t
}

// Len: число строк в арене.
func (t *Tree) Len() int { return len(t.nodes) }

// RootCount: число элементов верхнего уровня.
func (t *Tree) RootCount() int { return len(t.roots) }

// Nodes материализует дерево. depth: сколько уровней подпунктов включить;
// depth <= 0 означает без ограничения. Subpages никогда не nil.
func (t *Tree) Nodes(depth int) []models.NavNode {
	out := make([]models.NavNode, 0, len(t.roots))
	for _, r := range t.roots {
		out = append(out, t.materialize(r, depth, 0))
	}
	return out
}

func (t *Tree) materialize(i, depth, level int) models.NavNode {
	n := t.nodes[i]
	nav := models.NavNode{
		ID:       n.item.ID,
		Label:    n.item.Label,
		Path:     n.item.Path,
		Icon:     n.item.Icon,
		Subpages: []models.NavNode{},
	}
	if depth > 0 && level >= depth {
		return nav
	}
	// каждый узел попадает в арену ровно одному родителю, поэтому обход от корней конечен
	for _, c := range n.children {
		nav.Subpages = append(nav.Subpages, t.materialize(c, depth, level+1))
	}
	return nav
}

// Build собирает публичное меню: корни и один уровень подпунктов.
func Build(items []models.NavigationItem) []models.NavNode {
	return New(items).Nodes(RenderDepth)
}

// MarkActive возвращает копию дерева, где Active выставлен у пунктов,
// чей path совпадает с currentPath или является его префиксом по границе "/".
func MarkActive(nodes []models.NavNode, currentPath string) []models.NavNode {
	if currentPath == "" {
		currentPath = "/"
	}
	out := make([]models.NavNode, len(nodes))
	for i, n := range nodes {
		n.Subpages = MarkActive(n.Subpages, currentPath)
		n.Active = isActive(n.Path, currentPath)
		out[i] = n
	}
	return out
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "/" {
		return currentPath == "/"
	}
	if currentPath == itemPath {
		return true
	}
	return strings.HasPrefix(currentPath, strings.TrimSuffix(itemPath, "/")+"/")
}
