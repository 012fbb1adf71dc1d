package services

import (
	"context"
	"testing"

	"portfolio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_MarkdownIsSanitized(t *testing.T) {
	svc := NewPageService(&mockPageRepo{})

	html, err := svc.Render("# Uses\n\n<script>alert(1)</script>\n\n[site](https://example.com)")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1")
	assert.Contains(t, html, "Uses")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, `rel="nofollow"`)
}

func TestPublished(t *testing.T) {
	body := "Hello **world**"
	repo := &mockPageRepo{pages: []models.Page{
		{ID: "1", Slug: "uses", Title: "Uses", Body: &body, Published: true},
		{ID: "2", Slug: "draft", Title: "Draft", Published: false},
	}}
	svc := NewPageService(repo)
	ctx := context.Background()

	page, err := svc.Published(ctx, "uses")
	require.NoError(t, err)
	assert.Contains(t, page.BodyHTML, "<strong>world</strong>")

	_, err = svc.Published(ctx, "draft")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Published(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPageCreate_SlugConflict(t *testing.T) {
	svc := NewPageService(&mockPageRepo{})
	ctx := context.Background()

	p, err := svc.Create(ctx, models.PageRequest{Slug: "uses", Title: "Uses", Body: "x", MetaDescription: " tools "})
	require.NoError(t, err)
	require.NotNil(t, p.MetaDescription)
	assert.Equal(t, "tools", *p.MetaDescription)

	_, err = svc.Create(ctx, models.PageRequest{Slug: "uses", Title: "Again"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Update(ctx, p.ID, models.PageRequest{Slug: "uses", Title: "Renamed"})
	assert.NoError(t, err)
}

func TestPreview(t *testing.T) {
	page, err := NewPageService(&mockPageRepo{}).Preview(models.PageRequest{Slug: "x", Title: "X", Body: "*hi*"})
	require.NoError(t, err)
	assert.Contains(t, page.BodyHTML, "<em>hi</em>")
}
