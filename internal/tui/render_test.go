package tui

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/contree/internal/tree"
	"github.com/vvka-141/contree/pkg/contree"
)

func TestRenderer_Files(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)

	r.Files([]contree.File{
		{Pathname: "/a.png", Type: contree.TypeImage, Metadata: map[string]any{"title": "A", "alt": "x"}},
		{Pathname: "/b.pdf", Type: contree.TypeDocument},
	})

	assert.Equal(t, "→ /a.png  image  alt=x  title=A\n→ /b.pdf  document\n2 files\n", buf.String())
}

func TestRenderer_Page(t *testing.T) {
	tr := tree.New()
	blog, err := tr.Add(tr.Root(), "blog")
	require.NoError(t, err)
	blog.Settings.Title = "Blog"
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	blog.Settings.Date = &date

	var buf bytes.Buffer
	r := NewRenderer(&buf, false)
	r.Page(blog, 1)
	r.Summary(1, "page", "pages")

	assert.Equal(t, "  • /blog  Blog  [page]  2024-03-01\n1 page\n", buf.String())
}

func TestRenderer_NotFoundAndCount(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)
	r.NotFound("x.png")
	r.Count(7)

	assert.Equal(t, "✗ no match for x.png\n7\n", buf.String())
}

func TestNewRenderer_NilWriter(t *testing.T) {
	assert.Panics(t, func() { NewRenderer(nil, false) })
}
