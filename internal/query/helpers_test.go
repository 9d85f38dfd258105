package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vvka-141/contree/internal/tree"
	"github.com/vvka-141/contree/pkg/contree"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func dayPtr(s string) *time.Time {
	t := day(s)
	return &t
}

// testSite builds:
//
//	/                 depth 0
//	/blog             depth 1, tag [a b], two files
//	/blog/first       depth 2, tag [a]
//	/blog/second      depth 2, tag [b], unpublished
//	/about            depth 1, hidden, modular
func testSite(t *testing.T) *tree.Tree {
	t.Helper()
	tr := tree.New()

	blog, err := tr.Add(tr.Root(), "blog")
	require.NoError(t, err)
	blog.FilesystemPath = "/site/blog"
	blog.Modified = day("2024-03-01")
	blog.Settings.Title = "Blog"
	blog.Settings.Taxonomy = map[string][]string{"tag": {"a", "b"}}
	blog.AddFile("cover.jpg", contree.File{Pathname: "/blog/cover.jpg", Type: contree.TypeImage})
	blog.AddFile("doc.pdf", contree.File{Pathname: "/blog/doc.pdf", Type: contree.TypeDocument})

	first, err := tr.Add(blog.ID, "first")
	require.NoError(t, err)
	first.FilesystemPath = "/site/blog/first"
	first.Modified = day("2024-01-15")
	first.RawContent = "Hello world"
	first.Settings.Title = "First"
	first.Settings.Date = dayPtr("2024-01-01")
	first.Settings.PublishDate = dayPtr("2024-02-01")
	first.Settings.Taxonomy = map[string][]string{"tag": {"a"}}
	first.Settings.Extra = map[string]any{"rating": 5, "author": "Zed"}

	second, err := tr.Add(blog.ID, "second")
	require.NoError(t, err)
	second.FilesystemPath = "/site/blog/second"
	second.RawContent = "Other things"
	second.Settings.Title = "second"
	second.Settings.Published = false
	second.Settings.Taxonomy = map[string][]string{"tag": {"b"}}
	second.Settings.Extra = map[string]any{"rating": 2, "author": "amy"}

	about, err := tr.Add(tr.Root(), "about")
	require.NoError(t, err)
	about.FilesystemPath = "/site/about"
	about.Modified = day("2023-06-01")
	about.Settings.Date = dayPtr("2024-01-01")
	about.Settings.PublishDate = dayPtr("2024-01-10")
	about.Settings.Type = "modular"
	about.Settings.Visible = false
	about.Settings.Modular = true

	return tr
}

func pagePaths(nodes []*tree.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Path
	}
	return out
}

// run executes f and returns the page paths.
func run(t *testing.T, f *Finder) []string {
	t.Helper()
	pages, err := f.Pages()
	require.NoError(t, err)
	return pagePaths(pages)
}
