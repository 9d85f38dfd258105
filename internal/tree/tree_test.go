package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/contree/pkg/contree"
)

func buildTree(t *testing.T) *Tree {
	t.Helper()
	tr := New()
	blog, err := tr.Add(tr.Root(), "blog")
	require.NoError(t, err)
	_, err = tr.Add(blog.ID, "first")
	require.NoError(t, err)
	_, err = tr.Add(blog.ID, "second")
	require.NoError(t, err)
	_, err = tr.Add(tr.Root(), "about")
	require.NoError(t, err)
	return tr
}

func TestTree_Add(t *testing.T) {
	tr := buildTree(t)

	assert.Equal(t, 5, tr.Len())
	root := tr.Get(tr.Root())
	require.NotNil(t, root)
	assert.Equal(t, "/", root.Path)
	assert.Equal(t, NoNode, root.Parent)

	names := func(nodes []*Node) []string {
		var out []string
		for _, n := range nodes {
			out = append(out, n.Path)
		}
		return out
	}
	assert.Equal(t, []string{"/blog", "/about"}, names(tr.Children(tr.Root())))
	assert.Equal(t, []string{"/blog/first", "/blog/second"}, names(tr.Children(1)))
}

func TestTree_AddErrors(t *testing.T) {
	tr := buildTree(t)

	tests := []struct {
		name   string
		parent NodeID
		child  string
	}{
		{"missing parent", 99, "x"},
		{"empty name", tr.Root(), ""},
		{"slash in name", tr.Root(), "a/b"},
		{"parent reference", tr.Root(), ".."},
		{"duplicate", tr.Root(), "blog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tr.Add(tt.parent, tt.child)
			assert.Error(t, err)
		})
	}
}

func TestTree_ParentAndDepth(t *testing.T) {
	tr := buildTree(t)

	assert.Nil(t, tr.Parent(tr.Root()))
	assert.Equal(t, "/blog", tr.Parent(2).Path)
	assert.Equal(t, 0, tr.Depth(tr.Root()))
	assert.Equal(t, 1, tr.Depth(1))
	assert.Equal(t, 2, tr.Depth(2))
	assert.Nil(t, tr.Get(NoNode))
}

func TestTree_WalkPreOrder(t *testing.T) {
	tr := buildTree(t)

	var visited []string
	var depths []int
	tr.Walk(tr.Root(), func(n *Node, depth int) bool {
		visited = append(visited, n.Path)
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []string{"/", "/blog", "/blog/first", "/blog/second", "/about"}, visited)
	assert.Equal(t, []int{0, 1, 2, 2, 1}, depths)

	visited = nil
	tr.Walk(tr.Root(), func(n *Node, _ int) bool {
		visited = append(visited, n.Path)
		return n.Path != "/blog/first"
	})
	assert.Equal(t, []string{"/", "/blog", "/blog/first"}, visited)
}

func TestNode_Defaults(t *testing.T) {
	tr := buildTree(t)
	n := tr.Get(1)

	assert.Equal(t, "blog", n.Slug())
	assert.Equal(t, "blog", n.Title())
	assert.Equal(t, DefaultContentType, n.ContentType())
	assert.True(t, n.Settings.Visible)
	assert.True(t, n.Settings.Published)
	assert.Nil(t, n.Date())

	n.Settings.Slug = "news"
	n.Settings.Title = "News"
	assert.Equal(t, "news", n.Slug())
	assert.Equal(t, "News", n.Title())
}

func TestNode_UIDStable(t *testing.T) {
	a := buildTree(t).Get(2)
	b := buildTree(t).Get(2)
	assert.Equal(t, a.UID, b.UID)
	assert.NotEqual(t, a.UID, buildTree(t).Get(3).UID)
}

func TestNode_Files(t *testing.T) {
	n := New().Get(0)
	n.AddFile("cover.png", contree.File{Pathname: "/cover.png", Type: contree.TypeImage})
	n.AddFile("gallery/b.png", contree.File{Pathname: "/gallery/b.png", Type: contree.TypeImage})
	n.AddFile("manual.pdf", contree.File{Pathname: "/manual.pdf", Type: contree.TypeDocument})
	n.AddFile("cover.png", contree.File{Pathname: "/cover.png", Type: contree.TypeImage, Metadata: map[string]any{"alt": "x"}})

	assert.Len(t, n.Files(), 3)
	assert.Len(t, n.Images(), 2)
	assert.Len(t, n.Documents(), 1)

	f, ok := n.File("cover.png")
	require.True(t, ok)
	assert.Equal(t, "x", f.Metadata["alt"], "re-adding a key replaces the file")

	_, ok = n.File("missing.png")
	assert.False(t, ok)
}

func TestRepository_Lookup(t *testing.T) {
	tr := buildTree(t)
	repo := NewRepository(tr)

	n, ok := repo.Lookup("/blog/second")
	require.True(t, ok)
	assert.Equal(t, "second", n.Name)

	_, ok = repo.Lookup("/blog/third")
	assert.False(t, ok)

	_, err := tr.Add(1, "third")
	require.NoError(t, err)
	_, ok = repo.Lookup("/blog/third")
	assert.False(t, ok, "index is not rebuilt until invalidated")

	repo.Invalidate()
	_, ok = repo.Lookup("/blog/third")
	assert.True(t, ok)
}

func TestNewRepository_Nil(t *testing.T) {
	assert.Panics(t, func() { NewRepository(nil) })
}
