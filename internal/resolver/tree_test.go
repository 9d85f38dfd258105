package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/contree/internal/logging"
	"github.com/vvka-141/contree/internal/paths"
	"github.com/vvka-141/contree/internal/tree"
	"github.com/vvka-141/contree/pkg/contree"
)

func newTestTree(t *testing.T) *Tree {
	t.Helper()
	tr := tree.New()
	root := tr.Get(tr.Root())
	root.AddFile("logo.png", contree.File{Pathname: "/logo.png", Type: contree.TypeImage})

	a, err := tr.Add(tr.Root(), "a")
	require.NoError(t, err)
	a.AddFile("b/c.png", contree.File{Pathname: "/a/b/c.png", Type: contree.TypeImage})

	b, err := tr.Add(a.ID, "b")
	require.NoError(t, err)
	b.AddFile("d.png", contree.File{Pathname: "/a/b/d.png", Type: contree.TypeImage})

	return NewTree(tree.NewRepository(tr), logging.NewNullLogger())
}

func TestTree_Get(t *testing.T) {
	r := newTestTree(t)

	tests := []struct {
		name     string
		path     string
		parent   string
		expected string
	}{
		{"file of deepest page", "a/b/d.png", "", "/a/b/d.png"},
		{"file keyed with sub-path on ancestor", "a/b/c.png", "", "/a/b/c.png"},
		{"root file", "logo.png", "", "/logo.png"},
		{"root file through full path", "/logo.png", "a/b", "/logo.png"},
		{"relative to parent", "d.png", "a/b", "/a/b/d.png"},
		{"parent reference", "../b/d.png", "a/b", "/a/b/d.png"},
		{"missing", "a/b/zzz.png", "", ""},
		{"directory has no file part", "a/b/", "", ""},
		{"regex", "#d\\.png#", "", ""},
		{"page without file walks up to nothing", "a/x/y.png", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := r.Get(paths.Parse(tt.path), paths.Parse(tt.parent))
			require.NoError(t, err)
			if tt.expected == "" {
				assert.Nil(t, file)
				return
			}
			require.NotNil(t, file)
			assert.Equal(t, tt.expected, file.Pathname)
		})
	}
}

func TestTree_GetTraversal(t *testing.T) {
	r := newTestTree(t)

	_, err := r.Get(paths.Parse("../../x.png"), paths.Parse("a"))
	assert.True(t, errors.Is(err, contree.ErrTraversal))
}
