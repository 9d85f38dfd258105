package resolver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/contree/internal/files/factory"
	"github.com/vvka-141/contree/internal/logging"
	"github.com/vvka-141/contree/internal/paths"
	"github.com/vvka-141/contree/internal/testing/fixtures"
	"github.com/vvka-141/contree/pkg/contree"
)

func newTestFilesystem() *Filesystem {
	fs := fixtures.StandardSite()
	return NewFilesystem(fs, factory.New(fs, "/site", ""), logging.NewNullLogger())
}

func pathnames(files []contree.File) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.Pathname
	}
	return out
}

func TestFilesystem_Get(t *testing.T) {
	r := newTestFilesystem()

	tests := []struct {
		name     string
		path     string
		parent   string
		expected string // empty means no file
	}{
		{"root file", "root_file1.png", "", "/root_file1.png"},
		{"missing file", "nope.png", "", ""},
		{"nested", "images/a.png", "", "/images/a.png"},
		{"relative to parent", "a.png", "images", "/images/a.png"},
		{"parent reference borrows from parent", "../a.png", "images/nested", "/images/a.png"},
		{"absolute ignores parent", "/root_file1.png", "images", "/root_file1.png"},
		{"directory is not a file", "images", "", ""},
		{"directory path", "images/", "", ""},
		{"sidecar never addressable", "root_file2.png.meta.yaml", "", ""},
		{"glob never resolves through get", "root_file?.png", "", ""},
		{"regex never resolves through get", "#root_file1#", "", ""},
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

func TestFilesystem_GetMetadata(t *testing.T) {
	r := newTestFilesystem()

	file, err := r.Get(paths.Parse("root_file2.png"), paths.Path{})
	require.NoError(t, err)
	require.NotNil(t, file)
	assert.Equal(t, contree.TypeImage, file.Type)
	assert.Equal(t, "Second", file.Metadata["alt"])
}

func TestFilesystem_GetTraversal(t *testing.T) {
	r := newTestFilesystem()

	_, err := r.Get(paths.Parse("../file.ext"), paths.Path{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, contree.ErrTraversal))

	_, err = r.Find(paths.Parse("../../*.png"), paths.Parse("images"))
	assert.True(t, errors.Is(err, contree.ErrTraversal))
}

func TestFilesystem_Find(t *testing.T) {
	r := newTestFilesystem()

	tests := []struct {
		name     string
		path     string
		parent   string
		expected []string
	}{
		{"question mark", "file?.png", "", []string{"/file1.png", "/file2.png"}},
		{"star", "root_*", "", []string{"/root_file1.png", "/root_file2.png"}},
		{"braces", "file{1,10}.png", "", []string{"/file1.png", "/file10.png"}},
		{"hoisted static prefix", "images/*.png", "", []string{"/images/a.png"}},
		{"relative to parent", "*.png", "images", []string{"/images/a.png"}},
		{"glob directory segment", "*/*.png", "", []string{"/images/a.png"}},
		{"parent reference", "../*.jpg", "images/nested", []string{"/images/b.jpg"}},
		{"absolute ignores parent", "/file?.png", "images", []string{"/file1.png", "/file2.png"}},
		{"directory lists files", "images/", "", []string{"/images/a.png", "/images/b.jpg"}},
		{"literal", "file1.png", "", []string{"/file1.png"}},
		{"regex is unanchored and recursive", "#\\.png$#", "images", []string{"/images/a.png", "/images/nested/c.png"}},
		{"regex flags", "/A\\.PNG$/i", "images", []string{"/images/a.png"}},
		{"no match", "*.gif", "", []string{}},
		{"missing parent", "*.png", "nowhere", []string{}},
		{"sidecars excluded", "root_file2*", "", []string{"/root_file2.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := r.Find(paths.Parse(tt.path), paths.Parse(tt.parent))
			require.NoError(t, err)
			require.NotNil(t, files)
			assert.Equal(t, tt.expected, pathnames(files))
		})
	}
}

func TestNewFilesystem_NilArgs(t *testing.T) {
	fs := fixtures.StandardSite()
	files := factory.New(fs, "/site", "")
	logger := logging.NewNullLogger()

	assert.Panics(t, func() { NewFilesystem(nil, files, logger) })
	assert.Panics(t, func() { NewFilesystem(fs, nil, logger) })
	assert.Panics(t, func() { NewFilesystem(fs, files, nil) })
}
