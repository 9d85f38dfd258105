package filesystem

import (
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkFiles(t *testing.T, d Directory) []string {
	t.Helper()
	var rels []string
	err := d.Walk(func(file File, err error) error {
		require.NoError(t, err)
		rels = append(rels, file.RelativePath())
		return nil
	})
	require.NoError(t, err)
	return rels
}

func TestMemoryFileSystem_Walk(t *testing.T) {
	mfs := NewMemoryFileSystem("/site")
	mfs.AddFile("a.txt", "a")
	mfs.AddFile("a/b.png", "b")
	mfs.AddFile("c/d/e.png", "e")

	dir, err := mfs.Open("/site")
	require.NoError(t, err)
	assert.Equal(t, []string{".", "a", "a/b.png", "a.txt", "c", "c/d", "c/d/e.png"}, walkFiles(t, dir))

	sub, err := mfs.Open("c")
	require.NoError(t, err)
	assert.Equal(t, []string{".", "d", "d/e.png"}, walkFiles(t, sub), "relative to the opened directory")
}

func TestMemoryFileSystem_WalkSkipDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/site")
	mfs.AddFile("keep/x.png", "x")
	mfs.AddFile("skip/y.png", "y")

	dir, err := mfs.Open(".")
	require.NoError(t, err)

	var seen []string
	err = dir.Walk(func(file File, err error) error {
		if file.Info().IsDir() && file.RelativePath() == "skip" {
			return fs.SkipDir
		}
		seen = append(seen, file.RelativePath())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{".", "keep", "keep/x.png"}, seen)
}

func TestMemoryFileSystem_WalkRecoversPanic(t *testing.T) {
	mfs := NewMemoryFileSystem("/site")
	mfs.AddFile("boom.txt", "")
	dir, err := mfs.Open(".")
	require.NoError(t, err)

	err = dir.Walk(func(file File, err error) error {
		if file.RelativePath() == "boom.txt" {
			panic("boom")
		}
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestMemoryFileSystem_ReadStat(t *testing.T) {
	mfs := NewMemoryFileSystem("/site")
	modTime := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	mfs.AddFileWithTime("blog/post.md", "# Post", modTime)
	mfs.AddDir("empty")

	content, err := mfs.ReadFile("/site/blog/post.md")
	require.NoError(t, err)
	assert.Equal(t, "# Post", string(content))

	info, err := mfs.Stat("blog/post.md")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, "post.md", info.Name())
	assert.Equal(t, modTime, info.ModTime())

	info, err = mfs.Stat("empty")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = mfs.Stat("missing")
	assert.True(t, IsNotExist(err))
	_, err = mfs.ReadFile("blog")
	assert.Error(t, err)
	_, err = mfs.Open("blog/post.md")
	assert.Error(t, err)
}

func TestMemoryFileSystem_ReadDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/site")
	mfs.AddFile("b.png", "")
	mfs.AddFile("a.png", "")
	mfs.AddFile("dir/deep.png", "")

	infos, err := mfs.ReadDir(".")
	require.NoError(t, err)
	var names []string
	for _, info := range infos {
		names = append(names, info.Name())
	}
	assert.Equal(t, []string{"a.png", "b.png", "dir"}, names)
}
