package filesystem

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("write %s: %v", rel, err)
		}
	}
}

func TestOSFileSystem_Open(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"cover.png": "png"})
	fs := NewOSFileSystem()

	d, err := fs.Open(dir)
	if err != nil {
		t.Fatalf("Open(%q) error = %v", dir, err)
	}
	absDir, _ := filepath.Abs(dir)
	if d.Path() != filepath.ToSlash(absDir) {
		t.Errorf("directory.Path() = %q, want %q", d.Path(), absDir)
	}

	if _, err := fs.Open(filepath.Join(dir, "missing")); err == nil {
		t.Error("Open(missing) should return error")
	}
	if _, err := fs.Open(filepath.Join(dir, "cover.png")); err == nil {
		t.Error("Open(file) should return error")
	}
}

func TestOSFileSystem_StatAndRead(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"blog/post.md": "# Post"})
	fs := NewOSFileSystem()

	data, err := fs.ReadFile(filepath.Join(dir, "blog", "post.md"))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "# Post" {
		t.Errorf("ReadFile() = %q", data)
	}

	info, err := fs.Stat(filepath.Join(dir, "blog"))
	if err != nil || !info.IsDir() {
		t.Errorf("Stat(blog) = %v, %v; want a directory", info, err)
	}

	_, err = fs.Stat(filepath.Join(dir, "nope"))
	if !IsNotExist(err) {
		t.Errorf("Stat(nope) error = %v, want not-exist", err)
	}
}

func TestOSFileSystem_ReadDirSorted(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"c.png": "", "a.png": "", "b/x.png": ""})

	infos, err := NewOSFileSystem().ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	var names []string
	for _, info := range infos {
		names = append(names, info.Name())
	}
	want := []string{"a.png", "b", "c.png"}
	if len(names) != len(want) {
		t.Fatalf("ReadDir() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("ReadDir()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestOSFileSystem_Walk(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.png":       "a",
		"sub/b.png":   "b",
		"skip/c.png":  "c",
		"sub/d/e.png": "e",
	})

	d, err := NewOSFileSystem().Open(dir)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	var files []string
	err = d.Walk(func(f File, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if f.Info().IsDir() && f.RelativePath() == "skip" {
			return filepath.SkipDir
		}
		if !f.Info().IsDir() {
			files = append(files, f.RelativePath())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	want := []string{"a.png", "sub/b.png", "sub/d/e.png"}
	if len(files) != len(want) {
		t.Fatalf("Walk found %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("Walk()[%d] = %q, want %q", i, files[i], want[i])
		}
	}
}

func TestIsFile(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"x/y.txt": "y"})
	fs := NewOSFileSystem()

	tests := map[string]bool{
		filepath.Join(dir, "x", "y.txt"): true,
		filepath.Join(dir, "x"):          false,
		filepath.Join(dir, "missing"):    false,
	}
	for p, want := range tests {
		got, err := IsFile(fs, p)
		if err != nil {
			t.Fatalf("IsFile(%q) error = %v", p, err)
		}
		if got != want {
			t.Errorf("IsFile(%q) = %v, want %v", p, got, want)
		}
	}
}
