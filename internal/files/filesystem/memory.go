package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry is a file or directory stored by MemoryFileSystem
type memoryEntry struct {
	absPath string
	content []byte
	info    *memoryFileInfo
}

// memoryFile is an entry seen from a walked directory
type memoryFile struct {
	entry   *memoryEntry
	relPath string
}

func (f *memoryFile) Path() string         { return f.entry.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.entry.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	return f.entry.content, nil
}

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.entriesUnder(d.absPath)

	var skipped []string
	for _, entry := range entries {
		if isBelowAny(entry.absPath, skipped) {
			continue
		}

		relPath := "."
		if entry.absPath != d.absPath {
			relPath = strings.TrimPrefix(entry.absPath, strings.TrimSuffix(d.absPath, "/")+"/")
		}

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()

			callbackErr = fn(&memoryFile{entry: entry, relPath: relPath}, nil)
		}()

		if errors.Is(callbackErr, fs.SkipDir) && entry.info.isDir {
			skipped = append(skipped, entry.absPath)
			continue
		}
		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

func isBelowAny(p string, dirs []string) bool {
	for _, dir := range dirs {
		if strings.HasPrefix(p, strings.TrimSuffix(dir, "/")+"/") {
			return true
		}
	}
	return false
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing
type MemoryFileSystem struct {
	entries map[string]*memoryEntry // absolute path -> entry
	root    string
	now     func() time.Time
}

// NewMemoryFileSystem creates a new in-memory filesystem rooted at root.
// Relative paths given to its methods are resolved against root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean("/" + filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
		now:     time.Now,
	}
	mfs.addDir(root)

	return mfs
}

// Root returns the root directory of the filesystem.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, mfs.now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	absPath := mfs.resolve(filePath)
	contentBytes := []byte(content)

	mfs.entries[absPath] = &memoryEntry{
		absPath: absPath,
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: modTime,
		},
	}
	mfs.ensureDirectoriesExist(path.Dir(absPath))
}

// AddDir adds an empty directory and its parents.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.ensureDirectoriesExist(mfs.resolve(dirPath))
}

func (mfs *MemoryFileSystem) addDir(dir string) {
	mfs.entries[dir] = &memoryEntry{
		absPath: dir,
		info: &memoryFileInfo{
			name:    path.Base(dir),
			mode:    0755 | fs.ModeDir,
			modTime: mfs.now(),
			isDir:   true,
		},
	}
}

// ensureDirectoriesExist creates directory entries for dir and all of its parents
func (mfs *MemoryFileSystem) ensureDirectoriesExist(dir string) {
	for {
		if _, exists := mfs.entries[dir]; exists {
			return
		}
		mfs.addDir(dir)
		if dir == "/" {
			return
		}
		dir = path.Dir(dir)
	}
}

// resolve maps a provider path onto an absolute, cleaned virtual path
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// entriesUnder returns basePath and everything below it in walk order
func (mfs *MemoryFileSystem) entriesUnder(basePath string) []*memoryEntry {
	prefix := strings.TrimSuffix(basePath, "/") + "/"

	var entries []*memoryEntry
	for p, entry := range mfs.entries {
		if p == basePath || strings.HasPrefix(p, prefix) {
			entries = append(entries, entry)
		}
	}

	// segment-wise order matches filepath.WalkDir ("a", "a/b", "a.txt")
	slices.SortFunc(entries, func(a, b *memoryEntry) int {
		return slices.Compare(strings.Split(a.absPath, "/"), strings.Split(b.absPath, "/"))
	})
	return entries
}

func (mfs *MemoryFileSystem) lookup(p string) (*memoryEntry, error) {
	entry, exists := mfs.entries[mfs.resolve(p)]
	if !exists {
		return nil, fmt.Errorf("%s: %w", p, fs.ErrNotExist)
	}
	return entry, nil
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	entry, err := mfs.lookup(openPath)
	if err != nil {
		return nil, fmt.Errorf("directory not found: %w", err)
	}
	if !entry.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	return &memoryDirectory{absPath: entry.absPath, fs: mfs}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	entry, err := mfs.lookup(filePath)
	if err != nil {
		return nil, fmt.Errorf("file not found: %w", err)
	}
	if entry.info.isDir {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return entry.content, nil
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	dir, err := mfs.lookup(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}
	if !dir.info.isDir {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for p, entry := range mfs.entries {
		if p != dir.absPath && path.Dir(p) == dir.absPath {
			result = append(result, entry.info)
		}
	}
	slices.SortFunc(result, func(a, b FileInfo) int { return strings.Compare(a.Name(), b.Name()) })
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	entry, err := mfs.lookup(statPath)
	if err != nil {
		return nil, fmt.Errorf("path not found: %w", err)
	}
	return entry.info, nil
}

// Verify MemoryFileSystem implements FileSystemProvider at compile time
var _ FileSystemProvider = (*MemoryFileSystem)(nil)
