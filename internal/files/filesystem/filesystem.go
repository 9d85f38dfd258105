package filesystem

import (
	"errors"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// SkipDir is returned from a Walk callback to skip the directory being visited.
var SkipDir = fs.SkipDir

// File represents an individual file or directory found while walking.
type File interface {
	// Path returns the provider path of the entry
	Path() string

	// RelativePath returns the slash-separated path relative to the walked directory.
	// The walked directory itself has relative path ".".
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the provider path of the directory
	Path() string

	// Walk visits the directory and everything below it in lexical order.
	// If fn returns fs.SkipDir for a directory, its contents are skipped.
	// Any other error stops the walk and is returned.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider gives read access to a tree of files.
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// ReadDir returns the entries directly inside path, sorted by name.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}

// IsNotExist reports whether err means the entry does not exist.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// IsFile reports whether path exists on provider and is a regular file.
// Errors other than a missing entry are returned.
func IsFile(provider FileSystemProvider, path string) (bool, error) {
	info, err := provider.Stat(path)
	if err != nil {
		if IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
