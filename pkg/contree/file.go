package contree

import "strings"

// Content-type tags assigned to files by the file factory.
const (
	TypeFile     = "file"
	TypeImage    = "image"
	TypeDocument = "document"
	TypeVideo    = "video"
	TypeAudio    = "audio"
)

// File is an addressable leaf resource found on the filesystem or attached to a page.
// Files are value objects; the core only consumes and returns them.
type File struct {
	// Pathname is the path relative to the factory base directory, always prefixed with "/".
	Pathname string `json:"pathname" yaml:"pathname"`

	// Type is the content-type tag (see TypeImage, TypeDocument, ...).
	Type string `json:"type" yaml:"type"`

	// Metadata is the free-form metadata bag read from the sidecar file, if any.
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Name returns the last segment of the pathname.
func (f File) Name() string {
	return f.Pathname[strings.LastIndex(f.Pathname, "/")+1:]
}

// FileFactory creates File values for pathnames relative to its base directory.
type FileFactory interface {
	// CreateFile builds the File for a "/"-prefixed pathname relative to BasePath.
	CreateFile(pathname string) (File, error)

	// BasePath returns the directory all pathnames are relative to.
	BasePath() string
}
