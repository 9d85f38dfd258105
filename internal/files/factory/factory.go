// Package factory creates contree.File values for files found below a base directory.
package factory

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/vvka-141/contree/internal/files/filesystem"
	"github.com/vvka-141/contree/internal/metadata"
	"github.com/vvka-141/contree/pkg/contree"
)

// extensionTypes maps lowercase file extensions to content-type tags.
// Extensions not listed produce contree.TypeFile.
var extensionTypes = map[string]string{
	".png":  contree.TypeImage,
	".jpg":  contree.TypeImage,
	".jpeg": contree.TypeImage,
	".gif":  contree.TypeImage,
	".webp": contree.TypeImage,
	".svg":  contree.TypeImage,
	".avif": contree.TypeImage,
	".ico":  contree.TypeImage,

	".pdf":  contree.TypeDocument,
	".doc":  contree.TypeDocument,
	".docx": contree.TypeDocument,
	".odt":  contree.TypeDocument,
	".xls":  contree.TypeDocument,
	".xlsx": contree.TypeDocument,
	".ppt":  contree.TypeDocument,
	".pptx": contree.TypeDocument,
	".txt":  contree.TypeDocument,
	".md":   contree.TypeDocument,
	".csv":  contree.TypeDocument,

	".mp4":  contree.TypeVideo,
	".webm": contree.TypeVideo,
	".mov":  contree.TypeVideo,
	".mkv":  contree.TypeVideo,
	".avi":  contree.TypeVideo,

	".mp3":  contree.TypeAudio,
	".wav":  contree.TypeAudio,
	".ogg":  contree.TypeAudio,
	".flac": contree.TypeAudio,
	".m4a":  contree.TypeAudio,
}

// TypeOf returns the content-type tag for name based on its extension.
func TypeOf(name string) string {
	if t, ok := extensionTypes[strings.ToLower(path.Ext(name))]; ok {
		return t
	}
	return contree.TypeFile
}

// Factory builds files relative to a base directory and attaches sidecar metadata.
type Factory struct {
	basePath string
	reader   *metadata.Reader
}

// New creates a Factory reading sidecars through provider.
// An empty suffix selects contree.DefaultMetadataSuffix.
// Panics if provider is nil.
func New(provider filesystem.FileSystemProvider, basePath, suffix string) *Factory {
	if provider == nil {
		panic("provider cannot be nil")
	}
	return &Factory{
		basePath: strings.TrimSuffix(basePath, "/"),
		reader:   metadata.NewReader(provider, suffix),
	}
}

// BasePath returns the directory pathnames are relative to.
func (f *Factory) BasePath() string {
	return f.basePath
}

// MetadataSuffix returns the suffix of sidecar files.
func (f *Factory) MetadataSuffix() string {
	return f.reader.Suffix()
}

// CreateFile builds the File for pathname. A pathname without a leading "/"
// is treated as if it had one. Missing sidecars leave Metadata nil.
func (f *Factory) CreateFile(pathname string) (contree.File, error) {
	if !strings.HasPrefix(pathname, "/") {
		pathname = "/" + pathname
	}
	if name := path.Base(pathname); name == "/" || name == "." {
		return contree.File{}, fmt.Errorf("invalid file pathname %q", pathname)
	}

	file := contree.File{
		Pathname: pathname,
		Type:     TypeOf(pathname),
	}

	meta, err := f.reader.Read(f.basePath + pathname)
	switch {
	case errors.Is(err, metadata.ErrNoMetadata):
	case err != nil:
		return contree.File{}, fmt.Errorf("failed to read metadata for %s: %w", pathname, err)
	default:
		file.Metadata = meta
	}
	return file, nil
}

// Verify Factory implements contree.FileFactory
var _ contree.FileFactory = (*Factory)(nil)
