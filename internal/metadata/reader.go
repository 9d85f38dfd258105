package metadata

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/contree/internal/files/filesystem"
	"github.com/vvka-141/contree/pkg/contree"
)

// ErrNoMetadata is returned when a file has no sidecar document.
var ErrNoMetadata = errors.New("no metadata found")

// MaxMetadataSize bounds sidecar documents; larger files are rejected.
const MaxMetadataSize = 64 * 1024

// IsSidecar reports whether name is a metadata document for suffix.
func IsSidecar(name, suffix string) bool {
	return suffix != "" && strings.HasSuffix(name, suffix)
}

// Reader loads sidecar metadata through a filesystem provider.
type Reader struct {
	provider filesystem.FileSystemProvider
	suffix   string
}

// NewReader creates a sidecar reader. An empty suffix selects contree.DefaultMetadataSuffix.
// Panics if provider is nil.
func NewReader(provider filesystem.FileSystemProvider, suffix string) *Reader {
	if provider == nil {
		panic("provider cannot be nil")
	}
	if suffix == "" {
		suffix = contree.DefaultMetadataSuffix
	}
	return &Reader{provider: provider, suffix: suffix}
}

// Suffix returns the sidecar suffix.
func (r *Reader) Suffix() string { return r.suffix }

// Read returns the metadata of the file at filePath.
// Returns ErrNoMetadata if the sidecar does not exist.
func (r *Reader) Read(filePath string) (map[string]any, error) {
	sidecar := filePath + r.suffix
	ok, err := filesystem.IsFile(r.provider, sidecar)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", sidecar, err)
	}
	if !ok {
		return nil, ErrNoMetadata
	}

	meta := map[string]any{}
	if err := Decode(r.provider, sidecar, &meta); err != nil {
		return nil, err
	}
	return meta, nil
}

// Decode reads the YAML document at docPath into out.
// An empty document leaves out untouched.
func Decode(provider filesystem.FileSystemProvider, docPath string, out any) error {
	content, err := provider.ReadFile(docPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", docPath, err)
	}
	return DecodeBytes(content, docPath, out)
}

// DecodeBytes is Decode for content already in memory; docPath is used in errors.
func DecodeBytes(content []byte, docPath string, out any) error {
	if len(content) > MaxMetadataSize {
		return &MetadataError{
			FilePath: docPath,
			Message:  fmt.Sprintf("document is %d bytes, limit is %d", len(content), MaxMetadataSize),
		}
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(content, out); err != nil {
		return wrapYAMLError(err, docPath)
	}
	return nil
}
