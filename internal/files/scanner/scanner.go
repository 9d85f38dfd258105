package scanner

import (
	"fmt"
	"path"
	"strings"

	"github.com/vvka-141/contree/internal/files/factory"
	"github.com/vvka-141/contree/internal/files/filesystem"
	"github.com/vvka-141/contree/internal/metadata"
	"github.com/vvka-141/contree/internal/tree"
	"github.com/vvka-141/contree/pkg/contree"
)

// Scanner builds page trees from content directories.
// Scanner is safe for concurrent use as long as the filesystem provider is.
type Scanner struct {
	fsProvider     filesystem.FileSystemProvider
	logger         contree.Logger
	metadataSuffix string
}

// NewScanner creates a scanner over the OS filesystem.
// Panics if logger is nil.
func NewScanner(logger contree.Logger) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), logger)
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider or logger is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, logger contree.Logger) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Scanner{
		fsProvider:     fsProvider,
		logger:         logger,
		metadataSuffix: contree.DefaultMetadataSuffix,
	}
}

// WithMetadataSuffix changes the sidecar suffix. An empty suffix keeps the default.
func (s *Scanner) WithMetadataSuffix(suffix string) *Scanner {
	if suffix != "" {
		s.metadataSuffix = suffix
	}
	return s
}

// ScanDirectory maps sourcePath into a tree. File pathnames are relative to sourcePath.
// Errors wrap contree.ErrTreeLoad.
func (s *Scanner) ScanDirectory(sourcePath string) (*tree.Tree, error) {
	dir, err := s.fsProvider.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open directory: %w", contree.ErrTreeLoad, err)
	}

	files := factory.New(s.fsProvider, dir.Path(), s.metadataSuffix)
	t := tree.New()
	pages := map[string]*tree.Node{".": t.Get(t.Root())}

	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		relPath := file.RelativePath()
		name := path.Base(relPath)
		if relPath != "." && strings.HasPrefix(name, ".") {
			if file.Info().IsDir() {
				return filesystem.SkipDir
			}
			return nil
		}

		if file.Info().IsDir() {
			return s.mapDirectory(t, pages, file)
		}

		page, ok := pages[path.Dir(relPath)]
		if !ok {
			return fmt.Errorf("no page for directory of %s", relPath)
		}
		return s.mapFile(page, files, file)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", contree.ErrTreeLoad, err)
	}

	s.logger.Verbose("Mapped %d pages from %s", t.Len(), dir.Path())
	return t, nil
}

// mapDirectory creates the page for a directory
func (s *Scanner) mapDirectory(t *tree.Tree, pages map[string]*tree.Node, dir filesystem.File) error {
	relPath := dir.RelativePath()

	var page *tree.Node
	if relPath == "." {
		page = pages["."]
	} else {
		parent, ok := pages[path.Dir(relPath)]
		if !ok {
			return fmt.Errorf("no page for parent of %s", relPath)
		}
		var err error
		page, err = t.Add(parent.ID, path.Base(relPath))
		if err != nil {
			return err
		}
		pages[relPath] = page
	}

	page.FilesystemPath = dir.Path()
	page.Modified = dir.Info().ModTime()
	return nil
}

// mapFile attaches a file to its page, or reads it into the page when it is
// the settings or content document.
func (s *Scanner) mapFile(page *tree.Node, files *factory.Factory, file filesystem.File) error {
	relPath := file.RelativePath()
	name := path.Base(relPath)

	switch {
	case metadata.IsSidecar(name, s.metadataSuffix):
		return nil

	case name == contree.PageSettingsFile:
		content, err := file.ReadContent()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", relPath, err)
		}
		if err := metadata.DecodeBytes(content, relPath, &page.Settings); err != nil {
			return err
		}
		s.logger.Verbose("Loaded settings for %s", page.Path)
		return nil

	case name == contree.PageContentFile:
		content, err := file.ReadContent()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", relPath, err)
		}
		page.RawContent = string(content)
		page.Modified = file.Info().ModTime()
		return nil
	}

	f, err := files.CreateFile("/" + relPath)
	if err != nil {
		return fmt.Errorf("failed to process file %s: %w", relPath, err)
	}
	page.AddFile(name, f)
	return nil
}
