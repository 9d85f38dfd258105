package resolver

import (
	"github.com/vvka-141/contree/internal/paths"
	"github.com/vvka-141/contree/pkg/contree"
)

// Combined pairs a filesystem resolver with a page resolver.
// Get prefers the filesystem; Find returns the results of both.
type Combined struct {
	files MultiResolver
	pages Resolver
}

// NewCombined creates a combined resolver.
// Panics if files or pages is nil.
func NewCombined(files MultiResolver, pages Resolver) *Combined {
	if files == nil {
		panic("files cannot be nil")
	}
	if pages == nil {
		panic("pages cannot be nil")
	}
	return &Combined{files: files, pages: pages}
}

// Get returns the filesystem match, falling back to the page resolver.
func (c *Combined) Get(path, parent paths.Path) (*contree.File, error) {
	file, err := c.files.Get(path, parent)
	if err != nil || file != nil {
		return file, err
	}
	return c.pages.Get(path, parent)
}

// Find concatenates filesystem matches with page matches. A page resolver
// without Find contributes its Get result.
func (c *Combined) Find(path, parent paths.Path) ([]contree.File, error) {
	result, err := c.files.Find(path, parent)
	if err != nil {
		return nil, err
	}

	if multi, ok := c.pages.(MultiResolver); ok {
		more, err := multi.Find(path, parent)
		if err != nil {
			return nil, err
		}
		return append(result, more...), nil
	}

	file, err := c.pages.Get(path, parent)
	if err != nil {
		return nil, err
	}
	if file != nil {
		result = append(result, *file)
	}
	return result, nil
}

// Verify Combined implements MultiResolver
var _ MultiResolver = (*Combined)(nil)
