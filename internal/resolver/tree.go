package resolver

import (
	"strings"

	"github.com/vvka-141/contree/internal/paths"
	"github.com/vvka-141/contree/internal/tree"
	"github.com/vvka-141/contree/pkg/contree"
)

// PageLookup finds pages by full path. tree.Repository implements it.
type PageLookup interface {
	Lookup(fullPath string) (*tree.Node, bool)
}

// Tree resolves paths to files attached to pages.
//
// For "a/b/c.png" it first asks the page at /a/b for "c.png", then the page
// at /a for "b/c.png", then the root for "a/b/c.png".
type Tree struct {
	pages  PageLookup
	logger contree.Logger
}

// NewTree creates a page-backed resolver.
// Panics if pages or logger is nil.
func NewTree(pages PageLookup, logger contree.Logger) *Tree {
	if pages == nil {
		panic("pages cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Tree{pages: pages, logger: logger}
}

// Get returns the page file addressed by path. Absolute paths ignore parent.
func (r *Tree) Get(path, parent paths.Path) (*contree.File, error) {
	if path.IsRegex() {
		return nil, nil
	}
	file, ok := path.File()
	if !ok {
		return nil, nil
	}
	name := file.String()

	if path.IsAbsolute() {
		parent = paths.Path{}
	}
	dir, parent, err := paths.Normalize(path.Directory(), parent)
	if err != nil {
		return nil, err
	}
	segments := append(parent.Names(), dir.Names()...)

	for i := len(segments); i >= 0; i-- {
		candidate := contree.RootPath + strings.Join(segments[:i], "/")
		page, ok := r.pages.Lookup(candidate)
		if !ok {
			continue
		}
		key := strings.Join(append(segments[i:len(segments):len(segments)], name), "/")
		if f, ok := page.File(key); ok {
			r.logger.Verbose("Resolved %q to file %q of page %s", path.String(), key, page.Path)
			return &f, nil
		}
	}
	return nil, nil
}

// Verify Tree implements Resolver
var _ Resolver = (*Tree)(nil)
