package query

import (
	"fmt"
	"slices"

	"github.com/vvka-141/contree/internal/tree"
	"github.com/vvka-141/contree/pkg/contree"
)

// Acceptor decides whether a page passes a caller-supplied filter.
type Acceptor interface {
	Accept(n *tree.Node) bool
}

// AcceptFunc adapts a function to the Acceptor interface.
type AcceptFunc func(n *tree.Node) bool

// Accept calls f(n).
func (f AcceptFunc) Accept(n *tree.Node) bool { return f(n) }

// Registry holds named filters that queries enable with Finder.Use.
type Registry struct {
	filters map[string]Acceptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{filters: make(map[string]Acceptor)}
}

// Register adds a under name. Registering a name twice returns an error
// wrapping contree.ErrDuplicateFilter.
func (r *Registry) Register(name string, a Acceptor) error {
	if a == nil {
		return fmt.Errorf("filter %q: acceptor cannot be nil", name)
	}
	if _, exists := r.filters[name]; exists {
		return fmt.Errorf("%w: %q", contree.ErrDuplicateFilter, name)
	}
	r.filters[name] = a
	return nil
}

// RegisterFunc registers fn under name.
func (r *Registry) RegisterFunc(name string, fn func(n *tree.Node) bool) error {
	if fn == nil {
		return fmt.Errorf("filter %q: function cannot be nil", name)
	}
	return r.Register(name, AcceptFunc(fn))
}

// Lookup returns the filter registered under name.
func (r *Registry) Lookup(name string) (Acceptor, bool) {
	a, ok := r.filters[name]
	return a, ok
}

// Names returns the registered filter names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.filters))
	for name := range r.filters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
