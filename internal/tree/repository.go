package tree

// Repository indexes the pages of a Tree by full path.
// The index is built on first use and rebuilt after Invalidate.
type Repository struct {
	tree  *Tree
	pages map[string]*Node
}

// NewRepository creates a repository over t.
// Panics if t is nil.
func NewRepository(t *Tree) *Repository {
	if t == nil {
		panic("tree cannot be nil")
	}
	return &Repository{tree: t}
}

// Tree returns the indexed tree.
func (r *Repository) Tree() *Tree { return r.tree }

// Lookup returns the page whose full path is fullPath.
func (r *Repository) Lookup(fullPath string) (*Node, bool) {
	if len(r.pages) == 0 {
		r.pages = Flatten(r.tree)
	}
	n, ok := r.pages[fullPath]
	return n, ok
}

// Invalidate drops the index so the next Lookup rebuilds it.
func (r *Repository) Invalidate() {
	r.pages = nil
}

// Flatten returns all nodes in a flat map keyed by path.
func Flatten(t *Tree) map[string]*Node {
	result := make(map[string]*Node, t.Len())
	t.Walk(t.Root(), func(n *Node, _ int) bool {
		result[n.Path] = n
		return true
	})
	return result
}
