package tree

import (
	"fmt"
	"strings"

	"github.com/vvka-141/contree/pkg/contree"
)

// Tree is an arena of pages rooted at a single node with path "/".
type Tree struct {
	nodes []*Node
}

// New creates a tree holding only the root page.
func New() *Tree {
	t := &Tree{}
	t.nodes = append(t.nodes, newNode(0, NoNode, "", contree.RootPath))
	return t
}

// Root returns the ID of the root page.
func (t *Tree) Root() NodeID { return 0 }

// Len returns the number of pages.
func (t *Tree) Len() int { return len(t.nodes) }

// Add creates a page called name below parent.
func (t *Tree) Add(parent NodeID, name string) (*Node, error) {
	p := t.Get(parent)
	if p == nil {
		return nil, fmt.Errorf("parent node %d does not exist", parent)
	}
	if name == "" || name == "." || name == ".." || strings.Contains(name, "/") {
		return nil, fmt.Errorf("invalid page name %q", name)
	}
	for _, id := range p.children {
		if t.nodes[id].Name == name {
			return nil, fmt.Errorf("page %q already exists below %s", name, p.Path)
		}
	}

	id := NodeID(len(t.nodes))
	n := newNode(id, parent, name, childPath(p.Path, name))
	t.nodes = append(t.nodes, n)
	p.children = append(p.children, id)
	return n, nil
}

// Get returns the node with id, or nil if there is none.
func (t *Tree) Get(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return t.nodes[id]
}

// Children returns the child nodes of id in order.
func (t *Tree) Children(id NodeID) []*Node {
	n := t.Get(id)
	if n == nil {
		return nil
	}
	out := make([]*Node, len(n.children))
	for i, c := range n.children {
		out[i] = t.nodes[c]
	}
	return out
}

// Parent returns the parent of id, or nil for the root.
func (t *Tree) Parent(id NodeID) *Node {
	n := t.Get(id)
	if n == nil {
		return nil
	}
	return t.Get(n.Parent)
}

// Depth returns the number of ancestors of id; the root has depth 0.
func (t *Tree) Depth(id NodeID) int {
	depth := 0
	for n := t.Parent(id); n != nil; n = t.Parent(n.ID) {
		depth++
	}
	return depth
}

// Walk visits id and its descendants in pre-order, depth relative to id.
// Returning false from fn stops the walk.
func (t *Tree) Walk(id NodeID, fn func(n *Node, depth int) bool) bool {
	return t.walk(id, 0, fn)
}

func (t *Tree) walk(id NodeID, depth int, fn func(*Node, int) bool) bool {
	n := t.Get(id)
	if n == nil {
		return true
	}
	if !fn(n, depth) {
		return false
	}
	for _, c := range n.children {
		if !t.walk(c, depth+1, fn) {
			return false
		}
	}
	return true
}

// childPath constructs a child path from parent + name.
func childPath(parentPath, name string) string {
	if parentPath == contree.RootPath {
		return "/" + name
	}
	return parentPath + "/" + name
}
