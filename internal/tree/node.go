package tree

import (
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/contree/pkg/contree"
)

// NodeID addresses a node inside its Tree.
type NodeID int

// NoNode is the parent of the root node.
const NoNode NodeID = -1

// DefaultContentType is used for pages whose settings name no type.
const DefaultContentType = "page"

// uidNamespace scopes page UIDs so they never collide with other SHA-1 UUIDs.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://contree.dev/page"))

// Node is one page of the content tree.
type Node struct {
	ID     NodeID
	UID    uuid.UUID // derived from Path, stable across loads
	Parent NodeID

	Name           string
	Path           string // full path, "/" for the root
	FilesystemPath string // source directory, empty for manifest pages
	RawContent     string
	Modified       time.Time

	Settings Settings

	children  []NodeID
	files     []contree.File
	fileIndex map[string]int
}

func newNode(id, parent NodeID, name, fullPath string) *Node {
	return &Node{
		ID:        id,
		UID:       uuid.NewSHA1(uidNamespace, []byte(fullPath)),
		Parent:    parent,
		Name:      name,
		Path:      fullPath,
		Settings:  DefaultSettings(),
		fileIndex: make(map[string]int),
	}
}

// Children returns the IDs of the direct children in insertion order.
func (n *Node) Children() []NodeID {
	return append([]NodeID(nil), n.children...)
}

// Slug returns the slug setting, defaulting to the node name.
func (n *Node) Slug() string {
	if n.Settings.Slug != "" {
		return n.Settings.Slug
	}
	return n.Name
}

// Title returns the title setting, defaulting to the node name.
func (n *Node) Title() string {
	if n.Settings.Title != "" {
		return n.Settings.Title
	}
	return n.Name
}

// ContentType returns the page type setting or DefaultContentType.
func (n *Node) ContentType() string {
	if n.Settings.Type != "" {
		return n.Settings.Type
	}
	return DefaultContentType
}

// Date returns the date setting, falling back to the modification time.
// Returns nil when neither is known.
func (n *Node) Date() *time.Time {
	if n.Settings.Date != nil {
		return n.Settings.Date
	}
	if !n.Modified.IsZero() {
		m := n.Modified
		return &m
	}
	return nil
}

// AddFile attaches f under key, the file name relative to the page.
// Adding a key twice replaces the earlier file in place.
func (n *Node) AddFile(key string, f contree.File) {
	if i, ok := n.fileIndex[key]; ok {
		n.files[i] = f
		return
	}
	n.fileIndex[key] = len(n.files)
	n.files = append(n.files, f)
}

// File returns the file attached under key.
func (n *Node) File(key string) (contree.File, bool) {
	i, ok := n.fileIndex[key]
	if !ok {
		return contree.File{}, false
	}
	return n.files[i], true
}

// Files returns all attached files in insertion order.
func (n *Node) Files() []contree.File {
	return append([]contree.File(nil), n.files...)
}

// Images returns the attached files of type image.
func (n *Node) Images() []contree.File { return n.filesOfType(contree.TypeImage) }

// Documents returns the attached files of type document.
func (n *Node) Documents() []contree.File { return n.filesOfType(contree.TypeDocument) }

func (n *Node) filesOfType(fileType string) []contree.File {
	var out []contree.File
	for _, f := range n.files {
		if f.Type == fileType {
			out = append(out, f)
		}
	}
	return out
}
