package tree

import (
	"slices"

	"github.com/brettbedarf/webtree"
)

// Node is an arena entry. Relationships are stored as ids (parent id and ordered
// child id lists) rather than pointers, so detach/attach are plain list edits.
type Node struct {
	id        int64
	name      string
	kind      webtree.NodeKind
	perms     webtree.PermissionSet
	parent    int64   // Owning folder id; only meaningful when hasParent
	hasParent bool    // false for folders in the root set
	folders   []int64 // Ordered subfolder ids (folders only)
	files     []int64 // Ordered file ids (folders only)
}

func newFolderNode(id int64, name string, perms webtree.PermissionSet) *Node {
	return &Node{
		id:      id,
		name:    name,
		kind:    webtree.FolderKind,
		perms:   perms.Clone(),
		folders: make([]int64, 0),
		files:   make([]int64, 0),
	}
}

func newFileNode(id int64, name string, perms webtree.PermissionSet) *Node {
	return &Node{
		id:    id,
		name:  name,
		kind:  webtree.FileKind,
		perms: perms.Clone(),
	}
}

// ID returns the node's unique identifier
func (n *Node) ID() int64 {
	return n.id
}

// Name returns the node's display name
func (n *Node) Name() string {
	return n.name
}

// Kind returns the node's variant tag
func (n *Node) Kind() webtree.NodeKind {
	return n.kind
}

func (n *Node) IsFolder() bool {
	return n.kind == webtree.FolderKind
}

// Permissions returns a copy of the node's permission record
func (n *Node) Permissions() webtree.PermissionSet {
	return n.perms.Clone()
}

// ParentID returns the owning folder's id; ok is false for root folders
func (n *Node) ParentID() (id int64, ok bool) {
	return n.parent, n.hasParent
}

// FolderIDs returns a copy of the ordered subfolder ids
func (n *Node) FolderIDs() []int64 {
	return slices.Clone(n.folders)
}

// FileIDs returns a copy of the ordered file ids
func (n *Node) FileIDs() []int64 {
	return slices.Clone(n.files)
}

// childList returns the sequence of this folder that holds children of kind
func (n *Node) childList(kind webtree.NodeKind) *[]int64 {
	if kind == webtree.FolderKind {
		return &n.folders
	}
	return &n.files
}

// addChild appends child to the matching sequence and sets its parent to n
func (n *Node) addChild(child *Node) {
	list := n.childList(child.kind)
	*list = append(*list, child.id)
	child.parent = n.id
	child.hasParent = true
}

// removeChild drops the child id from the matching sequence; reports whether it
// was present
func (n *Node) removeChild(child *Node) bool {
	list := n.childList(child.kind)
	idx := slices.Index(*list, child.id)
	if idx < 0 {
		return false
	}
	*list = slices.Delete(*list, idx, idx+1)
	child.parent = 0
	child.hasParent = false
	return true
}

var _ webtree.NodeInfo = (*Node)(nil)
