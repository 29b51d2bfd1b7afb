// Package webtree contains core domain types and interfaces for the WebTree
// folder/file tree
package webtree

// NodeKind tags a node as a folder or a file. It is decided once when the node
// is loaded and never inferred afterwards.
type NodeKind uint8

const (
	FolderKind NodeKind = iota + 1
	FileKind
)

func (k NodeKind) String() string {
	switch k {
	case FolderKind:
		return "folder"
	case FileKind:
		return "file"
	default:
		return "unknown"
	}
}

// RoleName identifies a viewer's access role
type RoleName string

// AdminRole holds every capability regardless of permission sets
const AdminRole RoleName = "admin"
