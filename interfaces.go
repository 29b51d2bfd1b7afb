package webtree

import (
	"context"
	"io"
)

// NodeInfo provides read-only access to node information for external consumers
type NodeInfo interface {
	// ID returns the unique node identifier
	ID() int64

	// Name returns the node's display name
	Name() string

	// Kind reports whether the node is a folder or a file
	Kind() NodeKind

	// Permissions returns a copy of the node's permission record
	Permissions() PermissionSet
}

// RenderRequester is notified after the authoritative tree (or the viewer role)
// changed and the view needs to be redrawn
type RenderRequester interface {
	RequestRender()
}

// TreeOperator defines the tree operations the rendering layer needs
type TreeOperator interface {
	LoadTree(roots []FolderRecord) error
	FindByName(query string) ([]NodeInfo, error)
	FindByID(id int64) (NodeInfo, bool)
	DeleteByID(id int64) bool
	MoveItem(itemID, targetFolderID int64) (bool, error)
}

// Source supplies a raw tree document
type Source interface {
	// Open returns a reader for the whole document. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)

	// Format reports how the document is serialized
	Format() Format
}

// SourceProvider builds a [Source] from its raw JSON spec
type SourceProvider interface {
	NewSource(raw []byte) (Source, error)
}
