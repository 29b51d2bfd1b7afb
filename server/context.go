package server

import (
	"github.com/brettbedarf/webtree"
	"github.com/brettbedarf/webtree/access"
	"github.com/brettbedarf/webtree/tree"
)

// TreeContext wraps a read-locked tree (plus the viewer role at lock time).
// Calling TreeContext.Close() unwinds all cleanup callbacks in reverse order.
// Do NOT call mutating WebTree methods while this context is open; they
// will block until it is closed.
//
// NOTE: TreeContext itself is **not** thread-safe meaning references
// to it should not be shared between goroutines
type TreeContext struct {
	tree     *tree.Tree
	role     webtree.RoleName
	closeFns []func()
}

func (ctx *TreeContext) Role() webtree.RoleName {
	return ctx.role
}

// Roots returns the root folders in order
func (ctx *TreeContext) Roots() []webtree.NodeInfo {
	return toInfos(ctx.tree.Roots())
}

func (ctx *TreeContext) Node(id int64) (webtree.NodeInfo, bool) {
	n, ok := ctx.tree.FindByID(id)
	if !ok {
		return nil, false
	}
	return n, true
}

// Folders returns the subfolders of folder id, or nil if it is not a folder
func (ctx *TreeContext) Folders(id int64) []webtree.NodeInfo {
	folders, _ := ctx.tree.Children(id)
	return toInfos(folders)
}

// Files returns the direct files of folder id, or nil if it is not a folder
func (ctx *TreeContext) Files(id int64) []webtree.NodeInfo {
	_, files := ctx.tree.Children(id)
	return toInfos(files)
}

// Decision evaluates node id for the context's role. Absent ids get the
// zero Decision.
func (ctx *TreeContext) Decision(id int64) access.Decision {
	n, ok := ctx.tree.FindByID(id)
	if !ok {
		return access.Decision{}
	}
	return access.Evaluate(n, ctx.role)
}

// AddClose pushes a cleanup callback (e.g., unlock) onto the end of the stack.
func (ctx *TreeContext) AddClose(fn func()) {
	ctx.closeFns = append(ctx.closeFns, fn)
}

// Close unwinds all cleanup callbacks in reverse order.
// Safe to call on a nil or already closed context, so you can
// `defer ctx.Close()` unconditionally.
func (ctx *TreeContext) Close() {
	if ctx == nil {
		return
	}
	for i := len(ctx.closeFns) - 1; i >= 0; i-- {
		ctx.closeFns[i]()
	}
	ctx.closeFns = nil
}

func toInfos(nodes []*tree.Node) []webtree.NodeInfo {
	if nodes == nil {
		return nil
	}
	out := make([]webtree.NodeInfo, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n)
	}
	return out
}
