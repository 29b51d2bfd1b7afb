package tree

import (
	"slices"

	"github.com/brettbedarf/webtree"
	"github.com/brettbedarf/webtree/internal/util"
)

// DeleteByID removes the node with id from whichever sequence holds it (the
// root set or its folder's subfolders/files). A deleted folder takes its whole
// subtree with it. Returns false, leaving the tree unchanged, if id is absent.
func (t *Tree) DeleteByID(id int64) bool {
	logger := util.GetLogger("Tree.DeleteByID")

	n, ok := t.registry.Load(id)
	if !ok {
		logger.Debug().Str("tree", t.id).Int64("id", id).Msg("No node found")
		return false
	}
	t.detach(n)
	removed := t.forget(n)
	logger.Debug().Str("tree", t.id).Int64("id", id).Int("removed", removed).Msg("Deleted node")
	return true
}

// MoveItem relocates itemID to the end of targetFolderID's subfolders (for a
// folder) or files (for a file). Moving a node onto itself is a no-op and
// returns false with no error. Every check runs before any edit, so a
// [*webtree.MoveError] always leaves the tree untouched.
func (t *Tree) MoveItem(itemID, targetFolderID int64) (bool, error) {
	logger := util.GetLogger("Tree.MoveItem")

	if itemID == targetFolderID {
		logger.Debug().Str("tree", t.id).Int64("id", itemID).Msg("Ignoring self move")
		return false, nil
	}
	item, target, err := t.checkMove(itemID, targetFolderID)
	if err != nil {
		logger.Debug().Err(err).Str("tree", t.id).Msg("Rejected move")
		return false, err
	}

	t.detach(item)
	target.addChild(item)
	logger.Debug().Str("tree", t.id).Int64("id", itemID).Int64("target", targetFolderID).Msg("Moved node")
	return true, nil
}

func (t *Tree) checkMove(itemID, targetID int64) (item *Node, target *Node, err error) {
	moveErr := func(kind webtree.MoveErrorKind, msg string) error {
		return &webtree.MoveError{Kind: kind, ItemID: itemID, TargetID: targetID, Message: msg}
	}

	item, ok := t.registry.Load(itemID)
	if !ok {
		return nil, nil, moveErr(webtree.MoveNotFound, "item not found")
	}
	target, ok = t.registry.Load(targetID)
	if !ok {
		return nil, nil, moveErr(webtree.MoveNotFound, "target folder not found")
	}
	if !target.IsFolder() {
		return nil, nil, moveErr(webtree.MoveInvalidTarget, "target is not a folder")
	}
	if item.IsFolder() && t.isDescendant(targetID, itemID) {
		return nil, nil, moveErr(webtree.MoveCyclic, "target is inside the moved folder")
	}
	return item, target, nil
}

// detach unlinks n from its parent's sequence or from the root set, matching by
// id
func (t *Tree) detach(n *Node) {
	if n.hasParent {
		if parent, ok := t.registry.Load(n.parent); ok {
			parent.removeChild(n)
			return
		}
	}
	if idx := slices.Index(t.roots, n.id); idx >= 0 {
		t.roots = slices.Delete(t.roots, idx, idx+1)
	}
	n.parent = 0
	n.hasParent = false
}

// forget drops n and its descendants from the registry; returns how many nodes
// were removed
func (t *Tree) forget(n *Node) int {
	cnt := 0
	for _, id := range n.folders {
		if sub, ok := t.registry.Load(id); ok {
			cnt += t.forget(sub)
		}
	}
	for _, id := range n.files {
		if _, ok := t.registry.LoadAndDelete(id); ok {
			cnt++
		}
	}
	if _, ok := t.registry.LoadAndDelete(n.id); ok {
		cnt++
	}
	return cnt
}
