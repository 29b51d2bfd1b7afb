package tree

import "strings"

// walk visits nodes depth-first in pre-order: a folder, then its subfolders
// recursively, then its direct files. Stops early when fn returns false.
func (t *Tree) walk(fn func(n *Node) bool) {
	for _, id := range t.roots {
		if n, ok := t.registry.Load(id); ok && !t.walkFolder(n, fn) {
			return
		}
	}
}

func (t *Tree) walkFolder(folder *Node, fn func(n *Node) bool) bool {
	if !fn(folder) {
		return false
	}
	for _, id := range folder.folders {
		if sub, ok := t.registry.Load(id); ok && !t.walkFolder(sub, fn) {
			return false
		}
	}
	for _, id := range folder.files {
		if f, ok := t.registry.Load(id); ok && !fn(f) {
			return false
		}
	}
	return true
}

// FindByName returns every folder and file whose name contains query,
// case-insensitively, in pre-order traversal order. An empty query matches
// nothing.
func (t *Tree) FindByName(query string) []*Node {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)

	var result []*Node
	t.walk(func(n *Node) bool {
		if strings.Contains(strings.ToLower(n.name), q) {
			result = append(result, n)
		}
		return true
	})
	return result
}

// FindByID returns the node with id. Ids are unique so the registry lookup
// yields the same node a traversal would.
func (t *Tree) FindByID(id int64) (*Node, bool) {
	return t.registry.Load(id)
}

// isDescendant reports whether id lies strictly inside the subtree of
// ancestorID, by walking id's parent chain
func (t *Tree) isDescendant(id, ancestorID int64) bool {
	n, ok := t.registry.Load(id)
	for ok && n.hasParent {
		if n.parent == ancestorID {
			return true
		}
		n, ok = t.registry.Load(n.parent)
	}
	return false
}
