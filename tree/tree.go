package tree

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/brettbedarf/webtree"
	"github.com/brettbedarf/webtree/internal/util"
)

// Tree is the arena holding an ordered root set of folders. Nodes are looked up
// through an id-keyed registry; folders reference children by id.
//
// NOTE: Tree is not safe for concurrent mutation. The owner (see server.WebTree)
// must serialize writers.
type Tree struct {
	id       string                   // Per-load identifier for log correlation
	roots    []int64                  // Ordered root folder ids
	registry *xsync.Map[int64, *Node] // maps node ids to arena Nodes
}

// New returns an empty tree
func New() *Tree {
	return &Tree{
		id:       uuid.New().String(),
		roots:    make([]int64, 0),
		registry: xsync.NewMap[int64, *Node](),
	}
}

// Load builds a tree from document-shaped records. Node kinds are fixed here
// from the record type. Returns an error wrapping [webtree.ErrDuplicateID] if
// any identifier repeats across folders and files.
func Load(roots []webtree.FolderRecord) (*Tree, error) {
	logger := util.GetLogger("Tree.Load")

	t := New()
	for i := range roots {
		if err := t.loadFolder(&roots[i], nil); err != nil {
			return nil, err
		}
	}
	folders, files := t.Count()
	logger.Debug().Str("tree", t.id).Int("folders", folders).Int("files", files).Msg("Loaded tree")
	return t, nil
}

func (t *Tree) loadFolder(rec *webtree.FolderRecord, parent *Node) error {
	node := newFolderNode(rec.ID, rec.Name, rec.Permissions)
	if err := t.register(node); err != nil {
		return err
	}
	if parent == nil {
		t.roots = append(t.roots, node.id)
	} else {
		parent.addChild(node)
	}

	for i := range rec.Folders {
		if err := t.loadFolder(&rec.Folders[i], node); err != nil {
			return err
		}
	}
	for _, f := range rec.Files {
		file := newFileNode(f.ID, f.Name, f.Permissions)
		if err := t.register(file); err != nil {
			return err
		}
		node.addChild(file)
	}
	return nil
}

func (t *Tree) register(n *Node) error {
	if _, loaded := t.registry.LoadOrStore(n.id, n); loaded {
		return fmt.Errorf("%w: %d (%s %q)", webtree.ErrDuplicateID, n.id, n.kind, n.name)
	}
	return nil
}

// ID returns the identifier stamped on this tree when it was created
func (t *Tree) ID() string {
	return t.id
}

// Roots returns the root folders in order
func (t *Tree) Roots() []*Node {
	return t.resolve(t.roots)
}

// Children returns a folder's subfolders and files in order. Both are nil if id
// is absent or not a folder.
func (t *Tree) Children(id int64) (folders []*Node, files []*Node) {
	n, ok := t.registry.Load(id)
	if !ok || !n.IsFolder() {
		return nil, nil
	}
	return t.resolve(n.folders), t.resolve(n.files)
}

func (t *Tree) resolve(ids []int64) []*Node {
	nodes := make([]*Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := t.registry.Load(id); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Len returns the total number of nodes
func (t *Tree) Len() int {
	return t.registry.Size()
}

// Count returns the number of folders and files in the tree
func (t *Tree) Count() (folders, files int) {
	t.registry.Range(func(_ int64, n *Node) bool {
		if n.IsFolder() {
			folders++
		} else {
			files++
		}
		return true
	})
	return
}

// Snapshot exports the tree as independent document-shaped records
func (t *Tree) Snapshot() []webtree.FolderRecord {
	roots := t.Roots()
	out := make([]webtree.FolderRecord, 0, len(roots))
	for _, r := range roots {
		out = append(out, t.folderRecord(r))
	}
	return out
}

func (t *Tree) folderRecord(n *Node) webtree.FolderRecord {
	rec := webtree.FolderRecord{
		ID:          n.id,
		Name:        n.name,
		Folders:     make([]webtree.FolderRecord, 0, len(n.folders)),
		Files:       make([]webtree.FileRecord, 0, len(n.files)),
		Permissions: n.Permissions(),
	}
	for _, sub := range t.resolve(n.folders) {
		rec.Folders = append(rec.Folders, t.folderRecord(sub))
	}
	for _, f := range t.resolve(n.files) {
		rec.Files = append(rec.Files, webtree.FileRecord{
			ID:          f.id,
			Name:        f.name,
			Permissions: f.Permissions(),
		})
	}
	return rec
}
