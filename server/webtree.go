package server

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/brettbedarf/webtree"
	"github.com/brettbedarf/webtree/access"
	"github.com/brettbedarf/webtree/config"
	"github.com/brettbedarf/webtree/internal/util"
	"github.com/brettbedarf/webtree/requests"
	"github.com/brettbedarf/webtree/tree"
)

// WebTree owns the authoritative folder/file tree and serializes every read
// and mutation of it. Renderers hold a reference to the WebTree, never to the
// tree itself.
type WebTree struct {
	cfg      *config.Config
	mu       sync.RWMutex
	tree     *tree.Tree
	role     webtree.RoleName
	renderer webtree.RenderRequester
}

// New creates an empty WebTree given your config. A nil config uses the
// defaults.
func New(cfg *config.Config) *WebTree {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	role := cfg.DefaultRole
	if role == "" {
		role = webtree.AdminRole
	}
	return &WebTree{
		cfg:  cfg,
		tree: tree.New(),
		role: role,
	}
}

// SetRenderer registers the hook notified after effective changes. Pass nil
// to detach it.
func (w *WebTree) SetRenderer(r webtree.RenderRequester) {
	w.mu.Lock()
	w.renderer = r
	w.mu.Unlock()
}

// requestRender must be called without holding mu
func (w *WebTree) requestRender() {
	w.mu.RLock()
	r := w.renderer
	w.mu.RUnlock()
	if r != nil {
		r.RequestRender()
	}
}

// LoadTree replaces the tree wholesale. On error the previous tree stays.
func (w *WebTree) LoadTree(roots []webtree.FolderRecord) error {
	logger := util.GetLogger("WebTree.LoadTree")

	t, err := tree.Load(roots)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load tree")
		return err
	}

	w.mu.Lock()
	w.tree = t
	w.mu.Unlock()

	folders, files := t.Count()
	logger.Info().Str("tree", t.ID()).Int("folders", folders).Int("files", files).Msg("Loaded tree")
	w.requestRender()
	return nil
}

// LoadSource reads a whole document from src, decodes it and loads it
func (w *WebTree) LoadSource(ctx context.Context, src webtree.Source) error {
	rc, err := src.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open tree source: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return fmt.Errorf("failed to read tree source: %w", err)
	}
	roots, err := requests.Unmarshal(data, src.Format())
	if err != nil {
		return err
	}
	return w.LoadTree(roots)
}

// FindByName returns every node whose name contains query, ignoring case, in
// depth-first pre-order. Only the empty string is rejected; whitespace is a
// regular query.
func (w *WebTree) FindByName(query string) ([]webtree.NodeInfo, error) {
	if query == "" {
		return nil, webtree.ErrEmptyQuery
	}

	w.mu.RLock()
	nodes := w.tree.FindByName(query)
	w.mu.RUnlock()

	out := make([]webtree.NodeInfo, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n)
	}
	return out, nil
}

func (w *WebTree) FindByID(id int64) (webtree.NodeInfo, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	n, ok := w.tree.FindByID(id)
	if !ok {
		return nil, false
	}
	return n, true
}

// DeleteByID removes the node, and for folders its whole subtree. It reports
// false if no node had the id.
func (w *WebTree) DeleteByID(id int64) bool {
	w.mu.Lock()
	deleted := w.tree.DeleteByID(id)
	w.mu.Unlock()

	if deleted {
		w.requestRender()
	}
	return deleted
}

// MoveItem moves a node into a target folder. A self move is a silent no-op;
// rejected moves return a *webtree.MoveError and leave the tree untouched.
func (w *WebTree) MoveItem(itemID, targetFolderID int64) (bool, error) {
	w.mu.Lock()
	moved, err := w.tree.MoveItem(itemID, targetFolderID)
	w.mu.Unlock()

	if moved {
		w.requestRender()
	}
	return moved, err
}

// SetRole changes the viewer role. The role is taken verbatim. It never
// mutates the tree.
func (w *WebTree) SetRole(role webtree.RoleName) error {
	if role == "" {
		return fmt.Errorf("role must not be empty")
	}

	w.mu.Lock()
	changed := w.role != role
	w.role = role
	w.mu.Unlock()

	if changed {
		util.GetLogger("WebTree.SetRole").Debug().Str("role", string(role)).Msg("Viewer role changed")
		w.requestRender()
	}
	return nil
}

func (w *WebTree) Role() webtree.RoleName {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.role
}

// Access evaluates node id for the current role
func (w *WebTree) Access(id int64) (access.Decision, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	n, ok := w.tree.FindByID(id)
	if !ok {
		return access.Decision{}, fmt.Errorf("node %d: %w", id, webtree.ErrNotFound)
	}
	return access.Evaluate(n, w.role), nil
}

// Snapshot exports the current tree in document shape
func (w *WebTree) Snapshot() []webtree.FolderRecord {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.tree.Snapshot()
}

func (w *WebTree) Count() (folders, files int) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.tree.Count()
}

// TreeID identifies the currently loaded tree; it changes on every load
func (w *WebTree) TreeID() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.tree.ID()
}

// ReadCtx returns a read-locked view of the tree. Writers block until the
// context is closed.
//
// Example:
//
//	ctx := wt.ReadCtx()
//	defer ctx.Close()
func (w *WebTree) ReadCtx() *TreeContext {
	w.mu.RLock()
	ctx := &TreeContext{tree: w.tree, role: w.role}
	ctx.AddClose(w.mu.RUnlock)
	return ctx
}

var _ webtree.TreeOperator = (*WebTree)(nil)
