// Package sources locates and opens tree documents
package sources

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/brettbedarf/webtree"
	"github.com/brettbedarf/webtree/internal/util"
)

// Registry maps a source "type" to the provider that builds it
type Registry struct {
	mu        sync.RWMutex
	providers map[string]webtree.SourceProvider
}

func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]webtree.SourceProvider)}
}

// Register ties a provider to a "type" key. The first registration of a key
// wins.
func (r *Registry) Register(sourceType string, provider webtree.SourceProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.providers[sourceType]; ok {
		util.GetLogger("sources").Debug().Str("type", sourceType).Msg("Provider already registered")
		return
	}
	r.providers[sourceType] = provider
}

func (r *Registry) GetProvider(sourceType string) (webtree.SourceProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[sourceType]
	if !ok {
		return nil, fmt.Errorf("no provider registered for source type %q", sourceType)
	}
	return p, nil
}

// NewSource picks the provider based on the "type" field of raw and hands it
// the whole spec
func (r *Registry) NewSource(raw []byte) (webtree.Source, error) {
	var meta struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, fmt.Errorf("failed to read source type: %w", err)
	}
	if meta.Type == "" {
		return nil, fmt.Errorf("source spec is missing the \"type\" field")
	}
	p, err := r.GetProvider(meta.Type)
	if err != nil {
		return nil, err
	}
	return p.NewSource(raw)
}

// ProviderFunc adapts a plain function to [webtree.SourceProvider]
type ProviderFunc func(raw []byte) (webtree.Source, error)

func (f ProviderFunc) NewSource(raw []byte) (webtree.Source, error) {
	return f(raw)
}

var defaultRegistry = NewRegistry()

// Default returns the package-level registry used by [Register] and [NewSource]
func Default() *Registry {
	return defaultRegistry
}

// Register adds a provider to the default registry
func Register(sourceType string, provider webtree.SourceProvider) {
	defaultRegistry.Register(sourceType, provider)
}

// NewSource builds a source from the default registry
func NewSource(raw []byte) (webtree.Source, error) {
	return defaultRegistry.NewSource(raw)
}
