package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brettbedarf/webtree"
	"github.com/brettbedarf/webtree/internal/util"
)

// FileSpec contains file-specific source fields
type FileSpec struct {
	Path   string          `json:"path"`
	Format *webtree.Format `json:"format,omitempty"` // Default from the extension
}

// FileSource reads a tree document from the local filesystem
type FileSource struct {
	spec FileSpec
}

func RegisterFile(r *Registry) {
	r.Register(FileSourceType, ProviderFunc(newFileSource))
}

func newFileSource(raw []byte) (webtree.Source, error) {
	var spec FileSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, err
	}
	spec.Path = strings.TrimSpace(spec.Path)
	if spec.Path == "" {
		return nil, fmt.Errorf("file source requires a path")
	}
	return &FileSource{spec: spec}, nil
}

func (s *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.spec.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tree file: %w", err)
	}
	return f, nil
}

func (s *FileSource) Format() webtree.Format {
	return util.ValueOrDefault(s.spec.Format, webtree.FormatFromPath(s.spec.Path))
}

func (s *FileSource) Path() string {
	return s.spec.Path
}

var _ webtree.Source = (*FileSource)(nil)
