package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/brettbedarf/webtree"
	"github.com/brettbedarf/webtree/internal/util"
)

type HTTPMethod = string

const (
	HTTPMethodGet  HTTPMethod = "GET"
	HTTPMethodPost HTTPMethod = "POST"
)

// HTTPClient is the subset of [http.Client] the http source needs
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPSpec contains http-specific source fields
type HTTPSpec struct {
	URL     string            `json:"url"`
	Method  *HTTPMethod       `json:"method,omitempty"` // Default is GET
	Headers map[string]string `json:"headers,omitempty"`
}

// HTTPProvider builds http sources sharing one client
type HTTPProvider struct {
	client HTTPClient
}

func NewHTTPProvider(client HTTPClient) *HTTPProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPProvider{client: client}
}

// RegisterHTTP registers an http provider using [http.DefaultClient]
func RegisterHTTP(r *Registry) {
	r.Register(HTTPSourceType, NewHTTPProvider(nil))
}

func (p *HTTPProvider) NewSource(raw []byte) (webtree.Source, error) {
	var spec HTTPSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, err
	}
	u, err := validateURL(spec.URL)
	if err != nil {
		return nil, err
	}
	spec.URL = u.String()
	return &HTTPSource{spec: spec, client: p.client}, nil
}

func validateURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("http source requires a url")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid url %q: missing host", raw)
	}
	if u.User != nil {
		return nil, fmt.Errorf("invalid url %q: user info is not allowed", raw)
	}
	return u, nil
}

// HTTPSource fetches a tree document over HTTP. It may be shared between
// goroutines; the format detected by the latest Open is guarded by mu.
type HTTPSource struct {
	spec   HTTPSpec
	client HTTPClient

	mu     sync.RWMutex
	format webtree.Format
}

func (s *HTTPSource) newRequest(ctx context.Context) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, s.method(), s.spec.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/yaml")
	for k, v := range s.spec.Headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

func (s *HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	logger := util.GetLogger("HTTPSource.Open")
	req, err := s.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.spec.URL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", s.spec.URL, resp.Status)
	}
	format := formatFromResponse(resp, s.spec.URL)
	s.mu.Lock()
	s.format = format
	s.mu.Unlock()
	logger.Debug().Str("url", s.spec.URL).Str("format", string(format)).Msg("Fetched tree document")

	return resp.Body, nil
}

// Format is known after Open; before that it is guessed from the URL path
func (s *HTTPSource) Format() webtree.Format {
	s.mu.RLock()
	format := s.format
	s.mu.RUnlock()
	if format != "" {
		return format
	}
	return formatFromURL(s.spec.URL)
}

func (s *HTTPSource) URL() string {
	return s.spec.URL
}

func (s *HTTPSource) method() HTTPMethod {
	return util.ValueOrDefault(s.spec.Method, HTTPMethodGet)
}

func formatFromResponse(resp *http.Response, rawURL string) webtree.Format {
	if mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type")); err == nil {
		switch {
		case strings.Contains(mediaType, "yaml"):
			return webtree.FormatYAML
		case strings.Contains(mediaType, "json"):
			return webtree.FormatJSON
		}
	}
	return formatFromURL(rawURL)
}

func formatFromURL(rawURL string) webtree.Format {
	u, err := url.Parse(rawURL)
	if err != nil {
		return webtree.FormatJSON
	}
	return webtree.FormatFromPath(u.Path)
}

var _ webtree.Source = (*HTTPSource)(nil)
