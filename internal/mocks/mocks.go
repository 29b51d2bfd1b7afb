package mocks

import (
	"context"
	"io"
	"net/http"

	"github.com/brettbedarf/webtree"
	"github.com/stretchr/testify/mock"
)

// MockSource implements webtree.Source for testing across packages
type MockSource struct {
	mock.Mock
}

func (m *MockSource) Open(ctx context.Context) (io.ReadCloser, error) {
	args := m.Called(ctx)

	// Handle function return types (for complex tests)
	if fn, ok := args.Get(0).(func(context.Context) io.ReadCloser); ok {
		return fn(ctx), args.Error(1)
	}

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockSource) Format() webtree.Format {
	args := m.Called()
	return args.Get(0).(webtree.Format)
}

var _ webtree.Source = (*MockSource)(nil)

// MockSourceProvider implements webtree.SourceProvider for testing across packages
type MockSourceProvider struct {
	mock.Mock
}

func (m *MockSourceProvider) NewSource(raw []byte) (webtree.Source, error) {
	args := m.Called(raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(webtree.Source), args.Error(1)
}

var _ webtree.SourceProvider = (*MockSourceProvider)(nil)

// MockHTTPClient stands in for an http.Client
type MockHTTPClient struct {
	mock.Mock
}

func (m *MockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

// MockRenderRequester implements webtree.RenderRequester for testing across packages
type MockRenderRequester struct {
	mock.Mock
}

func (m *MockRenderRequester) RequestRender() {
	m.Called()
}

var _ webtree.RenderRequester = (*MockRenderRequester)(nil)
