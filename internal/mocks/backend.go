package mocks

import (
	"context"

	"github.com/phrazzld/blog-api/internal/store"
)

// MockBackend implements store.Backend over the mock stores.
type MockBackend struct {
	UserStore *MockUserStore
	PostStore *MockPostStore
	PingErr   error
	Closed    bool
}

var _ store.Backend = (*MockBackend)(nil)

// NewMockBackend returns a backend with empty mock stores.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		UserStore: NewMockUserStore(),
		PostStore: NewMockPostStore(),
	}
}

// Users implements store.Backend.
func (m *MockBackend) Users() store.UserStore { return m.UserStore }

// Posts implements store.Backend.
func (m *MockBackend) Posts() store.PostStore { return m.PostStore }

// Ping implements store.Backend.
func (m *MockBackend) Ping(context.Context) error { return m.PingErr }

// Close implements store.Backend.
func (m *MockBackend) Close(context.Context) error {
	m.Closed = true
	return nil
}
