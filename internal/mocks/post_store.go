package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// MockPostStore implements store.PostStore for testing
type MockPostStore struct {
	CreateFn  func(ctx context.Context, post *domain.Post) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	ListFn    func(ctx context.Context, req domain.PageRequest) (*domain.Page[*domain.Post], error)
	UpdateFn  func(ctx context.Context, post *domain.Post) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation
	Posts map[uuid.UUID]*domain.Post

	mu    sync.Mutex
	calls callCounter
}

var _ store.PostStore = (*MockPostStore)(nil)

// NewMockPostStore creates a new mock store with initialized defaults
func NewMockPostStore() *MockPostStore {
	return &MockPostStore{Posts: make(map[uuid.UUID]*domain.Post)}
}

// Create implements the PostStore interface. The default validates like a real store.
func (m *MockPostStore) Create(ctx context.Context, post *domain.Post) error {
	m.calls.record("Create")
	if m.CreateFn != nil {
		return m.CreateFn(ctx, post)
	}
	if err := store.ValidatePost(post); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.Posts[post.ID] = post.Clone()
	return nil
}

// GetByID implements the PostStore interface
func (m *MockPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	m.calls.record("GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	post, ok := m.Posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	return post.Clone(), nil
}

// List implements the PostStore interface
func (m *MockPostStore) List(ctx context.Context, req domain.PageRequest) (*domain.Page[*domain.Post], error) {
	m.calls.record("List")
	if m.ListFn != nil {
		return m.ListFn(ctx, req)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	posts := make([]*domain.Post, 0, len(m.Posts))
	for _, p := range m.Posts {
		posts = append(posts, p.Clone())
	}
	return domain.NewPage(posts, int64(len(posts)), req), nil
}

// Update implements the PostStore interface
func (m *MockPostStore) Update(ctx context.Context, post *domain.Post) error {
	m.calls.record("Update")
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, post)
	}
	if err := store.ValidatePost(post); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Posts[post.ID]; !ok {
		return store.ErrPostNotFound
	}
	m.Posts[post.ID] = post.Clone()
	return nil
}

// Delete implements the PostStore interface
func (m *MockPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	m.calls.record("Delete")
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Posts, id)
	return nil
}

// CallCount returns how many times method was called.
func (m *MockPostStore) CallCount(method string) int { return m.calls.count(method) }

// TotalCalls returns the number of calls across all methods.
func (m *MockPostStore) TotalCalls() int { return m.calls.total() }
