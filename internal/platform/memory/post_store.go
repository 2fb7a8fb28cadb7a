package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// PostStore keeps posts in memory. Posts are cloned on the way in and out so
// callers never share an Extra map with the store.
type PostStore struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]*domain.Post
	order []uuid.UUID
}

// NewPostStore returns an empty PostStore.
func NewPostStore() *PostStore {
	return &PostStore{posts: make(map[uuid.UUID]*domain.Post)}
}

var _ store.PostStore = (*PostStore)(nil)

// Create implements store.PostStore.
func (s *PostStore) Create(ctx context.Context, post *domain.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := store.ValidatePost(post); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.posts[post.ID]; exists {
		return store.ErrDuplicate
	}
	s.posts[post.ID] = post.Clone()
	s.order = append(s.order, post.ID)

	return nil
}

// GetByID implements store.PostStore.
func (s *PostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	return post.Clone(), nil
}

// List implements store.PostStore.
func (s *PostStore) List(ctx context.Context, req domain.PageRequest) (*domain.Page[*domain.Post], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	posts := make([]*domain.Post, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		posts = append(posts, s.posts[s.order[i]].Clone())
	}
	s.mu.RUnlock()

	return paginate(posts, func(p *domain.Post) time.Time { return p.CreatedAt }, req), nil
}

// Update implements store.PostStore.
func (s *PostStore) Update(ctx context.Context, post *domain.Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := store.ValidatePost(post); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.posts[post.ID]
	if !ok {
		return store.ErrPostNotFound
	}

	updated := post.Clone()
	updated.CreatedAt = existing.CreatedAt
	s.posts[post.ID] = updated

	return nil
}

// Delete implements store.PostStore.
func (s *PostStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return nil
	}
	delete(s.posts, id)
	s.order = slices.DeleteFunc(s.order, func(other uuid.UUID) bool { return other == id })

	return nil
}
