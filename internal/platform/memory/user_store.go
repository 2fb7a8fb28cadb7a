package memory

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/store"
)

// UserStore keeps users in memory. The email index makes the uniqueness
// check and the insert a single critical section.
type UserStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]domain.User
	byEmail map[string]uuid.UUID
	order   []uuid.UUID
}

// NewUserStore returns an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[uuid.UUID]domain.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := user.Validate(); err != nil {
		return store.NewStoreError("user", "create", "invalid user", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.TrimSpace(user.Email)
	if _, taken := s.byEmail[email]; taken {
		return store.ErrEmailExists
	}

	stored := *user
	stored.Email = email
	stored.Password = ""
	s.byID[stored.ID] = stored
	s.byEmail[email] = stored.ID
	s.order = append(s.order, stored.ID)

	return nil
}

// GetByID implements store.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byID[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// GetByEmail implements store.UserStore.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	user := s.byID[id]
	return &user, nil
}

// List implements store.UserStore.
func (s *UserStore) List(ctx context.Context, req domain.PageRequest) (*domain.Page[*domain.User], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	users := make([]*domain.User, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		u := s.byID[s.order[i]]
		users = append(users, &u)
	}
	s.mu.RUnlock()

	return paginate(users, func(u *domain.User) time.Time { return u.CreatedAt }, req), nil
}

// Delete implements store.UserStore.
func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byID[id]
	if !ok {
		return nil
	}
	delete(s.byID, id)
	delete(s.byEmail, user.Email)
	s.order = slices.DeleteFunc(s.order, func(other uuid.UUID) bool { return other == id })

	return nil
}
