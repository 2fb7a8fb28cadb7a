package memory

import (
	"context"

	"github.com/phrazzld/blog-api/internal/store"
)

// Backend holds the in-memory user and post stores.
type Backend struct {
	users *UserStore
	posts *PostStore
}

// NewBackend returns an empty in-memory backend.
func NewBackend() *Backend {
	return &Backend{
		users: NewUserStore(),
		posts: NewPostStore(),
	}
}

// Users returns the user store.
func (b *Backend) Users() store.UserStore { return b.users }

// Posts returns the post store.
func (b *Backend) Posts() store.PostStore { return b.posts }

// Ping always succeeds.
func (b *Backend) Ping(ctx context.Context) error { return ctx.Err() }

// Close is a no-op.
func (b *Backend) Close(context.Context) error { return nil }

var _ store.Backend = (*Backend)(nil)
