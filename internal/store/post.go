package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
)

// PostStore defines the interface for post persistence.
type PostStore interface {
	// Create validates and saves a new post.
	// Returns domain.ValidationErrors (wrapping ErrInvalidEntity) when the post is invalid.
	Create(ctx context.Context, post *domain.Post) error

	// GetByID retrieves a post by ID.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)

	// List returns one page of posts, newest first.
	List(ctx context.Context, req domain.PageRequest) (*domain.Page[*domain.Post], error)

	// Update validates and replaces the stored post with the same ID.
	// Returns ErrPostNotFound if the post does not exist.
	Update(ctx context.Context, post *domain.Post) error

	// Delete removes a post by ID. Deleting a missing post is not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
