package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
)

// ResourceLink points at the canonical URL of a resource.
type ResourceLink struct {
	URL string `json:"url"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"user_id"`

	// Token is the JWT used for API authorization
	Token string `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires
	ExpiresAt string `json:"expires_at"`
}

// CreatePostRequest defines the payload for creating a post.
// Required fields are checked by the store.
type CreatePostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// UserSummary is a user as it appears in listings and creation responses.
type UserSummary struct {
	ID        uuid.UUID    `json:"id"`
	Email     string       `json:"email"`
	CreatedAt time.Time    `json:"created_at"`
	Request   ResourceLink `json:"request"`
}

// UserResponse is the body of GET /users/{id}.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// PostSummary is a post as it appears in listings.
type PostSummary struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	CreatedAt time.Time    `json:"created_at"`
	Request   ResourceLink `json:"request"`
}

// ListResponse is the paginated envelope shared by list endpoints.
type ListResponse[T any] struct {
	Total int64 `json:"total"`
	Limit int   `json:"limit"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
	Data  []T   `json:"data"`
}

// MessageResponse carries a human-readable message and the affected resource.
type MessageResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// UpdatePostResponse is the body of PATCH /posts/{id}.
type UpdatePostResponse struct {
	Message string       `json:"message"`
	Data    *domain.Post `json:"data"`
	Request ResourceLink `json:"request"`
}

// SeedResponse reports the outcome of a seeding request.
type SeedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

func userURL(id uuid.UUID) string { return "/users/" + id.String() }

func postURL(id uuid.UUID) string { return "/posts/" + id.String() }

func toUserSummary(u *domain.User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		Request:   ResourceLink{URL: userURL(u.ID)},
	}
}

func toPostSummary(p *domain.Post) PostSummary {
	return PostSummary{
		ID:        p.ID,
		Title:     p.Title,
		CreatedAt: p.CreatedAt,
		Request:   ResourceLink{URL: postURL(p.ID)},
	}
}

// newListResponse projects each item of page through fn.
func newListResponse[T, R any](page *domain.Page[T], fn func(T) R) ListResponse[R] {
	data := make([]R, 0, len(page.Items))
	for _, item := range page.Items {
		data = append(data, fn(item))
	}
	return ListResponse[R]{
		Total: page.Total,
		Limit: page.Limit,
		Page:  page.Page,
		Pages: page.Pages(),
		Data:  data,
	}
}
