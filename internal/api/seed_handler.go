package api

import (
	"context"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/domain"
)

// Seeder creates fake records. It is satisfied by *seed.Seeder.
type Seeder interface {
	SeedPosts(ctx context.Context, n int) ([]*domain.Post, error)
	SeedUsers(ctx context.Context, n int) ([]*domain.User, error)
}

// SeedHandler serves the development-only seeding routes.
type SeedHandler struct {
	seeder Seeder
	count  int
}

// NewSeedHandler creates a SeedHandler that creates count records per request.
func NewSeedHandler(seeder Seeder, count int) *SeedHandler {
	return &SeedHandler{seeder: seeder, count: count}
}

// SeedPosts handles GET /posts/seed.
func (h *SeedHandler) SeedPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.seeder.SeedPosts(r.Context(), h.count)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to seed posts")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, SeedResponse{
		Message: "Post database seeded successfully",
		Count:   len(posts),
	})
}

// SeedUsers handles GET /users/seed.
func (h *SeedHandler) SeedUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.seeder.SeedUsers(r.Context(), h.count)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to seed users")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, SeedResponse{
		Message: "User database seeded successfully",
		Count:   len(users),
	})
}
