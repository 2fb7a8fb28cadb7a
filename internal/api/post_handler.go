package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// PostHandler serves the /posts resource.
type PostHandler struct {
	postStore  store.PostStore
	pagination config.PaginationConfig
	logger     *slog.Logger
	timeFunc   func() time.Time
}

// NewPostHandler creates a new PostHandler with the given dependencies.
func NewPostHandler(postStore store.PostStore, pagination config.PaginationConfig, log *slog.Logger) *PostHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PostHandler{
		postStore:  postStore,
		pagination: pagination,
		logger:     log.With("component", "post_handler"),
		timeFunc:   time.Now,
	}
}

// List handles GET /posts.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r, h.pagination)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.postStore.List(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list posts")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(page, toPostSummary))
}

// Create handles POST /posts. Required fields are enforced by the store, so an
// empty body is treated like {}.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := shared.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	post := domain.NewPost(req.Title, req.Body)
	if err := h.postStore.Create(r.Context(), post); err != nil {
		HandleAPIError(w, r, err, "Failed to create post")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("post created", "post_id", post.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse[*domain.Post]{
		Message: "Post created successfully",
		Data:    post,
	})
}

// Show handles GET /posts/{id}.
func (h *PostHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	post, err := h.postStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get post")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// Update handles PATCH /posts/{id}. Every key in the body is merged into
// the post; an empty body is rejected before the store is consulted.
func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	fields, err := shared.DecodeBody(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if len(fields) == 0 {
		HandleAPIError(w, r, domain.ErrEmptyPatch, "")
		return
	}

	post, err := h.postStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get post")
		return
	}

	if err := post.ApplyPatch(fields, h.timeFunc()); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.postStore.Update(r.Context(), post); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// deleted between read and write
			HandleAPIError(w, r, store.ErrPostNotFound, "")
			return
		}
		HandleAPIError(w, r, err, "Failed to update post")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("post updated", "post_id", post.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, UpdatePostResponse{
		Message: "Post updated successfully",
		Data:    post,
		Request: ResourceLink{URL: postURL(post.ID)},
	})
}

// Delete handles DELETE /posts/{id}. Deleting an absent post succeeds.
func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.postStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete post")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("post deleted", "post_id", id)
	w.WriteHeader(http.StatusNoContent)
}
