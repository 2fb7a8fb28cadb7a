package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/phrazzld/blog-api/internal/validation"
)

// UserHandler serves the /users resource.
type UserHandler struct {
	userStore      store.UserStore
	passwordHasher auth.PasswordHasher
	creationChain  *validation.Chain
	pagination     config.PaginationConfig
	logger         *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	passwordHasher auth.PasswordHasher,
	authConfig config.AuthConfig,
	pagination config.PaginationConfig,
	log *slog.Logger,
) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		userStore:      userStore,
		passwordHasher: passwordHasher,
		creationChain:  validation.UserCreationChain(passwordPolicy(authConfig)),
		pagination:     pagination,
		logger:         log.With("component", "user_handler"),
	}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	req, err := parsePageRequest(r, h.pagination)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	page, err := h.userStore.List(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newListResponse(page, toUserSummary))
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	body, err := shared.DecodeBody(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if errs := h.creationChain.Run(body); errs != nil {
		shared.RespondWithValidationErrors(w, r, errs)
		return
	}

	fields := validation.Body(body)
	user, err := domain.NewUser(fields.String("email"), fields.String("password"))
	if err != nil {
		shared.RespondWithValidationErrors(w, r, domain.ValidationErrors{
			{Field: "email", Message: "Email is invalid"},
		})
		return
	}

	hashed, err := h.passwordHasher.Hash(user.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to create user", err)
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	log.Info("user created", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, MessageResponse[UserSummary]{
		Message: "User created successfully.",
		Data:    toUserSummary(user),
	})
}

// Show handles GET /users/{id}.
func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	})
}

// Delete handles DELETE /users/{id}. Deleting an absent user succeeds.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.userStore.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete user")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("user deleted", "user_id", id)
	w.WriteHeader(http.StatusNoContent)
}
