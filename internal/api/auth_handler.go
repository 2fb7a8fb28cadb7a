package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/blog-api/internal/api/shared"
	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/phrazzld/blog-api/internal/validation"
)

const invalidCredentialsMessage = "Invalid Credentials"

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore      store.UserStore
	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
	loginChain     *validation.Chain
	tokenLifetime  time.Duration
	logger         *slog.Logger
	timeFunc       func() time.Time
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordHasher auth.PasswordHasher,
	authConfig config.AuthConfig,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		userStore:      userStore,
		jwtService:     jwtService,
		passwordHasher: passwordHasher,
		loginChain:     validation.LoginChain(passwordPolicy(authConfig)),
		tokenLifetime:  time.Duration(authConfig.TokenLifetimeMinutes) * time.Minute,
		logger:         log.With("component", "auth_handler"),
		timeFunc:       time.Now,
	}
}

// Login handles the /auth/login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	body, err := shared.DecodeBody(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if errs := h.loginChain.Run(body); errs != nil {
		shared.RespondWithValidationErrors(w, r, errs)
		return
	}

	email := strings.TrimSpace(validation.Body(body).String("email"))
	password := validation.Body(body).String("password")

	user, err := h.userStore.GetByEmail(r.Context(), email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login for unknown email")
			shared.RespondWithError(w, r, http.StatusUnauthorized, invalidCredentialsMessage)
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to authenticate user", err)
		return
	}

	if err := h.passwordHasher.Compare(user.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, invalidCredentialsMessage)
			return
		}
		// An unusable stored hash looks like a wrong password to the client.
		shared.RespondWithErrorAndLog(w, r, http.StatusUnauthorized, invalidCredentialsMessage,
			fmt.Errorf("password comparison failed for user %s: %w", user.ID, err),
			shared.WithElevatedLogLevel())
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Email)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to generate authentication token", err)
		return
	}

	expiresAt := h.timeFunc().Add(h.tokenLifetime).UTC()
	log.Info("user authenticated", "user_id", user.ID)

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Message:   "You have successfully authenticated.",
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
	})
}

func passwordPolicy(cfg config.AuthConfig) validation.PasswordPolicy {
	return validation.PasswordPolicy{
		MinLength: cfg.PasswordMinLength,
		MaxLength: cfg.PasswordMaxLength,
	}
}
