package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/config"
	"github.com/stretchr/testify/require"
)

// DefaultJWTConfig returns a standard configuration for JWT authentication suitable for testing.
func DefaultJWTConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
		BcryptCost:           4,
		PasswordMinLength:    5,
		PasswordMaxLength:    72,
	}
}

// NewTestJWTService creates a JWT service with an explicit clock.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	return newHMACJWTService(secret, lifetime, timeFunc)
}

// RequireTestJWTService creates a JWT service from DefaultJWTConfig and fails the test on error.
func RequireTestJWTService(t *testing.T) JWTService {
	t.Helper()
	service, err := NewJWTService(DefaultJWTConfig())
	require.NoError(t, err, "Failed to create test JWT service")
	return service
}

// GenerateAuthHeaderForTestingT creates an Authorization header value for userID
// signed with DefaultJWTConfig, and fails the test if token generation fails.
func GenerateAuthHeaderForTestingT(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	token, err := RequireTestJWTService(t).GenerateToken(context.Background(), userID, email)
	require.NoError(t, err, "Failed to generate auth header")
	return "Bearer " + token
}
