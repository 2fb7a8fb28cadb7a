package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/memory"
	"github.com/phrazzld/blog-api/internal/platform/mongodb"
	"github.com/phrazzld/blog-api/internal/platform/postgres"
	"github.com/phrazzld/blog-api/internal/seed"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	backend store.Backend

	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
	seeder         *seed.Seeder
}

// newApplication opens the configured backend and builds the services on top of it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	backend, err := openBackend(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	return newApplicationWithBackend(cfg, logger, backend)
}

// newApplicationWithBackend wires services around an already opened backend.
func newApplicationWithBackend(cfg *config.Config, logger *slog.Logger, backend store.Backend) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		backend: backend,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	if cfg.Server.SeedRoutes {
		app.seeder = seed.NewSeeder(backend.Users(), backend.Posts(), app.passwordHasher, logger)
		logger.Warn("seed routes enabled; do not use in production")
	}

	return app, nil
}

// openBackend connects to the store selected by cfg.Driver.
func openBackend(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (store.Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		logger.Info("using in-memory store; data is lost on restart")
		return memory.NewBackend(), nil
	case config.DriverPostgres:
		backend, err := postgres.Open(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres backend: %w", err)
		}
		return backend, nil
	case config.DriverMongoDB:
		backend, err := mongodb.Open(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open mongodb backend: %w", err)
		}
		return backend, nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if app.backend != nil {
		if err := app.backend.Close(ctx); err != nil {
			app.logger.Error("Error closing store", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
