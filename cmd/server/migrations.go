package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/postgres"
)

// handleMigrations runs a goose command against the configured database.
// Only the postgres driver has a schema; other drivers are rejected.
func handleMigrations(ctx context.Context, cfg *config.Config, command string) error {
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("migrations require the %s driver, got %q",
			config.DriverPostgres, cfg.Database.Driver)
	}

	slog.Info("Executing migrations", "command", command)

	db, err := postgres.OpenDB(ctx, cfg.Database.URL,
		time.Duration(cfg.Database.ConnectTimeoutSeconds)*time.Second)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			slog.Error("Error closing database connection", "error", cerr)
		}
	}()

	return postgres.Migrate(ctx, db, command, slog.Default())
}
