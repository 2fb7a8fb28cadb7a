// Command seed fills the configured store with fake users and posts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/platform/memory"
	"github.com/phrazzld/blog-api/internal/platform/mongodb"
	"github.com/phrazzld/blog-api/internal/platform/postgres"
	"github.com/phrazzld/blog-api/internal/seed"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

func main() {
	posts := flag.Int("posts", seed.DefaultCount, "number of posts to create")
	users := flag.Int("users", seed.DefaultCount, "number of users to create")
	password := flag.String("password", seed.DefaultPassword, "plaintext password for seeded users")
	flag.Parse()

	if err := run(*posts, *users, *password); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run(posts, users int, password string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	backend, err := open(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := backend.Close(context.Background()); cerr != nil {
			log.Error("Error closing store", "error", cerr)
		}
	}()

	seeder := seed.NewSeeder(backend.Users(), backend.Posts(),
		auth.NewBcryptHasher(cfg.Auth.BcryptCost), log, seed.WithPassword(password))

	if _, err := seeder.SeedUsers(ctx, users); err != nil {
		return err
	}
	if _, err := seeder.SeedPosts(ctx, posts); err != nil {
		return err
	}

	log.Info("Seeding completed", "users", users, "posts", posts, "driver", cfg.Database.Driver)
	return nil
}

func open(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) (store.Backend, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		backend, err := postgres.Open(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return backend, nil
	case config.DriverMongoDB:
		backend, err := mongodb.Open(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return backend, nil
	case config.DriverMemory:
		log.Warn("seeding the in-memory store has no lasting effect")
		return memory.NewBackend(), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
