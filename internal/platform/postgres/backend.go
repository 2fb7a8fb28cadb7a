package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/store"
)

// Backend serves users and posts from one PostgreSQL connection pool.
type Backend struct {
	db    *sql.DB
	users *PostgresUserStore
	posts *PostgresPostStore
}

var _ store.Backend = (*Backend)(nil)

// OpenDB opens a pgx-backed *sql.DB and verifies it with a ping.
func OpenDB(ctx context.Context, url string, connectTimeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Open connects to PostgreSQL and, when configured, applies pending migrations.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := OpenDB(ctx, cfg.URL, time.Duration(cfg.ConnectTimeoutSeconds)*time.Second)
	if err != nil {
		return nil, err
	}

	if cfg.AutoMigrate {
		if err := Migrate(ctx, db, MigrateUp, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	logger.Info("postgres backend ready")
	return NewBackend(db, logger), nil
}

// NewBackend wraps an already opened database.
func NewBackend(db *sql.DB, logger *slog.Logger) *Backend {
	return &Backend{
		db:    db,
		users: NewPostgresUserStore(db, logger),
		posts: NewPostgresPostStore(db, logger),
	}
}

// Users returns the user store.
func (b *Backend) Users() store.UserStore { return b.users }

// Posts returns the post store.
func (b *Backend) Posts() store.PostStore { return b.posts }

// Ping checks database connectivity.
func (b *Backend) Ping(ctx context.Context) error { return b.db.PingContext(ctx) }

// Close closes the connection pool.
func (b *Backend) Close(context.Context) error { return b.db.Close() }
