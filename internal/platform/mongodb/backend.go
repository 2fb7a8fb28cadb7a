package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	UsersCollection = "users"
	PostsCollection = "posts"
)

// Backend serves users and posts from one MongoDB database.
type Backend struct {
	client *mongo.Client
	db     *mongo.Database
	users  *UserStore
	posts  *PostStore
}

var _ store.Backend = (*Backend)(nil)

// Open connects to MongoDB, verifies the connection, and ensures indexes exist.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := time.Duration(cfg.ConnectTimeoutSeconds) * time.Second

	opts := options.Client().
		ApplyURI(cfg.URL).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	b := NewBackend(client, cfg.Name, logger)
	if err := b.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info("mongodb backend ready", slog.String("database", cfg.Name))
	return b, nil
}

// NewBackend wraps a connected client.
func NewBackend(client *mongo.Client, database string, logger *slog.Logger) *Backend {
	db := client.Database(database)
	return &Backend{
		client: client,
		db:     db,
		users:  NewUserStore(db.Collection(UsersCollection), logger),
		posts:  NewPostStore(db.Collection(PostsCollection), logger),
	}
}

// EnsureIndexes creates the unique email index and the listing indexes.
// It is idempotent.
func (b *Backend) EnsureIndexes(ctx context.Context) error {
	_, err := b.db.Collection(UsersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_email_key"),
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	_, err = b.db.Collection(PostsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create post indexes: %w", err)
	}
	return nil
}

// Users returns the user store.
func (b *Backend) Users() store.UserStore { return b.users }

// Posts returns the post store.
func (b *Backend) Posts() store.PostStore { return b.posts }

// Ping checks connectivity to the primary.
func (b *Backend) Ping(ctx context.Context) error { return b.client.Ping(ctx, readpref.Primary()) }

// Close disconnects the client.
func (b *Backend) Close(ctx context.Context) error { return b.client.Disconnect(ctx) }

// Drop removes the whole database. It exists for tests.
func (b *Backend) Drop(ctx context.Context) error { return b.db.Drop(ctx) }
