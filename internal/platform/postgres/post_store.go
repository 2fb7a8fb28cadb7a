package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
)

// PostgresPostStore implements the store.PostStore interface.
// Fields outside title and body live in the extra JSONB column.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the PostStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

var _ store.PostStore = (*PostgresPostStore)(nil)

const selectPostColumns = `SELECT id, title, body, extra, created_at, updated_at FROM posts`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*domain.Post, error) {
	var (
		post  domain.Post
		extra []byte
	)
	if err := row.Scan(&post.ID, &post.Title, &post.Body, &extra, &post.CreatedAt, &post.UpdatedAt); err != nil {
		return nil, err
	}
	if len(extra) > 0 {
		if err := json.Unmarshal(extra, &post.Extra); err != nil {
			return nil, fmt.Errorf("failed to decode extra fields: %w", err)
		}
	}
	if len(post.Extra) == 0 {
		post.Extra = nil
	}
	return &post, nil
}

func encodeExtra(extra map[string]any) (string, error) {
	if len(extra) == 0 {
		return "{}", nil
	}
	raw, err := json.Marshal(extra)
	if err != nil {
		return "", fmt.Errorf("failed to encode extra fields: %w", err)
	}
	return string(raw), nil
}

// Create implements store.PostStore.Create
func (s *PostgresPostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := store.ValidatePost(post); err != nil {
		log.Debug("post validation failed during create", slog.String("error", err.Error()))
		return err
	}

	extra, err := encodeExtra(post.Extra)
	if err != nil {
		return store.NewStoreError("post", "create", "invalid extra fields", err)
	}

	query := `
		INSERT INTO posts (id, title, body, extra, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := s.db.ExecContext(
		ctx, query,
		post.ID, post.Title, post.Body, extra, post.CreatedAt, post.UpdatedAt,
	); err != nil {
		return store.NewStoreError("post", "create", "insert failed", MapError(err))
	}

	log.Info("post created", slog.String("post_id", post.ID.String()))
	return nil
}

// GetByID implements store.PostStore.GetByID
func (s *PostgresPostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	post, err := scanPost(s.db.QueryRowContext(ctx, selectPostColumns+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPostNotFound
		}
		return nil, store.NewStoreError("post", "get", "query failed", MapError(err))
	}
	return post, nil
}

// List implements store.PostStore.List
func (s *PostgresPostStore) List(
	ctx context.Context,
	req domain.PageRequest,
) (*domain.Page[*domain.Post], error) {
	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return nil, store.NewStoreError("post", "list", "count failed", MapError(err))
	}

	rows, err := s.db.QueryContext(
		ctx,
		selectPostColumns+` ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		req.Limit, req.Offset(),
	)
	if err != nil {
		return nil, store.NewStoreError("post", "list", "query failed", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*domain.Post, 0, req.Limit)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("post", "list", "row iteration failed", err)
	}

	return domain.NewPage(posts, total, req), nil
}

// Update implements store.PostStore.Update
func (s *PostgresPostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := store.ValidatePost(post); err != nil {
		log.Debug("post validation failed during update", slog.String("error", err.Error()))
		return err
	}

	extra, err := encodeExtra(post.Extra)
	if err != nil {
		return store.NewStoreError("post", "update", "invalid extra fields", err)
	}

	query := `
		UPDATE posts
		SET title = $2, body = $3, extra = $4, updated_at = $5
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, post.ID, post.Title, post.Body, extra, post.UpdatedAt)
	if err != nil {
		return store.NewStoreError("post", "update", "update failed", MapError(err))
	}

	return CheckRowsAffected(result, store.ErrPostNotFound)
}

// Delete implements store.PostStore.Delete
func (s *PostgresPostStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id); err != nil {
		return store.NewStoreError("post", "delete", "delete failed", MapError(err))
	}
	return nil
}
