package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/postgres"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/phrazzld/blog-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openMigratedDB connects to the test database and applies migrations.
// Tests are skipped when no database URL is configured.
func openMigratedDB(t *testing.T) *sql.DB {
	t.Helper()
	db := testdb.OpenPostgres(t)
	require.NoError(t, postgres.Migrate(context.Background(), db, postgres.MigrateUp, nil))
	return db
}

func TestPostgresUserStore(t *testing.T) {
	db := openMigratedDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		users := postgres.NewPostgresUserStore(tx, nil)

		before, err := users.List(ctx, domain.PageRequest{Page: 1, Limit: 10})
		require.NoError(t, err)

		email := "pg-" + uuid.NewString()[:8] + "@example.com"
		u, err := domain.NewUser(email, "password")
		require.NoError(t, err)
		u.HashedPassword = "hash"
		require.NoError(t, users.Create(ctx, u))

		got, err := users.GetByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		assert.Equal(t, "hash", got.HashedPassword)

		page, err := users.List(ctx, domain.PageRequest{Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.Equal(t, before.Total+1, page.Total)
		assert.Equal(t, u.ID, page.Items[0].ID, "newest first")

		require.NoError(t, users.Delete(ctx, u.ID))
		require.NoError(t, users.Delete(ctx, uuid.New()))
		_, err = users.GetByID(ctx, u.ID)
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

// The unique violation aborts the surrounding transaction, so this runs on
// the pool and cleans up after itself.
func TestPostgresUserStoreDuplicateEmail(t *testing.T) {
	db := openMigratedDB(t)
	ctx := context.Background()
	users := postgres.NewPostgresUserStore(db, nil)

	email := "dup-" + uuid.NewString()[:8] + "@example.com"
	u, err := domain.NewUser(email, "password")
	require.NoError(t, err)
	u.HashedPassword = "hash"
	require.NoError(t, users.Create(ctx, u))
	t.Cleanup(func() { _ = users.Delete(ctx, u.ID) })

	dup, err := domain.NewUser(email, "password")
	require.NoError(t, err)
	dup.HashedPassword = "hash"
	assert.ErrorIs(t, users.Create(ctx, dup), store.ErrEmailExists)
}

func TestPostgresPostStore(t *testing.T) {
	db := openMigratedDB(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		posts := postgres.NewPostgresPostStore(tx, nil)

		assert.ErrorIs(t, posts.Create(ctx, domain.NewPost("", "body")), store.ErrInvalidEntity)

		p := domain.NewPost("Title", "Body")
		require.NoError(t, posts.Create(ctx, p))

		got, err := posts.GetByID(ctx, p.ID)
		require.NoError(t, err)
		require.NoError(t, got.ApplyPatch(map[string]any{"tags": []any{"go", "sql"}}, time.Now()))
		require.NoError(t, posts.Update(ctx, got))

		got, err = posts.GetByID(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, []any{"go", "sql"}, got.Extra["tags"])

		missing := domain.NewPost("Title", "Body")
		assert.ErrorIs(t, posts.Update(ctx, missing), store.ErrPostNotFound)

		require.NoError(t, posts.Delete(ctx, p.ID))
		_, err = posts.GetByID(ctx, p.ID)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})
}

func TestPostgresBackendPing(t *testing.T) {
	db := openMigratedDB(t)
	b := postgres.NewBackend(db, nil)
	assert.NoError(t, b.Ping(context.Background()))
}
