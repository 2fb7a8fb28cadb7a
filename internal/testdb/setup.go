package testdb

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/blog-api/internal/redact"
	"github.com/stretchr/testify/require"
)

// TestTimeout bounds connection and transaction setup.
const TestTimeout = 10 * time.Second

// skipOrFail skips the test locally but fails it in CI, where the
// database is expected to be provisioned.
func skipOrFail(t *testing.T, envVar string) {
	t.Helper()
	if IsCI() {
		t.Fatalf("%s must be set in CI", envVar)
	}
	t.Skipf("%s not set, skipping integration test", envVar)
}

// RequirePostgresURL returns the postgres URL or skips the test.
func RequirePostgresURL(t *testing.T) string {
	t.Helper()
	url := PostgresURL()
	if url == "" {
		skipOrFail(t, EnvTestDatabaseURL)
	}
	return url
}

// RequireMongoURL returns the mongodb URL or skips the test.
func RequireMongoURL(t *testing.T) string {
	t.Helper()
	url := MongoURL()
	if url == "" {
		skipOrFail(t, EnvTestMongoURL)
	}
	return url
}

// OpenPostgres connects to the test database and closes it when the test ends.
// It does not run migrations.
func OpenPostgres(t *testing.T) *sql.DB {
	t.Helper()
	url := RequirePostgresURL(t)

	db, err := sql.Open("pgx", url)
	require.NoError(t, err, "failed to open %s", redact.String(url))

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		t.Fatalf("database ping failed: %s", redact.Error(err))
	}

	t.Cleanup(func() { _ = db.Close() })
	return db
}

// WithTx runs fn inside a transaction that is always rolled back afterwards.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err, "failed to begin transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Errorf("failed to roll back transaction: %v", err)
		}
	}()

	fn(t, tx)
}
