package store

import (
	"context"
	"database/sql"
)

// Backend is an opened storage driver exposing the stores it serves.
type Backend interface {
	Users() UserStore
	Posts() PostStore

	// Ping checks that the underlying storage is reachable.
	Ping(ctx context.Context) error

	// Close releases connections held by the backend.
	Close(ctx context.Context) error
}

// DBTX is satisfied by *sql.DB and *sql.Tx, so SQL stores can run inside
// or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
