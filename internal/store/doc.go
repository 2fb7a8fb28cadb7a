// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, so handlers behave the same whether posts
// and users live in memory, in PostgreSQL, or in MongoDB.
//
// Every implementation reports failures with the sentinel errors declared
// here, so callers can classify them with errors.Is regardless of backend.
package store
