// Package memory implements the store interfaces with mutex-guarded maps.
// It backs local development and the end-to-end HTTP tests; data does not
// survive a restart.
package memory
