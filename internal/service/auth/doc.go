// Package auth issues and verifies the bearer tokens used by protected
// endpoints and hashes user passwords with bcrypt.
package auth
