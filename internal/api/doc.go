// Package api handles incoming HTTP requests for users, posts and login.
// It decodes and validates requests, calls the stores, and translates
// store and auth errors into the JSON error envelopes clients see.
package api
