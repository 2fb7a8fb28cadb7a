// Package domain contains the core business entities, value objects, and
// domain logic of the application: users, posts, and the pagination types
// shared by every listing. It is independent of any specific storage or
// delivery mechanism.
package domain
