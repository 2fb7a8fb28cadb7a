// Package mongodb implements the store interfaces on MongoDB using the
// official mongo-driver. Users and posts are stored in the "users" and
// "posts" collections with the UUID string as _id; fields written to a post
// beyond title and body are kept in an embedded "extra" document.
package mongodb
