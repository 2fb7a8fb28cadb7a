package mongodb

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPostDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	post := domain.NewPost("Title", "Body")
	post.Extra = map[string]any{
		"views":  json.Number("42"),
		"rating": json.Number("4.5"),
		"tags":   []any{"go", json.Number("1")},
		"meta":   map[string]any{"draft": true},
	}

	doc := newPostDocument(post)
	assert.Equal(t, post.ID.String(), doc.ID)
	assert.Equal(t, int64(42), doc.Extra["views"])
	assert.Equal(t, 4.5, doc.Extra["rating"])
	assert.Equal(t, bson.A{"go", int64(1)}, doc.Extra["tags"])

	// Simulate what the driver hands back for nested values.
	doc.Extra["meta"] = bson.D{{Key: "draft", Value: true}}
	doc.Extra["count"] = int32(7)

	back, err := doc.toDomain()
	require.NoError(t, err)
	assert.Equal(t, post.ID, back.ID)
	assert.Equal(t, []any{"go", int64(1)}, back.Extra["tags"])
	assert.Equal(t, map[string]any{"draft": true}, back.Extra["meta"])
	assert.Equal(t, int64(7), back.Extra["count"])
}

func TestPostDocumentWithoutExtra(t *testing.T) {
	t.Parallel()

	doc := newPostDocument(domain.NewPost("Title", "Body"))
	assert.Nil(t, doc.Extra)

	back, err := doc.toDomain()
	require.NoError(t, err)
	assert.Nil(t, back.Extra)
}

func TestUserDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("doc@example.com", "password")
	require.NoError(t, err)
	user.HashedPassword = "hash"
	user.CreatedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	doc := newUserDocument(user)
	back, err := doc.toDomain()
	require.NoError(t, err)
	assert.Equal(t, user.ID, back.ID)
	assert.Equal(t, "doc@example.com", back.Email)
	assert.Equal(t, "hash", back.HashedPassword)
	assert.Empty(t, back.Password)
	assert.True(t, user.CreatedAt.Equal(back.CreatedAt))
}

func TestDocumentMalformedID(t *testing.T) {
	t.Parallel()

	_, err := userDocument{ID: "not-a-uuid"}.toDomain()
	assert.Error(t, err)

	_, err = postDocument{ID: "not-a-uuid"}.toDomain()
	assert.Error(t, err)
}

func TestPageOptions(t *testing.T) {
	t.Parallel()

	opts := pageOptions(domain.PageRequest{Page: 3, Limit: 10})
	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(20), *opts.Skip)
	assert.Equal(t, int64(10), *opts.Limit)
}
