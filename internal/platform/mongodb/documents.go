package mongodb

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userDocument struct {
	ID             string    `bson:"_id"`
	Email          string    `bson:"email"`
	HashedPassword string    `bson:"hashed_password"`
	CreatedAt      time.Time `bson:"created_at"`
}

type postDocument struct {
	ID        string    `bson:"_id"`
	Title     string    `bson:"title"`
	Body      string    `bson:"body"`
	Extra     bson.M    `bson:"extra,omitempty"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func newUserDocument(u *domain.User) userDocument {
	return userDocument{
		ID:             u.ID.String(),
		Email:          u.Email,
		HashedPassword: u.HashedPassword,
		CreatedAt:      u.CreatedAt.UTC(),
	}
}

func (d userDocument) toDomain() (*domain.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("stored user has malformed id %q: %w", d.ID, err)
	}
	return &domain.User{
		ID:             id,
		Email:          d.Email,
		HashedPassword: d.HashedPassword,
		CreatedAt:      d.CreatedAt.UTC(),
	}, nil
}

func newPostDocument(p *domain.Post) postDocument {
	doc := postDocument{
		ID:        p.ID.String(),
		Title:     p.Title,
		Body:      p.Body,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
	if len(p.Extra) > 0 {
		doc.Extra = make(bson.M, len(p.Extra))
		for k, v := range p.Extra {
			doc.Extra[k] = toBSON(v)
		}
	}
	return doc
}

func (d postDocument) toDomain() (*domain.Post, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("stored post has malformed id %q: %w", d.ID, err)
	}
	post := &domain.Post{
		ID:        id,
		Title:     d.Title,
		Body:      d.Body,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
	if len(d.Extra) > 0 {
		post.Extra = make(map[string]any, len(d.Extra))
		for k, v := range d.Extra {
			post.Extra[k] = fromBSON(v)
		}
	}
	return post, nil
}

// toBSON converts JSON-decoded values into types the BSON encoder stores
// natively. json.Number would otherwise be stored as a string.
func toBSON(v any) any {
	switch val := v.(type) {
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return i
		}
		if f, err := val.Float64(); err == nil {
			return f
		}
		return val.String()
	case map[string]any:
		m := make(bson.M, len(val))
		for k, inner := range val {
			m[k] = toBSON(inner)
		}
		return m
	case []any:
		a := make(bson.A, len(val))
		for i, inner := range val {
			a[i] = toBSON(inner)
		}
		return a
	default:
		return v
	}
}

// fromBSON converts decoded BSON values back into plain JSON-friendly types.
func fromBSON(v any) any {
	switch val := v.(type) {
	case bson.M:
		m := make(map[string]any, len(val))
		for k, inner := range val {
			m[k] = fromBSON(inner)
		}
		return m
	case bson.D:
		m := make(map[string]any, len(val))
		for _, e := range val {
			m[e.Key] = fromBSON(e.Value)
		}
		return m
	case bson.A:
		a := make([]any, len(val))
		for i, inner := range val {
			a[i] = fromBSON(inner)
		}
		return a
	case primitive.DateTime:
		return val.Time().UTC()
	case int32:
		return int64(val)
	default:
		return v
	}
}
