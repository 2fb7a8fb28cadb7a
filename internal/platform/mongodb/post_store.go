package mongodb

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PostStore implements store.PostStore on the posts collection.
type PostStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewPostStore creates a PostStore for coll. If logger is nil, a default logger will be used.
func NewPostStore(coll *mongo.Collection, logger *slog.Logger) *PostStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostStore{
		coll:   coll,
		logger: logger.With(slog.String("component", "post_store")),
	}
}

var _ store.PostStore = (*PostStore)(nil)

// Create implements store.PostStore.Create
func (s *PostStore) Create(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := store.ValidatePost(post); err != nil {
		log.Debug("post validation failed during create", slog.String("error", err.Error()))
		return err
	}

	if _, err := s.coll.InsertOne(ctx, newPostDocument(post)); err != nil {
		return store.NewStoreError("post", "create", "insert failed", MapError(err))
	}

	log.Info("post created", slog.String("post_id", post.ID.String()))
	return nil
}

// GetByID implements store.PostStore.GetByID
func (s *PostStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
	var doc postDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": id.String()}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrPostNotFound
		}
		return nil, store.NewStoreError("post", "get", "find failed", MapError(err))
	}
	return doc.toDomain()
}

// List implements store.PostStore.List
func (s *PostStore) List(ctx context.Context, req domain.PageRequest) (*domain.Page[*domain.Post], error) {
	total, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, store.NewStoreError("post", "list", "count failed", MapError(err))
	}

	cursor, err := s.coll.Find(ctx, bson.D{}, pageOptions(req))
	if err != nil {
		return nil, store.NewStoreError("post", "list", "find failed", MapError(err))
	}

	var docs []postDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, store.NewStoreError("post", "list", "decode failed", err)
	}

	posts := make([]*domain.Post, 0, len(docs))
	for _, doc := range docs {
		p, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return domain.NewPage(posts, total, req), nil
}

// Update implements store.PostStore.Update.
// created_at is kept from the stored document.
func (s *PostStore) Update(ctx context.Context, post *domain.Post) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := store.ValidatePost(post); err != nil {
		log.Debug("post validation failed during update", slog.String("error", err.Error()))
		return err
	}

	doc := newPostDocument(post)
	set := bson.M{
		"title":      doc.Title,
		"body":       doc.Body,
		"extra":      doc.Extra,
		"updated_at": doc.UpdatedAt,
	}
	if doc.Extra == nil {
		set["extra"] = bson.M{}
	}

	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": doc.ID}, bson.M{"$set": set})
	if err != nil {
		return store.NewStoreError("post", "update", "update failed", MapError(err))
	}
	if result.MatchedCount == 0 {
		return store.ErrPostNotFound
	}
	return nil
}

// Delete implements store.PostStore.Delete
func (s *PostStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id.String()}); err != nil {
		return store.NewStoreError("post", "delete", "delete failed", MapError(err))
	}
	return nil
}
