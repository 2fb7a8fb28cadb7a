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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserStore implements store.UserStore on the users collection.
// Email uniqueness relies on the unique index created by EnsureIndexes.
type UserStore struct {
	coll   *mongo.Collection
	logger *slog.Logger
}

// NewUserStore creates a UserStore for coll. If logger is nil, a default logger will be used.
func NewUserStore(coll *mongo.Collection, logger *slog.Logger) *UserStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		coll:   coll,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		return store.NewStoreError("user", "create", "invalid user", err)
	}

	if _, err := s.coll.InsertOne(ctx, newUserDocument(user)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Debug("email already registered", slog.String("user_id", user.ID.String()))
			return store.ErrEmailExists
		}
		return store.NewStoreError("user", "create", "insert failed", MapError(err))
	}

	log.Info("user created", slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.findOne(ctx, bson.M{"_id": id.String()})
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *UserStore) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc userDocument
	if err := s.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, store.ErrUserNotFound
		}
		return nil, store.NewStoreError("user", "get", "find failed", MapError(err))
	}
	return doc.toDomain()
}

// List implements store.UserStore.List
func (s *UserStore) List(ctx context.Context, req domain.PageRequest) (*domain.Page[*domain.User], error) {
	total, err := s.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return nil, store.NewStoreError("user", "list", "count failed", MapError(err))
	}

	cursor, err := s.coll.Find(ctx, bson.D{}, pageOptions(req))
	if err != nil {
		return nil, store.NewStoreError("user", "list", "find failed", MapError(err))
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, store.NewStoreError("user", "list", "decode failed", err)
	}

	users := make([]*domain.User, 0, len(docs))
	for _, doc := range docs {
		u, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return domain.NewPage(users, total, req), nil
}

// Delete implements store.UserStore.Delete
func (s *UserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": id.String()}); err != nil {
		return store.NewStoreError("user", "delete", "delete failed", MapError(err))
	}
	return nil
}

// pageOptions sorts newest first and selects req's window.
func pageOptions(req domain.PageRequest) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(req.Offset())).
		SetLimit(int64(req.Limit))
}
