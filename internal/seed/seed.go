// Package seed fills a store with fake users and posts for local development.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
)

const (
	// DefaultCount is how many records one seeding call creates.
	DefaultCount = 10

	// DefaultPassword is the plaintext password given to every seeded user.
	DefaultPassword = "secret"

	// maxEmailAttempts bounds retries when the faker repeats an email.
	maxEmailAttempts = 5
)

// Seeder creates fake records through the regular store interfaces.
type Seeder struct {
	users    store.UserStore
	posts    store.PostStore
	hasher   auth.PasswordHasher
	faker    *gofakeit.Faker
	password string
	logger   *slog.Logger
}

// Option customizes a Seeder.
type Option func(*Seeder)

// WithFaker replaces the faker, typically with a seeded one for repeatable output.
func WithFaker(f *gofakeit.Faker) Option {
	return func(s *Seeder) { s.faker = f }
}

// WithPassword sets the plaintext password for seeded users.
func WithPassword(password string) Option {
	return func(s *Seeder) { s.password = password }
}

// NewSeeder creates a Seeder writing to the given stores.
func NewSeeder(
	users store.UserStore,
	posts store.PostStore,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
	opts ...Option,
) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Seeder{
		users:    users,
		posts:    posts,
		hasher:   hasher,
		faker:    gofakeit.New(0),
		password: DefaultPassword,
		logger:   logger.With("component", "seeder"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SeedPosts creates n posts with lorem ipsum titles and bodies.
func (s *Seeder) SeedPosts(ctx context.Context, n int) ([]*domain.Post, error) {
	posts := make([]*domain.Post, 0, n)
	for i := 0; i < n; i++ {
		post := domain.NewPost(
			strings.TrimSuffix(s.faker.Sentence(6), "."),
			s.faker.Paragraph(1, 4, 12, " "),
		)
		if err := s.posts.Create(ctx, post); err != nil {
			return posts, fmt.Errorf("seed post %d: %w", i+1, err)
		}
		posts = append(posts, post)
	}

	s.logger.InfoContext(ctx, "seeded posts", "count", len(posts))
	return posts, nil
}

// SeedUsers creates n users with random emails. They all share one password,
// hashed once.
func (s *Seeder) SeedUsers(ctx context.Context, n int) ([]*domain.User, error) {
	hashed, err := s.hasher.Hash(s.password)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]*domain.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.createUser(ctx, hashed)
		if err != nil {
			return users, fmt.Errorf("seed user %d: %w", i+1, err)
		}
		users = append(users, user)
	}

	s.logger.InfoContext(ctx, "seeded users", "count", len(users))
	return users, nil
}

func (s *Seeder) createUser(ctx context.Context, hashed string) (*domain.User, error) {
	var lastErr error
	for attempt := 0; attempt < maxEmailAttempts; attempt++ {
		user, err := domain.NewUser(strings.ToLower(s.faker.Email()), s.password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hashed
		user.Password = ""

		err = s.users.Create(ctx, user)
		if err == nil {
			return user, nil
		}
		if !store.IsDuplicateError(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}
