package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/mocks"
	"github.com/phrazzld/blog-api/internal/platform/memory"
	"github.com/phrazzld/blog-api/internal/seed"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedPosts(t *testing.T) {
	t.Parallel()

	backend := memory.NewBackend()
	s := seed.NewSeeder(backend.Users(), backend.Posts(), &mocks.MockPasswordHasher{}, nil,
		seed.WithFaker(gofakeit.New(42)))

	posts, err := s.SeedPosts(context.Background(), seed.DefaultCount)
	require.NoError(t, err)
	assert.Len(t, posts, seed.DefaultCount)

	page, err := backend.Posts().List(context.Background(), domain.PageRequest{Page: 1, Limit: 100})
	require.NoError(t, err)
	assert.EqualValues(t, seed.DefaultCount, page.Total)
	for _, p := range page.Items {
		assert.NoError(t, p.Validate())
	}
}

func TestSeedUsers(t *testing.T) {
	t.Parallel()

	backend := memory.NewBackend()
	hasher := &mocks.MockPasswordHasher{}
	s := seed.NewSeeder(backend.Users(), backend.Posts(), hasher, nil,
		seed.WithFaker(gofakeit.New(7)))

	users, err := s.SeedUsers(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, 1, hasher.HashCallCount, "the shared password is hashed once")

	for _, u := range users {
		stored, err := backend.Users().GetByEmail(context.Background(), u.Email)
		require.NoError(t, err)
		assert.NoError(t, hasher.Compare(stored.HashedPassword, seed.DefaultPassword))
	}
}

func TestSeedUsersRetriesDuplicateEmail(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	attempts := 0
	users.CreateFn = func(ctx context.Context, user *domain.User) error {
		attempts++
		switch attempts {
		case 1:
			return store.ErrEmailExists
		case 2:
			return store.NewStoreError("user", "create", "unique violation", store.ErrDuplicate)
		}
		return nil
	}

	s := seed.NewSeeder(users, mocks.NewMockPostStore(), &mocks.MockPasswordHasher{}, nil)
	created, err := s.SeedUsers(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, created, 1)
	assert.Equal(t, 3, attempts)
}

func TestSeedStopsOnStoreFailure(t *testing.T) {
	t.Parallel()

	posts := mocks.NewMockPostStore()
	posts.CreateFn = func(ctx context.Context, post *domain.Post) error {
		return errors.New("connection reset")
	}

	s := seed.NewSeeder(mocks.NewMockUserStore(), posts, &mocks.MockPasswordHasher{}, nil)
	created, err := s.SeedPosts(context.Background(), 5)

	require.Error(t, err)
	assert.Empty(t, created)
	assert.Equal(t, 1, posts.CallCount("Create"))
}
