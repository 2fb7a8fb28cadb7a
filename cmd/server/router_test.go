package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/phrazzld/blog-api/internal/mocks"
	"github.com/phrazzld/blog-api/internal/platform/logger"
	"github.com/phrazzld/blog-api/internal/platform/memory"
	"github.com/phrazzld/blog-api/internal/service/auth"
	"github.com/phrazzld/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(seedRoutes bool) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:               8080,
			LogLevel:           "debug",
			CORSAllowedOrigins: []string{"*"},
			SeedRoutes:         seedRoutes,
		},
		Database: config.DatabaseConfig{
			Driver:                config.DriverMemory,
			Name:                  "blog",
			ConnectTimeoutSeconds: 5,
		},
		Auth:       auth.DefaultJWTConfig(),
		Pagination: config.PaginationConfig{DefaultLimit: 10, MaxLimit: 100},
	}
}

type testServer struct {
	t       *testing.T
	handler http.Handler
	backend store.Backend
}

func newTestServer(t *testing.T, backend store.Backend, seedRoutes bool) *testServer {
	t.Helper()
	log, _ := logger.NewTestLogger(t)
	app, err := newApplicationWithBackend(testConfig(seedRoutes), log, backend)
	require.NoError(t, err)
	return &testServer{t: t, handler: app.setupRouter(), backend: backend}
}

func (s *testServer) do(method, path string, payload any, token string) *httptest.ResponseRecorder {
	s.t.Helper()

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		require.NoError(s.t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v), rr.Body.String())
	return v
}

func (s *testServer) registerAndLogin(email, password string) (uuid.UUID, string) {
	s.t.Helper()

	rr := s.do(http.MethodPost, "/users", map[string]any{
		"email": email, "password": password, "password_confirmation": password,
	}, "")
	require.Equal(s.t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = s.do(http.MethodPost, "/auth/login", map[string]any{"email": email, "password": password}, "")
	require.Equal(s.t, http.StatusOK, rr.Code, rr.Body.String())

	resp := decode[struct {
		UserID uuid.UUID `json:"user_id"`
		Token  string    `json:"token"`
	}](s.t, rr)
	require.NotEmpty(s.t, resp.Token)
	return resp.UserID, resp.Token
}

func TestUserRegistrationAndLogin(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, memory.NewBackend(), false)
	payload := map[string]any{
		"email": "user@email.com", "password": "123456", "password_confirmation": "123456",
	}

	rr := srv.do(http.MethodPost, "/users", payload, "")
	require.Equal(t, http.StatusCreated, rr.Code)
	created := decode[struct {
		Message string `json:"message"`
	}](t, rr)
	assert.Equal(t, "User created successfully.", created.Message)

	rr = srv.do(http.MethodPost, "/users", payload, "")
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "Email already exists", decode[map[string]any](t, rr)["error"])

	page, err := srv.backend.Users().List(context.Background(), domain.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total, "duplicate registration must not persist")

	rr = srv.do(http.MethodPost, "/auth/login", map[string]any{"email": "user@email.com", "password": "123456"}, "")
	require.Equal(t, http.StatusOK, rr.Code)
	login := decode[map[string]any](t, rr)
	assert.NotEmpty(t, login["token"])
	assert.Equal(t, "You have successfully authenticated.", login["message"])

	rr = srv.do(http.MethodPost, "/auth/login", map[string]any{"email": "user@email.com", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserStore()
	posts := mocks.NewMockPostStore()
	backend := &mocks.MockBackend{UserStore: users, PostStore: posts}
	srv := newTestServer(t, backend, true)
	id := uuid.NewString()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/posts"},
		{http.MethodGet, "/posts/seed"},
		{http.MethodPatch, "/posts/" + id},
		{http.MethodDelete, "/posts/" + id},
		{http.MethodGet, "/users/seed"},
		{http.MethodGet, "/users/" + id},
		{http.MethodDelete, "/users/" + id},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			rr := srv.do(route.method, route.path, map[string]any{"title": "t", "body": "b"}, "")

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Equal(t, "Unauthorized", decode[map[string]any](t, rr)["error"])
		})
	}

	assert.Zero(t, users.TotalCalls(), "no user store calls without a token")
	assert.Zero(t, posts.TotalCalls(), "no post store calls without a token")
}

func TestPostLifecycle(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, memory.NewBackend(), false)
	_, token := srv.registerAndLogin("author@example.com", "secret")

	rr := srv.do(http.MethodPost, "/posts", map[string]any{"title": "First", "body": "Hello"}, token)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	created := decode[struct {
		Message string         `json:"message"`
		Data    map[string]any `json:"data"`
	}](t, rr)
	assert.Equal(t, "Post created successfully", created.Message)
	postID := created.Data["id"].(string)

	rr = srv.do(http.MethodPost, "/posts", map[string]any{"title": "", "body": "x"}, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = srv.do(http.MethodPatch, "/posts/"+postID, nil, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Fields cannot be empty", decode[map[string]any](t, rr)["error"])

	rr = srv.do(http.MethodGet, "/posts/"+postID, nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "First", decode[map[string]any](t, rr)["title"], "empty patch leaves the post unchanged")

	rr = srv.do(http.MethodPatch, "/posts/"+postID, map[string]any{"body": "Updated", "rating": 5}, token)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = srv.do(http.MethodGet, "/posts/"+postID, nil, "")
	shown := decode[map[string]any](t, rr)
	assert.Equal(t, "Updated", shown["body"])
	assert.EqualValues(t, 5, shown["rating"])

	rr = srv.do(http.MethodGet, "/posts?page=1&limit=5", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[map[string]any](t, rr)
	assert.EqualValues(t, 1, list["total"])
	assert.EqualValues(t, 1, list["pages"])

	for range 2 {
		rr = srv.do(http.MethodDelete, "/posts/"+postID, nil, token)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	}

	rr = srv.do(http.MethodGet, "/posts/"+postID, nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUserShowAndDelete(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, memory.NewBackend(), false)
	userID, token := srv.registerAndLogin("me@example.com", "secret")

	rr := srv.do(http.MethodGet, "/users/"+userID.String(), nil, token)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "me@example.com", decode[map[string]any](t, rr)["email"])

	rr = srv.do(http.MethodGet, "/users/not-a-uuid", nil, token)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = srv.do(http.MethodDelete, "/users/"+uuid.NewString(), nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = srv.do(http.MethodGet, "/users", nil, "")
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[struct {
		Data []struct {
			Request struct {
				URL string `json:"url"`
			} `json:"request"`
		} `json:"data"`
	}](t, rr)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "/users/"+userID.String(), list.Data[0].Request.URL)
}

func TestSeedRoutes(t *testing.T) {
	t.Parallel()

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()
		srv := newTestServer(t, memory.NewBackend(), true)
		_, token := srv.registerAndLogin("seeder@example.com", "secret")

		rr := srv.do(http.MethodGet, "/posts/seed", nil, token)
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		rr = srv.do(http.MethodGet, "/posts", nil, "")
		assert.EqualValues(t, 10, decode[map[string]any](t, rr)["total"])
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		srv := newTestServer(t, memory.NewBackend(), false)
		_, token := srv.registerAndLogin("seeder@example.com", "secret")

		rr := srv.do(http.MethodGet, "/posts/seed", nil, token)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "seed is treated as a malformed id")
	})
}

func TestFallbackRoutes(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, memory.NewBackend(), false)

	rr := srv.do(http.MethodGet, "/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not Found", decode[map[string]any](t, rr)["error"])

	rr = srv.do(http.MethodPut, "/posts/"+uuid.NewString(), nil, "")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "Method Not Allowed", decode[map[string]any](t, rr)["error"])

	rr = srv.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestListRejectsOversizedPage(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, memory.NewBackend(), false)

	for _, path := range []string{"/users", "/posts"} {
		rr := srv.do(http.MethodGet, path+"?page=1000000000000000000&limit=10", nil, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code, path)

		rr = srv.do(http.MethodGet, path+"?page=922337203685477581", nil, "")
		require.Equal(t, http.StatusOK, rr.Code, path)
		assert.Empty(t, decode[map[string]any](t, rr)["data"], path)
	}
}

func TestHealthReportsStoreFailure(t *testing.T) {
	t.Parallel()

	backend := mocks.NewMockBackend()
	backend.PingErr = context.DeadlineExceeded
	srv := newTestServer(t, backend, false)

	rr := srv.do(http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestOpenBackendRejectsUnknownDriver(t *testing.T) {
	t.Parallel()

	log, _ := logger.NewTestLogger(t)
	_, err := openBackend(context.Background(), config.DatabaseConfig{Driver: "sqlite"}, log)
	assert.Error(t, err)

	backend, err := openBackend(context.Background(), config.DatabaseConfig{Driver: config.DriverMemory}, log)
	require.NoError(t, err)
	assert.NoError(t, backend.Ping(context.Background()))
}

func TestHandleMigrationsRequiresPostgres(t *testing.T) {
	t.Parallel()

	err := handleMigrations(context.Background(), testConfig(false), "up")
	assert.Error(t, err)
}
