package domain_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		title    string
		body     string
		messages []string
	}{
		{name: "valid", title: "Hello", body: "World"},
		{name: "missing title", body: "World", messages: []string{"Title field is required"}},
		{name: "blank body", title: "Hello", body: "   ", messages: []string{"Body field is required"}},
		{
			name:     "both missing",
			messages: []string{"Title field is required", "Body field is required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := domain.NewPost(tt.title, tt.body).Validate()
			if tt.messages == nil {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))

			var verrs domain.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tt.messages, verrs.Messages())
		})
	}
}

func TestPostApplyPatch(t *testing.T) {
	t.Parallel()

	t.Run("empty patch", func(t *testing.T) {
		t.Parallel()
		p := domain.NewPost("Hello", "World")
		err := p.ApplyPatch(map[string]any{}, time.Now())
		assert.ErrorIs(t, err, domain.ErrEmptyPatch)
		assert.Equal(t, "Hello", p.Title)
	})

	t.Run("merges typed and extra fields", func(t *testing.T) {
		t.Parallel()
		p := domain.NewPost("Hello", "World")
		later := p.UpdatedAt.Add(time.Minute)

		err := p.ApplyPatch(map[string]any{"title": "New", "tags": []any{"go"}}, later)
		require.NoError(t, err)
		assert.Equal(t, "New", p.Title)
		assert.Equal(t, "World", p.Body)
		assert.Equal(t, []any{"go"}, p.Extra["tags"])
		assert.Equal(t, later.UTC(), p.UpdatedAt)
	})

	t.Run("non-string title", func(t *testing.T) {
		t.Parallel()
		p := domain.NewPost("Hello", "World")
		err := p.ApplyPatch(map[string]any{"title": 42.0}, time.Now())

		var verrs domain.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		assert.Equal(t, []string{"Title must be a string"}, verrs.Messages())
	})
}

func TestPostMarshalJSON(t *testing.T) {
	t.Parallel()

	p := domain.NewPost("Hello", "World")
	p.Extra = map[string]any{
		"id":       "spoofed",
		"subtitle": "extra",
	}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, p.ID.String(), decoded["id"])
	assert.Equal(t, "Hello", decoded["title"])
	assert.Equal(t, "World", decoded["body"])
	assert.Equal(t, "extra", decoded["subtitle"])
	assert.Contains(t, decoded, "created_at")
	assert.Contains(t, decoded, "updated_at")
}

func TestPostClone(t *testing.T) {
	t.Parallel()

	p := domain.NewPost("Hello", "World")
	p.Extra = map[string]any{"k": "v"}

	c := p.Clone()
	c.Extra["k"] = "changed"
	c.ID = uuid.New()

	assert.Equal(t, "v", p.Extra["k"])
	assert.NotEqual(t, p.ID, c.ID)
}

func TestPagePages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total int64
		limit int
		want  int
	}{
		{total: 0, limit: 10, want: 1},
		{total: 10, limit: 10, want: 1},
		{total: 11, limit: 10, want: 2},
		{total: 101, limit: 25, want: 5},
	}

	for _, tt := range tests {
		page := domain.NewPage[int](nil, tt.total, domain.PageRequest{Page: 1, Limit: tt.limit})
		assert.Equal(t, tt.want, page.Pages(), "total=%d limit=%d", tt.total, tt.limit)
		assert.NotNil(t, page.Items)
	}

	assert.Equal(t, 20, domain.PageRequest{Page: 3, Limit: 10}.Offset())
	assert.Equal(t, 0, domain.PageRequest{Page: 0, Limit: 10}.Offset())
	assert.Equal(t, math.MaxInt, domain.PageRequest{Page: math.MaxInt, Limit: 10}.Offset())
	assert.Equal(t, math.MaxInt-1, domain.PageRequest{Page: math.MaxInt, Limit: 1}.Offset())
}
