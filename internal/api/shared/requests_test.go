package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    map[string]any
		wantErr bool
	}{
		{name: "empty body", body: "", want: map[string]any{}},
		{name: "whitespace body", body: "  \n", want: map[string]any{}},
		{name: "empty object", body: "{}", want: map[string]any{}},
		{
			name: "numbers keep literal form",
			body: `{"title":"T","views":10,"ratio":0.50}`,
			want: map[string]any{"title": "T", "views": json.Number("10"), "ratio": json.Number("0.50")},
		},
		{name: "null value kept", body: `{"email":null}`, want: map[string]any{"email": nil}},
		{name: "malformed", body: `{"title":`, wantErr: true},
		{name: "array", body: `[1,2]`, wantErr: true},
		{name: "string", body: `"hello"`, wantErr: true},
		{name: "trailing data", body: `{} {}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			got, err := DecodeBody(req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeBodyNotAnObject(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`[]`))
	_, err := DecodeBody(req)
	assert.ErrorIs(t, err, ErrNotAnObject)
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Title string `json:"title"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Hello"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "Hello", dst.Title)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":42}`))
	assert.Error(t, DecodeJSON(req, &dst))
}
