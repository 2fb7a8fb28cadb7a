package shared

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes bounds request bodies read by the decoders.
const MaxBodyBytes = 1 << 20

// ErrNotAnObject is returned by DecodeBody when the body is valid JSON but not an object.
var ErrNotAnObject = errors.New("request body must be a JSON object")

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	return nil
}

// DecodeBody decodes the request body as a JSON object. Numbers are kept as
// json.Number. An empty body decodes to an empty map.
func DecodeBody(r *http.Request) (map[string]any, error) {
	if r.Body == nil {
		return map[string]any{}, nil
	}

	raw, err := io.ReadAll(io.LimitReader(r.Body, MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("request body contains trailing data")
	}

	body, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotAnObject
	}
	return body, nil
}
