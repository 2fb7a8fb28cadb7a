package validation

import (
	"encoding/json"
	"strconv"
)

// Body is a decoded JSON object. Numbers should be decoded as json.Number
// so they keep their literal form when coerced to strings.
type Body map[string]any

// Has reports whether key is present with a non-null value.
func (b Body) Has(key string) bool {
	v, ok := b[key]
	return ok && v != nil
}

// String returns the value under key coerced to a string. Missing keys, null,
// arrays and objects coerce to "".
func (b Body) String(key string) string {
	return coerce(b[key])
}

func coerce(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}
