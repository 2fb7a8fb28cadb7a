package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type rule struct {
	message string
	check   func(f field, body Body) bool
}

type field struct {
	present bool
	value   string
}

// FieldRules is the ordered list of checks for one body key.
type FieldRules struct {
	name  string
	rules []rule
	bail  bool
}

// Field starts a rule list for the named body key.
func Field(name string) *FieldRules {
	return &FieldRules{name: name}
}

// Bail stops evaluating this field at its first failure.
func (f *FieldRules) Bail() *FieldRules {
	f.bail = true
	return f
}

// Exists fails when the key is absent or null.
func (f *FieldRules) Exists(message string) *FieldRules {
	return f.add(message, func(v field, _ Body) bool {
		return v.present
	})
}

// NotEmpty fails when the value is empty after trimming whitespace.
func (f *FieldRules) NotEmpty(message string) *FieldRules {
	return f.add(message, func(v field, _ Body) bool {
		return strings.TrimSpace(v.value) != ""
	})
}

// IsEmail fails unless the trimmed value is a valid email address.
func (f *FieldRules) IsEmail(message string) *FieldRules {
	return f.add(message, func(v field, _ Body) bool {
		return validate.Var(strings.TrimSpace(v.value), "email") == nil
	})
}

// MinLength fails when the value has fewer than n characters.
func (f *FieldRules) MinLength(n int, message string) *FieldRules {
	tag := fmt.Sprintf("min=%d", n)
	return f.add(message, func(v field, _ Body) bool {
		return validate.Var(v.value, tag) == nil
	})
}

// MaxLength fails when the value has more than n characters.
func (f *FieldRules) MaxLength(n int, message string) *FieldRules {
	tag := fmt.Sprintf("max=%d", n)
	return f.add(message, func(v field, _ Body) bool {
		return validate.Var(v.value, tag) == nil
	})
}

// MaxBytes fails when the UTF-8 encoding of the value is longer than n bytes.
func (f *FieldRules) MaxBytes(n int, message string) *FieldRules {
	return f.add(message, func(v field, _ Body) bool {
		return len(v.value) <= n
	})
}

// Equals fails unless the value equals the value of the other body key.
func (f *FieldRules) Equals(other, message string) *FieldRules {
	return f.add(message, func(v field, body Body) bool {
		return validate.VarWithValue(v.value, body.String(other), "eqfield") == nil
	})
}

func (f *FieldRules) add(message string, check func(field, Body) bool) *FieldRules {
	f.rules = append(f.rules, rule{message: message, check: check})
	return f
}

func (f *FieldRules) run(body Body) []string {
	v := field{present: body.Has(f.name), value: body.String(f.name)}

	var failed []string
	for _, r := range f.rules {
		if r.check(v, body) {
			continue
		}
		failed = append(failed, r.message)
		if f.bail {
			break
		}
	}
	return failed
}
