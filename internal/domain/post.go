package domain

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Post is a blog article. Title and Body are typed; any other field written
// through an update lands in Extra and is echoed back when the post is read.
type Post struct {
	ID        uuid.UUID
	Title     string
	Body      string
	Extra     map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPost creates a post with a fresh ID and timestamps. It is not validated
// here; stores validate on write.
func NewPost(title, body string) *Post {
	now := time.Now().UTC()
	return &Post{
		ID:        uuid.New(),
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate reports every missing required field.
func (p *Post) Validate() error {
	var errs ValidationErrors

	if err := validate.Var(strings.TrimSpace(p.Title), "required"); err != nil {
		errs = append(errs, FieldError{Field: "title", Message: "Title field is required"})
	}
	if err := validate.Var(strings.TrimSpace(p.Body), "required"); err != nil {
		errs = append(errs, FieldError{Field: "body", Message: "Body field is required"})
	}

	return errs.Err()
}

// ApplyPatch merges fields into the post. title and body must be strings;
// every other key is stored in Extra.
func (p *Post) ApplyPatch(fields map[string]any, now time.Time) error {
	if len(fields) == 0 {
		return ErrEmptyPatch
	}

	var errs ValidationErrors
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		value := fields[key]
		switch key {
		case "title", "body":
			s, ok := value.(string)
			if !ok {
				errs = append(errs, FieldError{
					Field:   key,
					Message: fmt.Sprintf("%s must be a string", strings.ToUpper(key[:1])+key[1:]),
				})
				continue
			}
			if key == "title" {
				p.Title = s
			} else {
				p.Body = s
			}
		default:
			if p.Extra == nil {
				p.Extra = make(map[string]any)
			}
			p.Extra[key] = value
		}
	}
	if len(errs) > 0 {
		return errs
	}

	p.UpdatedAt = now.UTC()
	return nil
}

// Clone returns a copy whose Extra map can be modified independently.
func (p *Post) Clone() *Post {
	c := *p
	if p.Extra != nil {
		c.Extra = maps.Clone(p.Extra)
	}
	return &c
}

// MarshalJSON flattens Extra into the top level. Store-assigned fields are
// written last so extra keys can never shadow them.
func (p Post) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+5)
	for k, v := range p.Extra {
		out[k] = v
	}
	out["id"] = p.ID
	out["title"] = p.Title
	out["body"] = p.Body
	out["created_at"] = p.CreatedAt
	out["updated_at"] = p.UpdatedAt
	return json.Marshal(out)
}
