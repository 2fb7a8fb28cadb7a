package store

import (
	"fmt"

	"github.com/phrazzld/blog-api/internal/domain"
)

// ValidatePost runs domain validation for a post about to be written.
// The returned error matches both domain.ErrValidation and ErrInvalidEntity.
func ValidatePost(post *domain.Post) error {
	if err := post.Validate(); err != nil {
		return &invalidEntityError{err: err}
	}
	return nil
}

type invalidEntityError struct {
	err error
}

func (e *invalidEntityError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidEntity, e.err)
}

func (e *invalidEntityError) Unwrap() []error {
	return []error{ErrInvalidEntity, e.err}
}
