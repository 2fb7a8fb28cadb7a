package validation

import (
	"github.com/phrazzld/blog-api/internal/domain"
)

// Chain validates a body against an ordered set of fields.
type Chain struct {
	fields []*FieldRules
}

// NewChain builds a chain from fields in the order they should be reported.
func NewChain(fields ...*FieldRules) *Chain {
	return &Chain{fields: fields}
}

// Run evaluates every field against body. It returns nil when body is valid.
func (c *Chain) Run(body Body) domain.ValidationErrors {
	var errs domain.ValidationErrors
	for _, f := range c.fields {
		for _, msg := range f.run(body) {
			errs = append(errs, domain.FieldError{Field: f.name, Message: msg})
		}
	}
	return errs
}
