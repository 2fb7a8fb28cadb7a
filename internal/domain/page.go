package domain

import "math"

// PageRequest selects one page of a listing. Page is 1-based.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset is the number of items skipped before this page. It saturates at
// math.MaxInt instead of overflowing.
func (r PageRequest) Offset() int {
	if r.Page < 1 || r.Limit < 1 {
		return 0
	}
	if r.Page-1 > math.MaxInt/r.Limit {
		return math.MaxInt
	}
	return (r.Page - 1) * r.Limit
}

// Page is one slice of a listing together with the size of the whole listing.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

// NewPage builds a page for req. A nil items slice is replaced by an empty one
// so it serializes as [] rather than null.
func NewPage[T any](items []T, total int64, req PageRequest) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items: items,
		Total: total,
		Page:  req.Page,
		Limit: req.Limit,
	}
}

// Pages is the number of pages in the listing. An empty listing still has one page.
func (p *Page[T]) Pages() int {
	if p.Limit <= 0 || p.Total == 0 {
		return 1
	}
	return int((p.Total + int64(p.Limit) - 1) / int64(p.Limit))
}
