package memory

import (
	"slices"
	"time"

	"github.com/phrazzld/blog-api/internal/domain"
)

// paginate sorts items newest first and cuts out the requested page.
// Ties on created time keep insertion order reversed, matching a
// "created_at DESC" listing.
func paginate[T any](items []T, createdAt func(T) time.Time, req domain.PageRequest) *domain.Page[T] {
	slices.SortStableFunc(items, func(a, b T) int {
		return createdAt(b).Compare(createdAt(a))
	})

	total := int64(len(items))
	start := min(req.Offset(), len(items))
	end := start + min(max(req.Limit, 0), len(items)-start)

	return domain.NewPage(items[start:end], total, req)
}
