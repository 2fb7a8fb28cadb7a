package api

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/blog-api/internal/config"
	"github.com/phrazzld/blog-api/internal/domain"
)

// getPathUUID extracts a UUID from the URL path parameters.
// A missing or malformed value yields an error matching domain.ErrInvalidID.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s has invalid format", domain.ErrInvalidID, paramName)
	}

	return id, nil
}

// parsePageRequest reads ?page= and ?limit=. Absent values take defaults,
// limit is capped at cfg.MaxLimit, and anything that is not a positive
// integer is a validation failure. A page whose offset would not fit in an
// int is rejected too.
func parsePageRequest(r *http.Request, cfg config.PaginationConfig) (domain.PageRequest, error) {
	req := domain.PageRequest{Page: 1, Limit: cfg.DefaultLimit}
	query := r.URL.Query()

	var errs domain.ValidationErrors
	if raw := query.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs = append(errs, domain.FieldError{Field: "page", Message: "Page must be a positive integer"})
		} else {
			req.Page = n
		}
	}
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "Limit must be a positive integer"})
		} else {
			req.Limit = min(n, cfg.MaxLimit)
		}
	}

	if errs == nil && req.Page-1 > math.MaxInt/req.Limit {
		errs = append(errs, domain.FieldError{Field: "page", Message: "Page is too large"})
	}

	if err := errs.Err(); err != nil {
		return domain.PageRequest{}, err
	}
	return req, nil
}
