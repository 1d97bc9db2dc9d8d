package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/limatime/attendance-backend-go/internal/pkg/validator"
)

// queryParams collects typed query values and the parse failures met along the way.
type queryParams struct {
	r    *http.Request
	errs validator.ValidationErrors
}

func newQueryParams(r *http.Request) *queryParams {
	return &queryParams{r: r}
}

// String returns the first non-empty value among keys, so aliases like start/start_date both work.
func (q *queryParams) String(keys ...string) *string {
	for _, key := range keys {
		if v := strings.TrimSpace(q.r.URL.Query().Get(key)); v != "" {
			return &v
		}
	}
	return nil
}

func (q *queryParams) Int(key string) *int {
	raw := strings.TrimSpace(q.r.URL.Query().Get(key))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		q.errs = append(q.errs, validator.ValidationError{
			Field:   key,
			Message: key + " must be a number",
		})
		return nil
	}
	return &n
}

func (q *queryParams) IntOr(key string, fallback int) int {
	if n := q.Int(key); n != nil {
		return *n
	}
	return fallback
}

func (q *queryParams) Bool(key string) *bool {
	raw := strings.TrimSpace(q.r.URL.Query().Get(key))
	if raw == "" {
		return nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		q.errs = append(q.errs, validator.ValidationError{
			Field:   key,
			Message: key + " must be true or false",
		})
		return nil
	}
	return &b
}

// Err returns the accumulated parse failures, or nil.
func (q *queryParams) Err() error {
	if len(q.errs) > 0 {
		return q.errs
	}
	return nil
}
