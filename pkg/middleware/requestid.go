package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// DefaultRequestIDHeader is used when RequestID is given an empty header name.
const DefaultRequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestID propagates the caller's request id from header, or assigns a new
// UUID when absent. The id is echoed in the response and stored in the request context.
func RequestID(header string) func(http.Handler) http.Handler {
	if header == "" {
		header = DefaultRequestIDHeader
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(header)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(header, id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		})
	}
}

// RequestIDFrom returns the request id stored by RequestID, or "".
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
