package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logger writes one structured "request" entry after each request completes.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := newStatusWriter(w)

			next.ServeHTTP(sw, r)

			attrs := []any{
				"method", r.Method,
				"uri", requestURI(r),
				"status", sw.status,
				"duration", time.Since(start),
			}
			if id := RequestIDFrom(r.Context()); id != "" {
				attrs = append(attrs, "request_id", id)
			}

			logger.Info("request", attrs...)
		})
	}
}

// requestURI returns the target as sent by the client, before any module
// prefix stripping.
func requestURI(r *http.Request) string {
	if r.RequestURI != "" {
		return r.RequestURI
	}
	return r.URL.RequestURI()
}
