package security

import (
	"errors"
	"net/http"
)

// BodyLimit caps the request payload size. Report datasets arrive as one
// JSON document, so the cap is configurable rather than fixed.
type BodyLimit struct {
	Max int64
}

// Middleware rejects requests exceeding the configured limit with HTTP 413.
// Oversized declared lengths are refused up front; chunked bodies are capped
// while the handler reads them.
func (b BodyLimit) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if b.Max <= 0 || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}
		if r.ContentLength > b.Max {
			http.Error(w, "request entity too large", http.StatusRequestEntityTooLarge)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, b.Max)
		next.ServeHTTP(w, r)
	})
}

// IsBodyTooLarge reports whether err came from a capped request body, so
// decode failures can map to 413 instead of a generic 400.
func IsBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}
