// Package middleware provides HTTP middleware for the AireClaro API.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID is the header the correlation ID travels in, both on
// requests from the gateway and on every response.
const HeaderRequestID = "X-Request-Id"

type requestIDKey struct{}

// newRequestID returns a fresh correlation ID. The req_ prefix makes the
// origin obvious in shared log pipelines.
func newRequestID() string {
	return "req_" + uuid.New().String()[:22]
}

// RequestID ensures every request carries a correlation ID. An ID supplied
// by the gateway is reused; otherwise a fresh one is generated. The ID is
// echoed in the response header and stored in the request context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = newRequestID()
		}

		w.Header().Set(HeaderRequestID, id)
		ctx := context.WithValue(r.Context(), requestIDKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID returns the correlation ID stored by RequestID, or the empty
// string when the middleware did not run.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
