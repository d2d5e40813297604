package middleware

import (
	"context"
	"net/http"

	"github.com/nrednav/cuid2"
)

type ctxKey int

const requestIDKey ctxKey = iota

// RequestID assigns a unique ID to every request, which is stored in the
// request context and echoed in the X-Request-Id response header.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := cuid2.Generate()
			w.Header().Set("X-Request-Id", id)
			ctx := context.WithValue(r.Context(), requestIDKey, id)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID returns the unique ID assigned to the request, or an empty
// string if the RequestID middleware wasn't used.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
