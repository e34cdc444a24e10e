package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/memoir-backend/pkg/ctxutil"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = ctxutil.RequestIDHeader

// maxRequestIDLen caps client-supplied request ids before they reach logs.
const maxRequestIDLen = 128

// RequestID propagates the incoming request id, generating a UUID when it is
// absent or oversized.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLen {
				id = uuid.New().String()
			}
			ctx := ctxutil.WithRequestID(r.Context(), id)
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
