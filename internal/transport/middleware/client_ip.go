package middleware

import (
	"net"
	"net/http"

	"github.com/heartmarshall/memoir-backend/pkg/ctxutil"
)

// ClientIP records the peer address in the request context for the rate
// limiter and the access log. Forwarding headers are not trusted.
func ClientIP() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxutil.WithClientIP(r.Context(), peerIP(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// clientIP prefers the address recorded by ClientIP.
func clientIP(r *http.Request) string {
	if ip := ctxutil.ClientIPFromCtx(r.Context()); ip != "" {
		return ip
	}
	return peerIP(r)
}

func peerIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
