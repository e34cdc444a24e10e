package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/memoir-backend/internal/config"
	"github.com/heartmarshall/memoir-backend/pkg/ctxutil"
)

// IdempotencyKeyHeader is the upload retry key read by the recording endpoints.
const IdempotencyKeyHeader = "Idempotency-Key"

// requiredHeaders are request headers the API reads. Browsers must be allowed
// to send them regardless of configuration, or cross-origin uploads lose
// their idempotency key.
var requiredHeaders = []string{"Authorization", "Content-Type", IdempotencyKeyHeader, ctxutil.RequestIDHeader}

// exposedHeaders are response headers clients read: the reminder cooldown
// and rate limiter set Retry-After.
var exposedHeaders = []string{"Retry-After", ctxutil.RequestIDHeader}

// CORS answers preflight requests and tags responses for allowed origins.
// Configured headers are allowed in addition to the ones the API reads.
func CORS(cfg config.CORSConfig) Middleware {
	origins := config.ParseList(cfg.AllowedOrigins)
	anyOrigin := false
	for _, o := range origins {
		if o == "*" {
			anyOrigin = true
		}
	}

	allowHeaders := strings.Join(mergeHeaders(requiredHeaders, config.ParseList(cfg.AllowedHeaders)), ", ")
	exposeHeaders := strings.Join(exposedHeaders, ", ")
	maxAge := strconv.Itoa(cfg.MaxAge)

	allowed := func(origin string) bool {
		if anyOrigin {
			return true
		}
		for _, o := range origins {
			if o == origin {
				return true
			}
		}
		return false
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			w.Header().Add("Vary", "Origin")

			if origin == "" || !allowed(origin) {
				next.ServeHTTP(w, r)
				return
			}

			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			if cfg.AllowCredentials {
				h.Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", allowHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			h.Set("Access-Control-Expose-Headers", exposeHeaders)
			next.ServeHTTP(w, r)
		})
	}
}

// mergeHeaders appends extra to base, skipping case-insensitive duplicates.
func mergeHeaders(base, extra []string) []string {
	out := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]bool, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, h := range list {
			key := http.CanonicalHeaderKey(h)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, h)
		}
	}
	return out
}
