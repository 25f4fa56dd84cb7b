package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// AllowOrigin reports whether a browser origin may call the API: either it is
// listed in allowed, or it points at a local development host.
func AllowOrigin(allowed []string, origin string) bool {
	for _, o := range allowed {
		if o == origin {
			return true
		}
	}
	return strings.Contains(origin, "localhost") || strings.Contains(origin, "127.0.0.1")
}

// NewCORS returns the cross-origin policy. Credentials are allowed, so the
// matching origin is echoed back rather than a wildcard. Disallowed origins
// are not blocked, they just receive no CORS headers. Every OPTIONS request
// ends here with 204 No Content.
func NewCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	origins := append([]string(nil), allowedOrigins...)
	policy := cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return AllowOrigin(origins, origin)
		},
		AllowedMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:     []string{"Content-Type", "Authorization"},
		ExposedHeaders:     []string{"X-Trace-ID"},
		AllowCredentials:   true,
		OptionsPassthrough: true,
		MaxAge:             300,
	})
	return func(next http.Handler) http.Handler {
		return policy(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}
