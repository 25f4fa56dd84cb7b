package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/study-api/internal/platform/logger"
)

// NewRequestLogger logs one line per request with method, URL, status and
// duration. It uses the request-scoped logger when the trace middleware ran first.
func NewRequestLogger(base *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log := logger.FromContextOrDefault(r.Context(), base)
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				log.InfoContext(r.Context(), "request completed",
					slog.String("method", r.Method),
					slog.String("url", r.URL.RequestURI()),
					slog.Int("status", status),
					slog.Int("bytes", ww.BytesWritten()),
					slog.Int64("duration_ms", time.Since(start).Milliseconds()),
					slog.String("request_id", chimw.GetReqID(r.Context())))
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
