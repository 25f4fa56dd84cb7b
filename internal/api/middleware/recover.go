package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/phrazzld/study-api/internal/api/shared"
	"github.com/phrazzld/study-api/internal/platform/logger"
	"github.com/phrazzld/study-api/internal/redact"
)

// NewRecoverer turns a panic in a handler into a 500 JSON response.
// The panic value and stack are only returned to the client when exposeStack is set.
func NewRecoverer(base *slog.Logger, exposeStack bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := string(debug.Stack())
				log := logger.FromContextOrDefault(r.Context(), base)
				log.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", redact.String(fmt.Sprint(rec))),
					slog.String("stack", stack),
					slog.String("path", r.URL.Path))

				body := shared.ErrorResponse{
					Error:   "Internal Server Error",
					Message: "Something went wrong",
				}
				if exposeStack {
					body.Message = fmt.Sprint(rec)
					body.Stack = stack
				}
				shared.RespondWithError(w, r, http.StatusInternalServerError, body)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
