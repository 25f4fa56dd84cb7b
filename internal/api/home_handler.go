package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/study-api/internal/api/shared"
	"github.com/phrazzld/study-api/internal/platform/logger"
)

// Home handles GET / with a small status payload listing the endpoints.
func Home(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HomeResponse{
		Status:  "ok",
		Message: "Smart Study Assistant API is running",
		Endpoints: map[string]string{
			"study": StudyEndpointTemplate,
		},
	})
}

// Health handles GET /health for load balancer probes.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		logger.FromContextOrDefault(r.Context(), nil).
			ErrorContext(r.Context(), "Failed to write health check response", slog.Any("error", err))
	}
}

// NotFound answers unmatched routes with the list of available endpoints.
func NotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, shared.ErrorResponse{
		Error:   errNotFound,
		Message: "The requested endpoint does not exist",
		AvailableEndpoints: map[string]string{
			"root":  "/",
			"study": StudyEndpointTemplate,
		},
	})
}

// MethodNotAllowed answers requests using an unsupported method on a known route.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusMethodNotAllowed, shared.ErrorResponse{
		Error:   errMethodNotAllowed,
		Message: "Method " + r.Method + " is not supported for " + r.URL.Path,
	})
}
