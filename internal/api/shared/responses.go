package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/study-api/internal/platform/logger"
	"github.com/phrazzld/study-api/internal/redact"
)

// ErrorResponse defines the standard error response structure.
// Error and Message are always present; the rest only when they help the client.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Example    string `json:"example,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
	Details    string `json:"details,omitempty"`
	Stack      string `json:"stack,omitempty"`
	// AvailableEndpoints is set on unmatched routes.
	AvailableEndpoints map[string]string `json:"availableEndpoints,omitempty"`
	TraceID            string            `json:"trace_id,omitempty"`
	Code               int               `json:"-"` // Not serialized to JSON, used for logging
}

// ResponseOption defines a function to customize response behavior.
type ResponseOption func(*responseOptions)

// responseOptions holds configurable options for error responses.
type responseOptions struct {
	elevateLogLevel bool
}

// WithElevatedLogLevel returns a ResponseOption that raises 4xx errors to WARN level
// instead of the default DEBUG level.
func WithElevatedLogLevel() ResponseOption {
	return func(opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), nil).
			ErrorContext(r.Context(), "failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes a JSON error response with the given status code.
// It also sets the TraceID from the request context if available.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, body ErrorResponse) {
	body.Code = status
	body.TraceID = GetTraceID(r.Context())

	logger.FromContextOrDefault(r.Context(), nil).DebugContext(r.Context(), "sending error response",
		"status_code", status,
		"error", body.Error,
		"trace_id", body.TraceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, body)
}

// RespondWithErrorAndLog writes a JSON error response and also logs the detailed error.
// The logged error is redacted first.
//
// Log level strategy:
// - 5xx errors: Always logged at ERROR level
// - 502 from an upstream: logged at WARN level (operational concern, not our bug)
// - 4xx errors: By default logged at DEBUG level
//
// Use WithElevatedLogLevel to raise a 4xx to WARN.
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	body ErrorResponse,
	err error,
	opts ...ResponseOption,
) {
	body.Code = status
	body.TraceID = GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", body.TraceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_error", body.Error),
	}

	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	responseOpts := responseOptions{}
	for _, opt := range opts {
		opt(&responseOpts)
	}

	logLevel := slog.LevelDebug
	switch {
	case status == http.StatusBadGateway:
		logLevel = slog.LevelWarn
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case responseOpts.elevateLogLevel && status >= http.StatusBadRequest:
		logLevel = slog.LevelWarn
	}

	logger.FromContextOrDefault(r.Context(), nil).LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, body)
}
