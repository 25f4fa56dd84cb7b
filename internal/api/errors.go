package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/study-api/internal/api/shared"
	"github.com/phrazzld/study-api/internal/domain"
	"github.com/phrazzld/study-api/internal/redact"
)

// User-facing error titles and messages.
const (
	errBadRequest          = "Bad Request"
	errConfiguration       = "Server Configuration Error"
	errTopicNotFound       = "Topic Not Found"
	errUpstream            = "Encyclopedia Unavailable"
	errGeneration          = "AI Generation Failed"
	errInternal            = "Internal Server Error"
	errNotFound            = "Not Found"
	errMethodNotAllowed    = "Method Not Allowed"
	msgNotConfigured       = "AI service is not configured. Please contact the administrator."
	msgGenerationFailed    = "Failed to generate study content. Please try again."
	msgUpstreamUnavailable = "Failed to fetch topic data from Wikipedia"
	msgUnexpected          = "An unexpected error occurred"
	suggestTopic           = "Try a different topic or check your spelling"
	suggestRetry           = "Please try again in a moment"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var valErr *domain.ValidationError
	switch {
	case errors.As(err, &valErr), errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrTopicNotFound):
		return http.StatusNotFound

	// The encyclopedia answered badly or not at all
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponseFor builds the client-facing body for err. topic is the
// requested topic and only used to phrase not-found messages.
func ErrorResponseFor(err error, topic string) shared.ErrorResponse {
	var valErr *domain.ValidationError
	switch {
	case errors.As(err, &valErr):
		return shared.ErrorResponse{
			Error:   errBadRequest,
			Message: valErr.Message,
			Example: valErr.Example,
		}

	case errors.Is(err, domain.ErrValidation):
		return shared.ErrorResponse{Error: errBadRequest, Message: "Invalid request"}

	case errors.Is(err, domain.ErrNotConfigured):
		return shared.ErrorResponse{Error: errConfiguration, Message: msgNotConfigured}

	case errors.Is(err, domain.ErrTopicNotFound):
		return shared.ErrorResponse{
			Error:      errTopicNotFound,
			Message:    fmt.Sprintf("Topic %q not found on Wikipedia", topic),
			Suggestion: suggestTopic,
		}

	case errors.Is(err, domain.ErrUpstream):
		return shared.ErrorResponse{
			Error:      errUpstream,
			Message:    msgUpstreamUnavailable,
			Suggestion: suggestRetry,
		}

	case errors.Is(err, domain.ErrGeneration):
		return shared.ErrorResponse{
			Error:   errGeneration,
			Message: msgGenerationFailed,
			Details: redact.Error(err),
		}

	default:
		return shared.ErrorResponse{Error: errInternal, Message: msgUnexpected}
	}
}

// HandleAPIError writes the error response for err and logs the redacted cause.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, topic string) {
	status := MapErrorToStatusCode(err)
	body := ErrorResponseFor(err, topic)

	var opts []shared.ResponseOption
	if status == http.StatusNotFound {
		opts = append(opts, shared.WithElevatedLogLevel())
	}

	shared.RespondWithErrorAndLog(w, r, status, body, err, opts...)
}
