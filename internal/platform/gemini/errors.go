package gemini

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/study-api/internal/generation"
	"google.golang.org/genai"
)

// Error definitions for the gemini package.
var (
	// ErrEmptyPrompt is returned when GenerateText is called with an empty prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)

// mapAPIError classifies an error returned by the genai client.
// Context errors are kept in the chain so callers can detect cancellation.
func mapAPIError(err error) error {
	if status, ok := apiStatus(err); ok {
		switch {
		case status == http.StatusBadRequest:
			return fmt.Errorf("%w: request rejected by Gemini API (status %d): %w",
				generation.ErrInvalidResponse, status, err)
		case status == http.StatusUnauthorized || status == http.StatusForbidden:
			return fmt.Errorf("%w: Gemini API credential rejected (status %d): %w",
				generation.ErrGenerationFailed, status, err)
		}
	}
	return fmt.Errorf("%w: Gemini API call failed: %w", generation.ErrGenerationFailed, err)
}

// apiStatus extracts the HTTP status code from a genai API error.
func apiStatus(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, true
	}
	return 0, false
}
