package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripCodeFences removes a markdown code fence wrapped around a model response.
// A leading "```json" or "```" marker and a trailing "```" marker are dropped and
// surrounding whitespace is trimmed. Text without fences is only trimmed.
func StripCodeFences(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	return strings.TrimSpace(cleaned)
}

// decodeJSON sanitizes text and decodes it into v.
func decodeJSON(text string, v any) error {
	cleaned := StripCodeFences(text)
	if cleaned == "" {
		return fmt.Errorf("%w: empty response", ErrInvalidResponse)
	}
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("%w: failed to parse AI response: %v", ErrInvalidResponse, err)
	}
	return nil
}
