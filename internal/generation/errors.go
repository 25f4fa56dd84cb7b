package generation

import (
	"errors"
	"fmt"

	"github.com/phrazzld/study-api/internal/domain"
)

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when the model call itself fails
	ErrGenerationFailed = errors.New("failed to generate content")

	// ErrNotInitialized is returned when no model client has been configured
	ErrNotInitialized = errors.New("language model client not initialized")

	// ErrInvalidResponse is returned when the LLM response cannot be parsed or is malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")
)

// Stage identifies which step of study content generation failed.
type Stage string

// Generation stages, in the order they run.
const (
	StageInit    Stage = "init"
	StageSummary Stage = "summary"
	StageQuiz    Stage = "quiz"
	StageTip     Stage = "tip"
	StageMath    Stage = "math"
)

// Error is the single error type returned by ContentGenerator.
// It matches both its cause and domain.ErrGeneration under errors.Is.
type Error struct {
	Stage Stage
	// Raw is the unparsed model output, when the failure happened after a response arrived.
	Raw string
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("AI generation failed at %s: %v", e.Stage, e.Err)
}

// Unwrap exposes both the cause and domain.ErrGeneration.
func (e *Error) Unwrap() []error {
	return []error{e.Err, domain.ErrGeneration}
}

func newError(stage Stage, raw string, err error) *Error {
	return &Error{Stage: stage, Raw: raw, Err: err}
}
