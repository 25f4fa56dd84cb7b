// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when client input fails validation.
	// This is usually wrapped by a ValidationError carrying the user-facing message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidMode is returned when a study mode is not one of the supported values.
	ErrInvalidMode = errors.New("invalid study mode")

	// ErrTopicNotFound is returned when the encyclopedia has no page for a topic.
	ErrTopicNotFound = errors.New("topic not found")

	// ErrUpstream is returned when the encyclopedia cannot be reached or answers
	// with an unexpected status.
	ErrUpstream = errors.New("encyclopedia request failed")

	// ErrNotConfigured is returned when the AI credential is missing.
	ErrNotConfigured = errors.New("AI service is not configured")

	// ErrGeneration is returned when study content could not be generated.
	// Errors produced by the generation package wrap it.
	ErrGeneration = errors.New("study content generation failed")
)

// ValidationError describes a rejected request field in terms a client can act on.
type ValidationError struct {
	Field   string
	Message string
	// Example is an optional well-formed request the client can copy.
	Example string
	Err     error
}

// NewValidationError creates a ValidationError for the given field.
// If err is nil, ErrValidation is used as the underlying cause.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}

// WithExample attaches an example request to the error.
func (e *ValidationError) WithExample(example string) *ValidationError {
	e.Example = example
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying cause so errors.Is works with ErrValidation.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
