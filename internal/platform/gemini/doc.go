// Package gemini provides an implementation of generation.Model using Google's
// Gemini API through the google.golang.org/genai client.
//
// The adapter sends one prompt per call and returns the concatenated text of the
// first candidate. It never retries: a failed call is reported immediately so the
// caller can abort the whole generation sequence. Safety blocks are reported as
// generation.ErrContentBlocked, empty or unusable responses as
// generation.ErrInvalidResponse, and transport or API failures as
// generation.ErrGenerationFailed.
package gemini
