// Package generation turns encyclopedia topic data into study material using a
// large language model.
//
// The ContentGenerator issues a fixed sequence of prompts (summary, quiz, study
// tip and, in math mode, a quantitative question) through the Model interface,
// which abstracts the concrete LLM client (see internal/platform/gemini). Calls
// are strictly sequential and the first failure aborts the whole operation.
//
// JSON-bearing responses are sanitized by StripCodeFences before decoding, and
// decoded content is checked against the shape clients rely on. Every failure is
// reported as an *Error carrying the stage that failed and, where available, the
// raw model output for diagnostics.
package generation
