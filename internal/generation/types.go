package generation

import (
	"encoding/json"
	"strings"
)

// promptData represents the data passed to the prompt templates
type promptData struct {
	Title   string
	Extract string
}

// quizItemSchema is the quiz question shape the model is asked to produce.
// The prompt asks for "correctAnswer"; "correctAnswerIndex" is accepted too.
type quizItemSchema struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswer      *int     `json:"correctAnswer"`
	CorrectAnswerIndex *int     `json:"correctAnswerIndex"`
}

// answerIndex returns the correct answer index and whether one was present.
func (q quizItemSchema) answerIndex() (int, bool) {
	switch {
	case q.CorrectAnswer != nil:
		return *q.CorrectAnswer, true
	case q.CorrectAnswerIndex != nil:
		return *q.CorrectAnswerIndex, true
	default:
		return 0, false
	}
}

// mathSchema is the math problem shape the model is asked to produce.
// Models often emit numeric answers unquoted, so Answer is kept raw.
type mathSchema struct {
	Problem     string          `json:"problem"`
	Answer      json.RawMessage `json:"answer"`
	Explanation string          `json:"explanation"`
}

// answerText renders the answer as text whether it arrived as a JSON string,
// number or other literal.
func (m mathSchema) answerText() string {
	var s string
	if err := json.Unmarshal(m.Answer, &s); err == nil {
		return strings.TrimSpace(s)
	}
	raw := strings.TrimSpace(string(m.Answer))
	if raw == "null" {
		return ""
	}
	return raw
}
