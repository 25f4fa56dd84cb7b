package domain

import "fmt"

// Mode selects which study material is generated for a topic.
type Mode string

// Supported study modes.
const (
	// ModeNormal produces a summary, a quiz and a study tip.
	ModeNormal Mode = "normal"

	// ModeMath additionally produces a quantitative question.
	ModeMath Mode = "math"
)

// Expected shape of generated study content.
const (
	SummaryPointCount = 3
	QuizQuestionCount = 3
	QuizOptionCount   = 4
)

// ParseMode converts a raw mode value into a Mode.
// An empty value selects ModeNormal.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case "", ModeNormal:
		return ModeNormal, nil
	case ModeMath:
		return ModeMath, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, raw)
	}
}

// Valid reports whether m is a supported mode.
func (m Mode) Valid() bool {
	return m == ModeNormal || m == ModeMath
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	return string(m)
}

// QuizItem is a single multiple-choice question.
type QuizItem struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	// CorrectAnswerIndex is a zero-based index into Options.
	CorrectAnswerIndex int `json:"correctAnswerIndex"`
}

// Validate checks the question has the expected number of options and an
// answer index that points at one of them.
func (q QuizItem) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("%w: quiz question is empty", ErrValidation)
	}
	if len(q.Options) != QuizOptionCount {
		return fmt.Errorf("%w: quiz question has %d options, want %d",
			ErrValidation, len(q.Options), QuizOptionCount)
	}
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
		return fmt.Errorf("%w: correct answer index %d out of range [0,%d]",
			ErrValidation, q.CorrectAnswerIndex, len(q.Options)-1)
	}
	return nil
}

// MathItem is a quantitative or logical problem about the topic.
type MathItem struct {
	Problem     string `json:"problem"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
}

// StudyContent is the material generated for one topic.
type StudyContent struct {
	Summary  []string   `json:"summary"`
	Quiz     []QuizItem `json:"quiz"`
	StudyTip string     `json:"studyTip"`
	// MathQuestion is set only for ModeMath.
	MathQuestion *MathItem `json:"mathQuestion"`
}

// ValidateSummary checks a summary has exactly SummaryPointCount non-empty points.
func ValidateSummary(points []string) error {
	if len(points) != SummaryPointCount {
		return fmt.Errorf("%w: summary has %d points, want %d",
			ErrValidation, len(points), SummaryPointCount)
	}
	for i, point := range points {
		if point == "" {
			return fmt.Errorf("%w: summary point %d is empty", ErrValidation, i)
		}
	}
	return nil
}

// ValidateQuiz checks a quiz has exactly QuizQuestionCount well-formed questions.
func ValidateQuiz(items []QuizItem) error {
	if len(items) != QuizQuestionCount {
		return fmt.Errorf("%w: quiz has %d questions, want %d",
			ErrValidation, len(items), QuizQuestionCount)
	}
	for i, q := range items {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i, err)
		}
	}
	return nil
}

// Validate checks the content has the shape clients rely on: three summary
// points, three well-formed quiz questions, and a study tip.
func (c *StudyContent) Validate() error {
	if err := ValidateSummary(c.Summary); err != nil {
		return err
	}
	if err := ValidateQuiz(c.Quiz); err != nil {
		return err
	}
	if c.StudyTip == "" {
		return fmt.Errorf("%w: study tip is empty", ErrValidation)
	}
	return nil
}
