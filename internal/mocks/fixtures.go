package mocks

import "github.com/phrazzld/study-api/internal/domain"

// Canned model replies matching the formats the prompts request.
const (
	SummaryReply = "```json\n[\"Plants convert light into chemical energy.\", \"Chlorophyll absorbs mostly red and blue light.\", \"Oxygen is released as a by-product.\"]\n```"

	QuizReply = `[
  {"question": "Which pigment absorbs light?", "options": ["A. Chlorophyll", "B. Keratin", "C. Melanin", "D. Hemoglobin"], "correctAnswer": 0},
  {"question": "What gas is released?", "options": ["A. Nitrogen", "B. Oxygen", "C. Helium", "D. Argon"], "correctAnswer": 1},
  {"question": "Where does it happen?", "options": ["A. Nucleus", "B. Ribosome", "C. Chloroplast", "D. Vacuole"], "correctAnswer": 2}
]`

	TipReply = "  Sketch the light and dark reactions as two connected loops.\n"

	MathReply = "```json\n{\"problem\": \"If 6 CO2 molecules are fixed, how many O2 molecules are released?\", \"answer\": 6, \"explanation\": \"The balanced equation releases one O2 per CO2.\"}\n```"
)

// SampleTopic returns topic data for tests.
func SampleTopic() *domain.TopicData {
	return &domain.TopicData{
		Title:       "Photosynthesis",
		Extract:     "Photosynthesis is a process used by plants to convert light energy into chemical energy.",
		Description: "Biological process",
		URL:         "https://en.wikipedia.org/wiki/Photosynthesis",
	}
}

// SampleContent returns well-formed study content; math mode includes a math question.
func SampleContent(mode domain.Mode) *domain.StudyContent {
	content := &domain.StudyContent{
		Summary: []string{
			"Plants convert light into chemical energy.",
			"Chlorophyll absorbs mostly red and blue light.",
			"Oxygen is released as a by-product.",
		},
		Quiz: []domain.QuizItem{
			{Question: "Which pigment absorbs light?", Options: []string{"A. Chlorophyll", "B. Keratin", "C. Melanin", "D. Hemoglobin"}, CorrectAnswerIndex: 0},
			{Question: "What gas is released?", Options: []string{"A. Nitrogen", "B. Oxygen", "C. Helium", "D. Argon"}, CorrectAnswerIndex: 1},
			{Question: "Where does it happen?", Options: []string{"A. Nucleus", "B. Ribosome", "C. Chloroplast", "D. Vacuole"}, CorrectAnswerIndex: 2},
		},
		StudyTip: "Sketch the light and dark reactions as two connected loops.",
	}
	if mode == domain.ModeMath {
		content.MathQuestion = &domain.MathItem{
			Problem:     "If 6 CO2 molecules are fixed, how many O2 molecules are released?",
			Answer:      "6",
			Explanation: "The balanced equation releases one O2 per CO2.",
		}
	}
	return content
}
