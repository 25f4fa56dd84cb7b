package generation

import (
	"bytes"
	"fmt"
	"text/template"
)

const topicPreamble = `Based on this information about "{{.Title}}":
{{.Extract}}

`

var (
	summaryTemplate = template.Must(template.New("summary").Parse(topicPreamble +
		`Generate exactly 3 concise bullet points summarizing the key concepts. Format as a JSON array of strings.
Return only the JSON array, no other text.`))

	quizTemplate = template.Must(template.New("quiz").Parse(topicPreamble +
		`Generate exactly 3 multiple-choice questions to test understanding. Each question should have 4 options (A, B, C, D) with only one correct answer.
Return as JSON array with format: [{"question": "...", "options": ["A. ...", "B. ...", "C. ...", "D. ..."], "correctAnswer": 0}]
The correctAnswer is the index (0-3) of the correct option.
Return only the JSON array, no other text.`))

	tipTemplate = template.Must(template.New("tip").Parse(topicPreamble +
		`Generate one practical study tip (1-2 sentences) to help remember or understand this topic better.
Return only the tip text, no JSON or other formatting.`))

	mathTemplate = template.Must(template.New("math").Parse(`Based on the topic "{{.Title}}":
{{.Extract}}

Generate one quantitative or logical problem related to this topic. Include:
1. The problem statement
2. The correct numerical/logical answer
3. A brief explanation of how to solve it

Return as JSON with format: {"problem": "...", "answer": "...", "explanation": "..."}
Return only the JSON object, no other text.`))
)

// renderPrompt executes tmpl with the topic data.
func renderPrompt(tmpl *template.Template, data promptData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s prompt template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
