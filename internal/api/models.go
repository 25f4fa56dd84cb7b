package api

import (
	"github.com/phrazzld/study-api/internal/domain"
	"github.com/phrazzld/study-api/internal/service"
)

// StudyEndpointTemplate documents the study endpoint's query parameters.
const StudyEndpointTemplate = "/study?topic=<topic>&mode=<normal|math>"

// SourceInfo identifies the encyclopedia page the content was built from.
type SourceInfo struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// StudyResponse is the payload returned by GET /study.
type StudyResponse struct {
	Topic        string            `json:"topic"`
	Mode         domain.Mode       `json:"mode"`
	Summary      []string          `json:"summary"`
	Quiz         []domain.QuizItem `json:"quiz"`
	StudyTip     string            `json:"studyTip"`
	MathQuestion *domain.MathItem  `json:"mathQuestion"`
	Source       SourceInfo        `json:"source"`
}

// HomeResponse is the payload returned by GET /.
type HomeResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// NewStudyResponse converts a service result into the wire format.
// The topic is reported by its canonical encyclopedia title.
func NewStudyResponse(result *service.StudyResult) StudyResponse {
	resp := StudyResponse{
		Topic:        result.Source.Title,
		Mode:         result.Mode,
		Summary:      result.Content.Summary,
		Quiz:         result.Content.Quiz,
		StudyTip:     result.Content.StudyTip,
		MathQuestion: result.Content.MathQuestion,
		Source: SourceInfo{
			Title: result.Source.Title,
			URL:   result.Source.URL,
		},
	}
	// Math questions only belong to math mode
	if result.Mode != domain.ModeMath {
		resp.MathQuestion = nil
	}
	return resp
}
