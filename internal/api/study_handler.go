package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/phrazzld/study-api/internal/api/shared"
	"github.com/phrazzld/study-api/internal/service"
)

// StudyHandler handles study content requests.
type StudyHandler struct {
	studyService service.StudyService
	logger       *slog.Logger
}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(studyService service.StudyService, logger *slog.Logger) *StudyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyHandler{
		studyService: studyService,
		logger:       logger.With("component", "study_handler"),
	}
}

// GetStudy handles GET /study?topic=<topic>&mode=<normal|math>.
func (h *StudyHandler) GetStudy(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := service.StudyRequest{
		Topic: query.Get("topic"),
		Mode:  query.Get("mode"),
	}

	result, err := h.studyService.Study(r.Context(), req)
	if err != nil {
		HandleAPIError(w, r, err, strings.TrimSpace(req.Topic))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewStudyResponse(result))
}
