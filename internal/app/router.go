package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/study-api/internal/api"
	apiMiddleware "github.com/phrazzld/study-api/internal/api/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Router creates the application router with all routes and middleware.
func (app *Application) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.StripSlashes)
	r.Use(otelhttp.NewMiddleware("study-api"))
	r.Use(apiMiddleware.NewTraceMiddleware(app.Logger))
	r.Use(apiMiddleware.NewRequestLogger(app.Logger))
	r.Use(apiMiddleware.NewRecoverer(app.Logger, !app.Config.Server.IsProduction()))
	r.Use(apiMiddleware.NewCORS(app.Config.CORS.AllowedOrigins))

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	studyHandler := api.NewStudyHandler(app.StudyService, app.Logger)

	r.Get("/", api.Home)
	r.Get("/health", api.Health)
	r.Get("/study", studyHandler.GetStudy)

	return r
}
