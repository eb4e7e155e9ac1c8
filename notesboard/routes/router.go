package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"notesboard/notesboard/controllers"
	"notesboard/notesboard/middlewares"
	"notesboard/notesboard/utils/metrics"
)

type Deps struct {
	Notes   *controllers.NotesController
	Health  *controllers.HealthController
	Metrics *metrics.Metrics
}

// NewRouter assembles the middleware stack and mounts every route.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Get("/", deps.Health.Root)
	r.Mount("/health", HealthRoutes(deps.Health))
	r.Mount("/api/notes", NotesRoutes(deps.Notes))
	return r
}
