package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/fairway-collective/league-engine/app/handlers"
	"github.com/fairway-collective/league-engine/app/observability"
	"github.com/fairway-collective/league-engine/config"
)

// NewRouter assembles the HTTP API. Reads are open; mutations require an
// admin token.
func NewRouter(cfg *config.Config, h *handlers.Handlers, registry *prometheus.Registry) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(observability.CorrelationMiddleware)
	r.Use(handlers.RateLimit(rate.NewLimiter(rate.Limit(cfg.HTTP.RateLimitRPS), cfg.HTTP.RateLimitBurst)))

	r.Get("/healthz", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	admin := handlers.AdminOnly(cfg.JWT.Secret)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/courses", h.ListCourses)
		r.Get("/courses/{courseID}", h.GetCourse)
		r.With(admin).Post("/courses", h.CreateCourse)

		r.With(admin).Post("/seasons", h.CreateSeason)
		r.With(admin).Post("/memberships", h.AddMembership)

		r.Get("/match-days/{matchDayID}", h.GetMatchDay)
		r.With(admin).Post("/match-days", h.CreateMatchDay)
		r.With(admin).Delete("/match-days/{matchDayID}", h.DeleteMatchDay)
		r.With(admin).Post("/match-days/{matchDayID}/matches", h.ScheduleMatch)

		r.Get("/matches/{matchID}", h.GetMatchResult)
		r.Get("/matches/{matchID}/strokes", h.GetStrokeAllocation)
		r.With(admin).Post("/matches/{matchID}/process", h.ProcessMatch)

		r.Get("/seasons/{seasonID}/standings", h.GetStandings)
		r.Get("/seasons/{seasonID}/players/{playerID}/handicap", h.PlayerHandicap)
		r.Get("/seasons/{seasonID}/players/{playerID}/trend", h.HandicapTrend)
		r.With(admin).Post("/seasons/{seasonID}/standings/export", h.ExportStandings)
	})

	return r
}
