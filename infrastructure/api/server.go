// Package api exposes the scoring service over HTTP. Routes are thin:
// decode, validate, call the service, encode. All domain behavior
// lives behind the application layer.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/vetmed/research-day/internal/application"
)

// NewRouter assembles the HTTP surface: the scoring API under /api,
// health and Prometheus endpoints at the root.
func NewRouter(svc *application.Service, cfg application.ServerConfig, reg *prometheus.Registry) http.Handler {
	metrics := NewMetrics(reg)
	h := &handlers{svc: svc, metrics: metrics}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(metrics.instrument)

	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/presenters", h.listPresenters)
		r.Post("/presenters/import", h.importPresenters)
		r.Post("/presenters/{presenterID}/judges", h.reassignJudges)

		r.Get("/scores", h.listScores)
		r.With(submitLimiter(cfg)).Post("/scores", h.submitScore)

		r.Get("/results", h.results)
		r.Get("/results/export", h.exportResults)
		r.Get("/progress", h.progress)
		r.Get("/anomalies", h.anomalies)
		r.Get("/roster", h.roster)

		r.Get("/feedback", h.listFeedback)
		r.Post("/feedback", h.submitFeedback)
	})

	return r
}

// submitLimiter rate-limits score submissions with a single shared
// bucket. Judges share one venue network, so a per-IP limiter would
// not help; the point is protecting the store from a runaway client.
func submitLimiter(cfg application.ServerConfig) func(http.Handler) http.Handler {
	if cfg.SubmitRatePerSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	burst := cfg.SubmitBurst
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.SubmitRatePerSecond), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				writeError(w, http.StatusTooManyRequests, "submission rate exceeded, retry shortly")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
