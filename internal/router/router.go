package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/memory-page/memoboard/internal/middleware/metrics"
	"github.com/memory-page/memoboard/internal/setup"
)

// New creates the chi router with all routes.
func New(deps *setup.Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
	}))
	r.Use(metrics.Middleware)

	h := deps.Handler
	auth := deps.Auth

	r.Get("/", h.Health)
	r.Get("/developer", h.Developers)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Route("/board", func(r chi.Router) {
		r.Post("/", h.CreateBoard)
		r.Post("/login", h.Login)
		r.Post("/validate", h.ValidateBoard)
		r.With(auth.Optional()).Get("/{board_id}", h.GetBoard)
		r.Get("/{board_id}/graduation", h.CheckGraduation)
		r.Post("/{board_id}/memo", h.CreateMemo)
	})

	r.Route("/memo", func(r chi.Router) {
		r.Post("/validate", h.ValidateMemo)
		r.With(auth.Require()).Get("/{memo_id}", h.GetMemo)
	})

	return r
}
