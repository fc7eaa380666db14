package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chi_middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itchan-dev/imageboard/backend/internal/setup"
	mw "github.com/itchan-dev/imageboard/shared/middleware"
	"github.com/itchan-dev/imageboard/shared/middleware/metrics"
)

// JSON API and media only, nothing is ever executed by the browser
const backendCSP = "default-src 'none'; img-src 'self'; frame-ancestors 'none'"

// New creates the router with every route of the API.
func New(deps *setup.Dependencies) http.Handler {
	cfg := deps.Config.Public
	h := deps.Handler

	r := chi.NewRouter()
	r.Use(chi_middleware.RequestID)
	r.Use(mw.RequestLogger)
	r.Use(chi_middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(chi_middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))
	r.Use(mw.SecurityHeaders(false, backendCSP))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if cfg.HTTP.RequestTimeout > 0 {
			r.Use(chi_middleware.Timeout(cfg.HTTP.RequestTimeout))
		}

		r.Get("/boards", h.GetBoards)
		r.Post("/create_board", h.CreateBoard)
		r.Post("/create_thread", h.CreateThread)
		r.Post("/create_comment", h.CreateComment)
		r.Get("/media/{file_name}", h.GetMedia)
		r.Get("/{board}", h.GetBoard)
		r.Get("/{board}/thread/{thread}", h.GetThread)
	})

	return r
}
