// Package api wires the webbio HTTP handlers into a chi router.
package api

import (
	"net/http"
	"time"

	"github.com/aria-lang/webbio-go/api/handlers"
	"github.com/aria-lang/webbio-go/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Config configures the HTTP server.
type Config struct {
	Host string
	Port int
	// Timeout cancels the request context. Batch alignments stop scheduling
	// targets once it fires, but a pairwise alignment already running is not
	// interrupted; Limits.MaxCells bounds how long that can take.
	Timeout time.Duration
	Limits  handlers.Limits
}

// DefaultConfig returns the server defaults.
func DefaultConfig() Config {
	return Config{
		Host:    "localhost",
		Port:    8080,
		Timeout: 60 * time.Second,
		Limits:  handlers.DefaultLimits(),
	}
}

// NewRouter builds the API router.
func NewRouter(cfg Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	if cfg.Timeout > 0 {
		r.Use(chimiddleware.Timeout(cfg.Timeout))
	}

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/alignment", func(r chi.Router) {
			r.Post("/local", handlers.LocalAlignHandler(cfg.Limits))
			r.Post("/global", handlers.GlobalAlignHandler(cfg.Limits))
			r.Post("/batch", handlers.BatchAlignHandler(cfg.Limits))
		})

		r.Route("/sequence", func(r chi.Router) {
			r.Post("/info", handlers.SequenceInfoHandler(cfg.Limits))
			r.Post("/validate", handlers.ValidateHandler(cfg.Limits))
			r.Post("/reverse-complement", handlers.ReverseComplementHandler(cfg.Limits))
		})
	})

	return r
}
