// Package server exposes the flowchart pipeline over HTTP.
//
// The API is read-only: it resolves drugs from the configured catalog and
// serves flowcharts as JSON or rendered artifacts. All handlers share one
// pipeline runner, so the CLI and the API hit the same cache.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/brewlab/mixtree/pkg/pipeline"
)

// Server is the mixtree HTTP API server.
type Server struct {
	runner *pipeline.Runner
	base   pipeline.Options
	router chi.Router
	addr   string
	logger *log.Logger
}

// Config holds the server configuration. Base supplies the catalog source
// and default geometry for every request; per-request query parameters
// override the rest.
type Config struct {
	Addr   string
	Base   pipeline.Options
	Logger *log.Logger
}

// New creates a server. The runner must not be nil.
func New(runner *pipeline.Runner, cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	s := &Server{
		runner: runner,
		base:   cfg.Base,
		addr:   cfg.Addr,
		logger: cfg.Logger,
	}
	s.router = s.buildRouter()
	return s
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe starts the server with timeouts that guard against slow
// clients. PNG rendering of large charts dominates the write timeout.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      2 * time.Minute,
		IdleTimeout:       2 * time.Minute,
	}
	s.logger.Info("listening", "addr", s.addr)
	return srv.ListenAndServe()
}

// buildRouter constructs the chi router with all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/api/drugs", s.handleDrugs)
	r.Get("/api/flowchart/{drug}", s.handleFlowchart)
	r.Get("/api/flowchart/{drug}/{format}", s.handleArtifact)

	return r
}
