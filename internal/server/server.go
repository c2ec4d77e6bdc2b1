// Package server exposes the solver over HTTP.
//
// Routes:
//
//	GET  /healthz                          liveness probe
//	GET  /version                          build information
//	POST /solve                            PACE graph body, JSON solution reply
//
// /solve accepts the query parameters timeout, seed, workers, max_rounds and
// refresh.
//
// A solve runs until its timeout (default [pipeline.DefaultServeTimeout],
// at most [pipeline.MaxServeTimeout]) or until the client disconnects, and
// always answers with the best set found so far. Every reply to /solve
// carries a fresh run id.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/domsearch/pkg/pipeline"
)

// DefaultMaxBodyBytes caps the size of an uploaded graph.
const DefaultMaxBodyBytes = 256 << 20

// DefaultMaxVertices caps the vertex count a graph header may declare.
// Isolated vertices need no edge lines, so the body cap alone does not
// bound memory.
const DefaultMaxVertices = 1 << 22

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	Runner *pipeline.Runner
	Logger *log.Logger

	// MaxWorkers caps the workers a single request may ask for.
	MaxWorkers int
	// MaxBodyBytes caps the request body of /solve.
	MaxBodyBytes int64
	// MaxVertices caps the vertex count of an uploaded graph.
	MaxVertices int
}

// New creates a Server. A nil logger falls back to the runner's.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	return &Server{
		Runner:       runner,
		Logger:       logger,
		MaxWorkers:   pipeline.MaxWorkers,
		MaxBodyBytes: DefaultMaxBodyBytes,
		MaxVertices:  DefaultMaxVertices,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.logRequests)
	r.Use(s.recoverPanics)

	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	r.Post("/solve", s.handleSolve)

	return r
}

// NewHTTPServer wraps the handler in an http.Server listening on addr.
// Write timeouts leave room for the longest permitted solve.
func (s *Server) NewHTTPServer(addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      pipeline.MaxServeTimeout + 30*time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}
