package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/domsearch/pkg/buildinfo"
	"github.com/matzehuels/domsearch/pkg/errors"
	dsio "github.com/matzehuels/domsearch/pkg/io"
	"github.com/matzehuels/domsearch/pkg/pipeline"
)

// solveResponse is the reply to POST /solve.
type solveResponse struct {
	*dsio.Solution
	BestKnown int    `json:"best_known"`
	Workers   int    `json:"workers"`
	Duration  string `json:"duration"`
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	opts, err := s.solveOptions(r)
	if err != nil {
		writeError(w, err)
		return
	}

	g, err := dsio.ReadGraphLimit(http.MaxBytesReader(w, r.Body, s.MaxBodyBytes), s.MaxVertices)
	if err != nil {
		writeError(w, err)
		return
	}

	id := uuid.NewString()
	s.Logger.Debug("solve request", "id", id, "vertices", g.N(), "edges", g.M(), "timeout", opts.Timeout, "workers", opts.Workers)

	res, err := s.Runner.Solve(r.Context(), g, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	sol := *res.Solution
	sol.ID = id
	writeJSON(w, http.StatusOK, solveResponse{
		Solution:  &sol,
		BestKnown: res.BestKnown.Size,
		Workers:   res.Stats.Workers,
		Duration:  res.Stats.Duration.Round(time.Millisecond).String(),
	})
}

// solveOptions reads the query parameters of a solve request.
func (s *Server) solveOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{Timeout: pipeline.DefaultServeTimeout, Workers: pipeline.DefaultWorkers}

	if v := q.Get("timeout"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid timeout %q", v)
		}
		opts.Timeout = d
	}
	if err := pipeline.ValidateTimeout(opts.Timeout); err != nil {
		return opts, err
	}
	if opts.Timeout == 0 {
		opts.Timeout = pipeline.DefaultServeTimeout
	}

	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid seed %q", v)
		}
		opts.Seed = seed
	}

	if v := q.Get("workers"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > s.MaxWorkers {
			return opts, errors.New(errors.ErrCodeInvalidInput, "workers must be in [1, %d], got %q", s.MaxWorkers, v)
		}
		opts.Workers = n
	}

	if v := q.Get("max_rounds"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid max_rounds %q", v)
		}
		opts.Solver.MaxRounds = n
	}

	opts.Refresh = q.Get("refresh") == "true"
	return opts, nil
}

// statusFor maps an error code to an HTTP status.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidGraph, errors.ErrCodeInvalidConfig:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{
			Code:    errors.ErrCodeInvalidInput,
			Message: "graph exceeds " + strconv.FormatInt(tooLarge.Limit, 10) + " bytes",
		})
		return
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, statusFor(code), errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
