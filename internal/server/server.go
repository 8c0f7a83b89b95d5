// Package server exposes simplification over HTTP.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/pborges/logicloom"
	"github.com/pborges/logicloom/internal/input"
	"github.com/pborges/logicloom/internal/metrics"
	"github.com/pborges/logicloom/internal/qm"
	"github.com/pborges/logicloom/internal/render"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Server) { s.log = l }
}

// WithMaxConcurrent bounds how many runs execute at once.
func WithMaxConcurrent(n int64) Option {
	return func(s *Server) {
		if n > 0 {
			s.sem = semaphore.NewWeighted(n)
		}
	}
}

// WithMaxCandidates bounds the covering search of every run.
func WithMaxCandidates(n int) Option {
	return func(s *Server) { s.maxCandidates = n }
}

// Server answers simplification requests.
type Server struct {
	log           logrus.FieldLogger
	metrics       *metrics.Metrics
	gatherer      prometheus.Gatherer
	sem           *semaphore.Weighted
	maxCandidates int
	execute       func(*qm.Simplifier) error
}

// New returns a Server recording runs in m and serving metrics from g.
func New(m *metrics.Metrics, g prometheus.Gatherer, options ...Option) *Server {
	s := &Server{
		log:      logrus.StandardLogger(),
		metrics:  m,
		gatherer: g,
		sem:      semaphore.NewWeighted(4),
		execute:  (*qm.Simplifier).Run,
	}
	for _, o := range options {
		o(s)
	}
	return s
}

// Handler returns the routes of the service.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	mux.HandleFunc("/v1/simplify", s.simplify)
	mux.HandleFunc("/", s.index)
	return s.logRequests(mux)
}

// Request is the body of POST /v1/simplify.
type Request struct {
	Variables []string `json:"variables"`
	Minterms  []int    `json:"minterms"`
	// All asks for every minimal cover instead of the primary one.
	All bool `json:"all"`
}

// Implicant is a term with its rendered expression.
type Implicant struct {
	Pattern    string `json:"pattern"`
	Expression string `json:"expression"`
}

// Response is the result of a successful simplification.
type Response struct {
	Variables       []string          `json:"variables"`
	Equations       []render.Equation `json:"equations"`
	Covers          [][]string        `json:"covers"`
	PrimeImplicants []Implicant       `json:"prime_implicants"`
	Essentials      []Implicant       `json:"essentials"`
	Chart           qm.ChartSnapshot  `json:"chart"`
	Stats           qm.Stats          `json:"stats"`
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.EmptyHTML(w, `POST /v1/simplify with {"variables": [...], "minterms": [...]}`); err != nil {
		s.log.WithError(err).Warn("rendering index")
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) simplify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, errors.New("method not allowed"))
		return
	}
	var req Request
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "decoding request"))
		return
	}
	for _, v := range req.Variables {
		if !input.ValidName(v) {
			writeError(w, http.StatusBadRequest, errors.Wrapf(input.ErrInvalid, "variable %q must be ASCII letters", v))
			return
		}
	}

	sim, err := qm.New(req.Minterms, req.Variables,
		qm.WithMaxCandidates(s.maxCandidates),
		qm.WithLogger(s.log),
	)
	if err != nil {
		s.metrics.Observe(nil, err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := s.run(r.Context(), sim); err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	resp, err := respond(sim, req.All)
	if err != nil {
		writeError(w, statusOf(err), err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// run executes sim on a worker goroutine once a slot is free. The caller
// stops waiting when ctx ends; the run itself finishes in the background.
// A run that started is counted once by its own outcome; only requests that
// never got a worker count as canceled.
func (s *Server) run(ctx context.Context, sim *qm.Simplifier) error {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		s.metrics.Canceled()
		return errors.Wrap(err, "waiting for a worker")
	}
	done := make(chan error, 1)
	go func() {
		defer s.sem.Release(1)
		finish := s.metrics.Started()
		err := s.execute(sim)
		finish(sim, err)
		done <- err
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "waiting for the run")
	}
}

func respond(sim *qm.Simplifier, all bool) (Response, error) {
	covers, err := sim.Covers()
	if err != nil {
		return Response{}, err
	}
	if !all {
		covers = covers[:1]
	}
	primes, err := sim.PrimeImplicants()
	if err != nil {
		return Response{}, err
	}
	essentials, err := sim.Essentials()
	if err != nil {
		return Response{}, err
	}
	chart, err := sim.Chart()
	if err != nil {
		return Response{}, err
	}
	stats, err := sim.Stats()
	if err != nil {
		return Response{}, err
	}

	vars := sim.Variables()
	resp := Response{
		Variables:       vars,
		Equations:       render.Equations(vars, covers),
		Covers:          make([][]string, len(covers)),
		PrimeImplicants: implicants(vars, primes),
		Essentials:      implicants(vars, essentials),
		Chart:           chart,
		Stats:           stats,
	}
	for i, c := range covers {
		resp.Covers[i] = qm.Patterns(c)
	}
	return resp, nil
}

func implicants(vars []string, ts []qm.Term) []Implicant {
	out := make([]Implicant, len(ts))
	for i, t := range ts {
		out[i] = Implicant{Pattern: t.Pattern(), Expression: t.Expression(vars)}
	}
	return out
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, qm.ErrConfig), errors.Is(err, input.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, qm.ErrCandidateLimit):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		w.Header().Set("Server", logicloom.UserAgent())
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rec.status,
			"duration": time.Since(start),
		}).Info("request served")
	})
}
