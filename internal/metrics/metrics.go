// Package metrics holds the Prometheus collectors for simplification runs.
package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pborges/logicloom/internal/qm"
)

const (
	Outcome        = "outcome"
	Succeeded      = "succeeded"
	Invalid        = "invalid"
	CandidateLimit = "candidate_limit"
	Canceled       = "canceled"
	Failed         = "failed"
)

// Metrics records simplification runs.
type Metrics struct {
	runs     *prometheus.CounterVec
	duration prometheus.Histogram
	primes   prometheus.Histogram
	inFlight prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logicloom_runs_total",
				Help: "Simplification runs by outcome",
			},
			[]string{Outcome},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "logicloom_run_duration_seconds",
			Help:    "Time spent computing a minimal cover",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		primes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "logicloom_prime_implicants",
			Help:    "Prime implicants found per successful run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "logicloom_runs_in_flight",
			Help: "Runs currently executing",
		}),
	}
	for _, c := range []prometheus.Collector{m.runs, m.duration, m.primes, m.inFlight} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "registering metrics")
		}
	}
	return m, nil
}

// Started marks a run as executing and returns a function that records its
// outcome when the run ends.
func (m *Metrics) Started() func(s *qm.Simplifier, err error) {
	m.inFlight.Inc()
	start := time.Now()
	return func(s *qm.Simplifier, err error) {
		m.inFlight.Dec()
		m.duration.Observe(time.Since(start).Seconds())
		m.Observe(s, err)
	}
}

// Observe counts a finished run.
func (m *Metrics) Observe(s *qm.Simplifier, err error) {
	m.runs.WithLabelValues(OutcomeOf(err)).Inc()
	if err != nil || s == nil {
		return
	}
	if primes, err := s.PrimeImplicants(); err == nil {
		m.primes.Observe(float64(len(primes)))
	}
}

// Canceled counts a run whose caller stopped waiting.
func (m *Metrics) Canceled() {
	m.runs.WithLabelValues(Canceled).Inc()
}

// OutcomeOf classifies a run error.
func OutcomeOf(err error) string {
	switch {
	case err == nil:
		return Succeeded
	case errors.Is(err, qm.ErrConfig):
		return Invalid
	case errors.Is(err, qm.ErrCandidateLimit):
		return CandidateLimit
	default:
		return Failed
	}
}
