package qm

import (
	"io"
	"math/bits"
	"sync"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// Stats describes the work done by a run.
type Stats struct {
	// Levels is the number of reduction columns processed.
	Levels int `json:"levels"`
	// Comparisons counts attempted merges.
	Comparisons int `json:"comparisons"`
	// Merges counts successful merges, duplicates included.
	Merges int `json:"merges"`
	// Candidates is the largest Petrick generation seen before pruning.
	Candidates int `json:"candidates"`
	// SolverInvoked is false when the essentials alone cover every minterm.
	SolverInvoked bool `json:"solver_invoked"`
}

// Option configures a Simplifier.
type Option func(*Simplifier)

// WithLogger sets the logger phase results are reported to at debug level.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Simplifier) { s.log = l }
}

// WithMaxCandidates bounds the number of partial covers Petrick's method may
// hold in one generation after folding in a clause and before pruning.
// Covers carried forward unchanged because they already satisfy the clause
// count toward the bound. The search is exponential in the
// number of residual rows in the worst case; a bound turns a runaway search
// into ErrCandidateLimit. n <= 0 removes the bound.
func WithMaxCandidates(n int) Option {
	return func(s *Simplifier) { s.maxCandidates = n }
}

// Simplifier minimizes one function. The first call to Run, or to any
// accessor, computes everything; later calls return the cached outcome.
type Simplifier struct {
	vars          []string
	minterms      []Term
	maxCandidates int
	log           logrus.FieldLogger
	compare       func(a, b Term)

	once       sync.Once
	err        error
	primes     []Term
	rows       []Row
	essentials []Term
	residual   []Row
	covers     [][]Term
	stats      Stats
}

// New validates the inputs and prepares a run. Duplicate variables and
// minterms are dropped, keeping the first occurrence. The number of variables
// must equal the bit length of the largest minterm.
func New(minterms []int, variables []string, opts ...Option) (*Simplifier, error) {
	if len(minterms) == 0 {
		return nil, configErrorf("at least one minterm is required")
	}
	vars := lo.Uniq(variables)
	ms := lo.Uniq(minterms)
	for _, m := range ms {
		if m < 0 {
			return nil, configErrorf("minterm %d is negative", m)
		}
	}
	largest := lo.Max(ms)
	width := bits.Len(uint(largest))
	if width == 0 {
		width = 1
	}
	if len(vars) != width {
		return nil, configErrorf("number of variables (%d) does not match max minterm (%d)", len(vars), largest)
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)
	s := &Simplifier{
		vars:     vars,
		minterms: make([]Term, len(ms)),
		log:      discard,
	}
	for i, m := range ms {
		s.minterms[i] = FromNumber(m, width)
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Variables returns the deduplicated variable names.
func (s *Simplifier) Variables() []string {
	return append([]string(nil), s.vars...)
}

// Minterms returns the deduplicated minterms in input order.
func (s *Simplifier) Minterms() []Term {
	return append([]Term(nil), s.minterms...)
}

// Run computes prime implicants, essentials and every minimal cover. Only the
// first call does any work.
func (s *Simplifier) Run() error {
	s.once.Do(s.run)
	return s.err
}

func (s *Simplifier) run() {
	r := reducer{compare: s.compare, stats: &s.stats}
	s.primes = r.primeImplicants(s.minterms)
	s.rows = buildChart(s.primes, s.minterms)
	s.essentials, s.residual = extractEssentials(s.rows)

	log := s.log.WithFields(logrus.Fields{
		"variables":  len(s.vars),
		"minterms":   len(s.minterms),
		"primes":     len(s.primes),
		"essentials": len(s.essentials),
		"residual":   len(s.residual),
	})
	log.Debug("prime implicant chart built")

	if len(s.residual) == 0 {
		s.covers = [][]Term{append([]Term(nil), s.essentials...)}
		return
	}

	s.stats.SolverInvoked = true
	clauses := make([][]Term, len(s.residual))
	for i, row := range s.residual {
		clauses[i] = row.Cover
	}
	p := petrick{maxCandidates: s.maxCandidates, stats: &s.stats}
	solutions, err := p.solve(clauses)
	if err != nil {
		log.WithError(err).Warn("covering search aborted")
		s.err = err
		return
	}
	for _, sol := range solutions {
		cover := make([]Term, 0, len(s.essentials)+len(sol))
		cover = append(cover, s.essentials...)
		cover = append(cover, sol...)
		s.covers = append(s.covers, cover)
	}
	log.WithFields(logrus.Fields{
		"candidates": s.stats.Candidates,
		"covers":     len(s.covers),
	}).Debug("residual cover solved")
}

// Cover returns the primary minimal cover.
func (s *Simplifier) Cover() ([]Term, error) {
	if err := s.Run(); err != nil {
		return nil, err
	}
	return append([]Term(nil), s.covers[0]...), nil
}

// Covers returns every minimal cover, primary first.
func (s *Simplifier) Covers() ([][]Term, error) {
	if err := s.Run(); err != nil {
		return nil, err
	}
	out := make([][]Term, len(s.covers))
	for i, c := range s.covers {
		out[i] = append([]Term(nil), c...)
	}
	return out, nil
}

// PrimeImplicants returns all prime implicants ordered by pattern.
func (s *Simplifier) PrimeImplicants() ([]Term, error) {
	if err := s.Run(); err != nil {
		return nil, err
	}
	return append([]Term(nil), s.primes...), nil
}

// Essentials returns the essential prime implicants in discovery order.
func (s *Simplifier) Essentials() ([]Term, error) {
	if err := s.Run(); err != nil {
		return nil, err
	}
	return append([]Term(nil), s.essentials...), nil
}

// Residual returns the chart rows left uncovered by the essentials.
func (s *Simplifier) Residual() ([]Row, error) {
	if err := s.Run(); err != nil {
		return nil, err
	}
	return append([]Row(nil), s.residual...), nil
}

// Chart returns the prime implicant chart.
func (s *Simplifier) Chart() (ChartSnapshot, error) {
	if err := s.Run(); err != nil {
		return ChartSnapshot{}, err
	}
	return snapshot(s.rows, s.primes), nil
}

// Stats returns counters for the run.
func (s *Simplifier) Stats() (Stats, error) {
	if err := s.Run(); err != nil {
		return Stats{}, err
	}
	return s.stats, nil
}
