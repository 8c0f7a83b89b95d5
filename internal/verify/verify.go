// Package verify cross-checks minimization results against independent
// engines: a BDD for equivalence, a SAT cardinality search for the fewest
// terms and a weighted MaxSAT search for the cheapest cover.
package verify

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"

	"github.com/pborges/logicloom/internal/qm"
)

// ErrMismatch is wrapped when a cover fails a check.
var ErrMismatch = errors.New("verification failed")

// CoverReport is the outcome of checking one cover.
type CoverReport struct {
	Patterns    []string `json:"patterns"`
	Cost        Cost     `json:"cost"`
	Equivalent  bool     `json:"equivalent"`
	Irredundant bool     `json:"irredundant"`
	// Assignments is the number of inputs the cover evaluates true on.
	Assignments *big.Int `json:"assignments"`
}

// Report is the outcome of Check.
type Report struct {
	Covers []CoverReport `json:"covers"`
	// MinimumTerms is the cardinality bound proved by the SAT search.
	MinimumTerms int `json:"minimum_terms"`
	// Optimal is the cost proved by the MaxSAT search.
	Optimal Cost `json:"optimal"`
	// Problems lists every failed check.
	Problems []string `json:"problems,omitempty"`
}

// OK reports whether every check passed.
func (r Report) OK() bool { return len(r.Problems) == 0 }

// Err returns nil when r is OK, otherwise an error wrapping ErrMismatch.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	return errors.Wrapf(ErrMismatch, "%d problem(s), first: %s", len(r.Problems), r.Problems[0])
}

// Check runs s if needed and verifies every cover it returns: equivalence to
// the on-set, irredundancy, and that its cost is the proven optimum.
func Check(s *qm.Simplifier) (Report, error) {
	covers, err := s.Covers()
	if err != nil {
		return Report{}, err
	}
	chart, err := s.Chart()
	if err != nil {
		return Report{}, err
	}
	minterms := s.Minterms()

	var r Report
	if r.MinimumTerms, err = MinimumCoverSize(chart); err != nil {
		return Report{}, errors.Wrap(err, "cardinality search")
	}
	if r.Optimal, err = OptimalCost(chart); err != nil {
		return Report{}, errors.Wrap(err, "maxsat search")
	}
	if r.MinimumTerms != r.Optimal.Terms {
		r.problemf("cardinality search found %d terms, maxsat found %d", r.MinimumTerms, r.Optimal.Terms)
	}

	for i, cover := range covers {
		cr := CoverReport{
			Patterns:    qm.Patterns(cover),
			Cost:        CostOf(cover),
			Irredundant: irredundant(minterms, cover),
		}
		if cr.Equivalent, cr.Assignments, err = Equivalent(minterms, cover); err != nil {
			return Report{}, errors.Wrapf(err, "cover %d", i+1)
		}
		if !cr.Equivalent {
			r.problemf("cover %d %v is not equivalent to the minterms", i+1, cr.Patterns)
		}
		if !cr.Irredundant {
			r.problemf("cover %d %v has a redundant term", i+1, cr.Patterns)
		}
		if cr.Cost != r.Optimal {
			r.problemf("cover %d %v costs %+v, optimum is %+v", i+1, cr.Patterns, cr.Cost, r.Optimal)
		}
		r.Covers = append(r.Covers, cr)
	}
	return r, nil
}

func (r *Report) problemf(format string, args ...interface{}) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

// irredundant reports whether dropping any single term leaves a minterm
// uncovered.
func irredundant(minterms, cover []qm.Term) bool {
	for i := range cover {
		rest := make([]qm.Term, 0, len(cover)-1)
		rest = append(rest, cover[:i]...)
		rest = append(rest, cover[i+1:]...)
		if coversAll(rest, minterms) {
			return false
		}
	}
	return true
}

func coversAll(cover, minterms []qm.Term) bool {
	for _, m := range minterms {
		hit := false
		for _, t := range cover {
			if t.Covers(m) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}
