package qm

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
)

// petrick solves the residual covering problem: pick implicants so that every
// clause contains at least one of them, with as few implicants as possible and,
// among those, as few literals as possible. All tied optima are returned.
type petrick struct {
	// maxCandidates bounds the partial solutions of one generation, carried
	// forward ones included, before pruning. Zero or less means no bound.
	maxCandidates int
	stats         *Stats
}

type product = mapset.Set[string]

func (p *petrick) solve(clauses [][]Term) ([][]Term, error) {
	if len(clauses) == 0 {
		return nil, nil
	}
	byPattern := make(map[string]Term)
	for _, c := range clauses {
		for _, t := range c {
			byPattern[t.pattern] = t
		}
	}

	gen := make([]product, 0, len(clauses[0]))
	for _, t := range clauses[0] {
		gen = append(gen, mapset.NewThreadUnsafeSet(t.pattern))
	}
	p.observe(len(gen))

	for i, clause := range clauses[1:] {
		next := make([]product, 0, len(gen))
		for _, s := range gen {
			if intersects(s, clause) {
				// s already satisfies the clause; every extension is a superset.
				next = append(next, s)
				continue
			}
			for _, t := range clause {
				u := s.Clone()
				u.Add(t.pattern)
				next = append(next, u)
			}
		}
		p.observe(len(next))
		if p.maxCandidates > 0 && len(next) > p.maxCandidates {
			return nil, errors.Wrapf(ErrCandidateLimit, "%d partial covers after clause %d of %d (limit %d)",
				len(next), i+2, len(clauses), p.maxCandidates)
		}
		gen = removeSupersets(next)
	}

	gen = fewestTerms(gen)
	gen = fewestLiterals(gen, byPattern)

	out := make([][]Term, len(gen))
	for i, s := range gen {
		ts := make([]Term, 0, s.Cardinality())
		for _, pat := range s.ToSlice() {
			ts = append(ts, byPattern[pat])
		}
		sortByPattern(ts)
		out[i] = ts
	}
	sort.Slice(out, func(i, j int) bool { return lessPatterns(out[i], out[j]) })
	return out, nil
}

func (p *petrick) observe(n int) {
	if p.stats != nil && n > p.stats.Candidates {
		p.stats.Candidates = n
	}
}

func intersects(s product, clause []Term) bool {
	for _, t := range clause {
		if s.Contains(t.pattern) {
			return true
		}
	}
	return false
}

// removeSupersets keeps, smallest first, only the products that contain no
// already retained product. Equal products collapse into the first.
func removeSupersets(ps []product) []product {
	if len(ps) <= 1 {
		return ps
	}
	sort.SliceStable(ps, func(i, j int) bool { return ps[i].Cardinality() < ps[j].Cardinality() })
	kept := make([]product, 0, len(ps))
	for _, s := range ps {
		dominated := false
		for _, k := range kept {
			if s.IsSuperset(k) {
				dominated = true
				break
			}
		}
		if !dominated {
			kept = append(kept, s)
		}
	}
	return kept
}

func fewestTerms(ps []product) []product {
	best := -1
	for _, s := range ps {
		if n := s.Cardinality(); best < 0 || n < best {
			best = n
		}
	}
	var out []product
	for _, s := range ps {
		if s.Cardinality() == best {
			out = append(out, s)
		}
	}
	return out
}

func fewestLiterals(ps []product, byPattern map[string]Term) []product {
	counts := make([]int, len(ps))
	best := -1
	for i, s := range ps {
		for _, pat := range s.ToSlice() {
			counts[i] += byPattern[pat].Literals()
		}
		if best < 0 || counts[i] < best {
			best = counts[i]
		}
	}
	var out []product
	for i, s := range ps {
		if counts[i] == best {
			out = append(out, s)
		}
	}
	return out
}

func lessPatterns(a, b []Term) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].pattern != b[i].pattern {
			return a[i].pattern < b[i].pattern
		}
	}
	return len(a) < len(b)
}
