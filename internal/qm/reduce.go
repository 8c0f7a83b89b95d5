package qm

import (
	"sort"
)

// termSet is an insertion-ordered set of terms keyed by pattern.
type termSet struct {
	terms []Term
	index map[string]int
}

func newTermSet() *termSet {
	return &termSet{index: make(map[string]int)}
}

// add inserts t unless a term with the same pattern is already present.
func (s *termSet) add(t Term) bool {
	if _, ok := s.index[t.pattern]; ok {
		return false
	}
	s.index[t.pattern] = len(s.terms)
	s.terms = append(s.terms, t)
	return true
}

// sorted returns the members ordered by pattern.
func (s *termSet) sorted() []Term {
	out := make([]Term, len(s.terms))
	copy(out, s.terms)
	sortByPattern(out)
	return out
}

func sortByPattern(ts []Term) {
	sort.Slice(ts, func(i, j int) bool { return ts[i].pattern < ts[j].pattern })
}

// level is one column of the reduction: terms grouped by number of ones.
type level map[int]*termSet

func (l level) add(t Term) {
	w := t.Ones()
	g, ok := l[w]
	if !ok {
		g = newTermSet()
		l[w] = g
	}
	g.add(t)
}

func (l level) weights() []int {
	ws := make([]int, 0, len(l))
	for w := range l {
		ws = append(ws, w)
	}
	sort.Ints(ws)
	return ws
}

// reducer runs the merge phase. compare, when set, observes every attempted
// merge.
type reducer struct {
	compare func(a, b Term)
	stats   *Stats
}

// primeImplicants merges terms of adjacent weight level by level until a level
// produces no merge. Terms never consumed by a merge are prime.
func (r *reducer) primeImplicants(minterms []Term) []Term {
	cur := make(level)
	for _, m := range minterms {
		cur.add(m)
	}

	primes := newTermSet()
	for len(cur) > 0 {
		r.stats.Levels++
		next := make(level)
		consumed := make(map[string]bool)
		merges := 0

		for _, w := range cur.weights() {
			lo := cur[w]
			hi, ok := cur[w+1]
			if !ok {
				continue
			}
			for _, a := range lo.terms {
				for _, b := range hi.terms {
					if r.compare != nil {
						r.compare(a, b)
					}
					r.stats.Comparisons++
					m, ok := a.Merge(b)
					if !ok {
						continue
					}
					merges++
					consumed[a.pattern] = true
					consumed[b.pattern] = true
					next.add(m)
				}
			}
		}
		r.stats.Merges += merges

		for _, w := range cur.weights() {
			for _, t := range cur[w].terms {
				if !consumed[t.pattern] {
					primes.add(t)
				}
			}
		}
		if merges == 0 {
			break
		}
		cur = next
	}
	return primes.sorted()
}
