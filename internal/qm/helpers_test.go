package qm

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustNew(t *testing.T, vars string, minterms ...int) *Simplifier {
	t.Helper()
	s, err := New(minterms, strings.Split(vars, ","))
	require.NoError(t, err)
	return s
}

// coverKey identifies a cover independently of term order.
func coverKey(ts []Term) string {
	ps := Patterns(ts)
	sort.Strings(ps)
	return strings.Join(ps, " ")
}

func coverKeys(covers [][]Term) []string {
	out := make([]string, len(covers))
	for i, c := range covers {
		out[i] = coverKey(c)
	}
	sort.Strings(out)
	return out
}

func coversAll(cover, minterms []Term) bool {
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

// bruteForce enumerates subsets of primes by increasing size and returns every
// cover of minimum size and, among those, minimum literal count.
func bruteForce(primes, minterms []Term) [][]Term {
	n := len(primes)
	for k := 1; k <= n; k++ {
		var found [][]Term
		idx := make([]int, k)
		var rec func(pos, start int)
		rec = func(pos, start int) {
			if pos == k {
				pick := make([]Term, k)
				for i, j := range idx {
					pick[i] = primes[j]
				}
				if coversAll(pick, minterms) {
					found = append(found, pick)
				}
				return
			}
			for j := start; j < n; j++ {
				idx[pos] = j
				rec(pos+1, j+1)
			}
		}
		rec(0, 0)
		if len(found) == 0 {
			continue
		}
		best := -1
		for _, f := range found {
			if c := LiteralCount(f); best < 0 || c < best {
				best = c
			}
		}
		var out [][]Term
		for _, f := range found {
			if LiteralCount(f) == best {
				out = append(out, f)
			}
		}
		return out
	}
	return nil
}
