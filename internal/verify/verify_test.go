package verify

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pborges/logicloom/internal/qm"
)

func terms(ps ...string) []qm.Term {
	out := make([]qm.Term, len(ps))
	for i, p := range ps {
		out[i] = qm.FromPattern(p)
	}
	return out
}

func mintermsOf(width int, ns ...int) []qm.Term {
	out := make([]qm.Term, len(ns))
	for i, n := range ns {
		out[i] = qm.FromNumber(n, width)
	}
	return out
}

func TestEquivalent(t *testing.T) {
	ms := mintermsOf(3, 0, 2, 4, 5, 6)
	for _, tc := range []struct {
		name  string
		cover []string
		want  bool
		count int64
	}{
		{"minimal", []string{"--0", "10-"}, true, 5},
		{"overlapping", []string{"--0", "10-", "-00"}, true, 5},
		{"missing minterm", []string{"--0"}, false, 4},
		{"extra minterm", []string{"--0", "1--"}, false, 6},
		{"empty", nil, false, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ok, n, err := Equivalent(ms, terms(tc.cover...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
			assert.Equal(t, 0, big.NewInt(tc.count).Cmp(n), "satcount %s", n)
		})
	}
}

func TestEquivalentTautology(t *testing.T) {
	ok, n, err := Equivalent(mintermsOf(2, 0, 1, 2, 3), terms("--"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(4), n.Int64())
}

func chartOf(t *testing.T, vars []string, minterms ...int) (*qm.Simplifier, qm.ChartSnapshot) {
	t.Helper()
	s, err := qm.New(minterms, vars)
	require.NoError(t, err)
	chart, err := s.Chart()
	require.NoError(t, err)
	return s, chart
}

func TestOracles(t *testing.T) {
	for _, tc := range []struct {
		name     string
		vars     []string
		minterms []int
		terms    int
		literals int
	}{
		{"tautology", []string{"A", "B"}, []int{0, 1, 2, 3}, 1, 0},
		{"textbook", []string{"w", "x", "y", "z"}, []int{1, 4, 5, 6, 12, 14, 15}, 3, 8},
		{"three variables", []string{"x", "y", "z"}, []int{0, 2, 4, 5, 6}, 2, 3},
		{"cyclic", []string{"a", "b", "c"}, []int{0, 1, 2, 5, 6, 7}, 3, 6},
		{"essentials then tie", []string{"A", "B", "C", "D"}, []int{0, 2, 4, 5, 6, 7, 8, 10, 13, 15}, 3, 6},
		{"single variable", []string{"x"}, []int{0}, 1, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, chart := chartOf(t, tc.vars, tc.minterms...)

			n, err := MinimumCoverSize(chart)
			require.NoError(t, err)
			assert.Equal(t, tc.terms, n)

			cost, err := OptimalCost(chart)
			require.NoError(t, err)
			assert.Equal(t, Cost{Terms: tc.terms, Literals: tc.literals}, cost)
		})
	}
}

func TestOraclesRejectUncoveredRow(t *testing.T) {
	chart := qm.ChartSnapshot{
		Rows:       []string{"00", "11"},
		Implicants: []string{"0-"},
		Matrix:     [][]bool{{true}, {false}},
	}
	_, err := MinimumCoverSize(chart)
	assert.Error(t, err)
	_, err = OptimalCost(chart)
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	s, _ := chartOf(t, []string{"A", "B", "C", "D"}, 0, 2, 4, 5, 6, 7, 8, 10, 13, 15)
	r, err := Check(s)
	require.NoError(t, err)
	assert.True(t, r.OK(), "%v", r.Problems)
	assert.NoError(t, r.Err())
	assert.Equal(t, 3, r.MinimumTerms)
	require.Len(t, r.Covers, 2)
	for _, c := range r.Covers {
		assert.True(t, c.Equivalent)
		assert.True(t, c.Irredundant)
		assert.Equal(t, r.Optimal, c.Cost)
		assert.Equal(t, int64(10), c.Assignments.Int64())
	}
}

func TestCheckCandidateLimit(t *testing.T) {
	s, err := qm.New([]int{0, 1, 2, 5, 6, 7}, []string{"a", "b", "c"}, qm.WithMaxCandidates(2))
	require.NoError(t, err)
	_, err = Check(s)
	assert.True(t, errors.Is(err, qm.ErrCandidateLimit))
}

func TestReportErr(t *testing.T) {
	var r Report
	r.problemf("cover %d is wrong", 1)
	r.problemf("cover %d is wrong", 2)
	assert.False(t, r.OK())
	err := r.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatch))
	assert.Contains(t, err.Error(), "2 problem(s), first: cover 1 is wrong")
}

func TestIrredundant(t *testing.T) {
	ms := mintermsOf(3, 0, 2, 4, 5, 6)
	assert.True(t, irredundant(ms, terms("--0", "10-")))
	assert.False(t, irredundant(ms, terms("--0", "10-", "-00")))
}
