package verify

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"

	"github.com/pborges/logicloom/internal/qm"
)

const satisfiable = 1

// MinimumCoverSize returns the fewest prime implicants that cover every row
// of the chart. Each row becomes a clause over the implicants covering it and
// a sorting network bounds how many implicants may be chosen; the bound is
// raised from zero until the clauses are satisfiable.
func MinimumCoverSize(chart qm.ChartSnapshot) (int, error) {
	c := logic.NewCCap(len(chart.Implicants))
	lits := make([]z.Lit, len(chart.Implicants))
	for j := range lits {
		lits[j] = c.Lit()
	}

	g := gini.New()
	for i, row := range chart.Matrix {
		n := 0
		for j, covered := range row {
			if covered {
				g.Add(lits[j])
				n++
			}
		}
		if n == 0 {
			return 0, errors.Errorf("minterm %s is not covered by any implicant", chart.Rows[i])
		}
		g.Add(z.LitNull)
	}

	cs := c.CardSort(lits)
	c.ToCnf(g)
	g.Add(c.T)
	g.Add(z.LitNull)

	for w := 0; w <= cs.N(); w++ {
		g.Assume(cs.Leq(w))
		if g.Solve() == satisfiable {
			return w, nil
		}
	}
	return 0, errors.New("chart has no cover")
}
