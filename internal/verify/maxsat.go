package verify

import (
	"github.com/crillab/gophersat/maxsat"
	"github.com/pkg/errors"

	"github.com/pborges/logicloom/internal/qm"
)

// Cost orders covers by number of terms, then number of literals.
type Cost struct {
	Terms    int `json:"terms"`
	Literals int `json:"literals"`
}

// CostOf returns the cost of cover.
func CostOf(cover []qm.Term) Cost {
	return Cost{Terms: len(cover), Literals: qm.LiteralCount(cover)}
}

// OptimalCost returns the cheapest cost any selection of the chart's
// implicants can cover it with. Choosing implicant p violates a soft clause
// weighted M + literals(p), where M exceeds the literal total of all
// implicants, so the optimum minimizes terms first and literals second.
func OptimalCost(chart qm.ChartSnapshot) (Cost, error) {
	literals := make([]int, len(chart.Implicants))
	m := 1
	for j, p := range chart.Implicants {
		literals[j] = qm.FromPattern(p).Literals()
		m += literals[j]
	}

	var constrs []maxsat.Constr
	for i, row := range chart.Matrix {
		var clause []maxsat.Lit
		for j, covered := range row {
			if covered {
				clause = append(clause, maxsat.Var(chart.Implicants[j]))
			}
		}
		if len(clause) == 0 {
			return Cost{}, errors.Errorf("minterm %s is not covered by any implicant", chart.Rows[i])
		}
		constrs = append(constrs, maxsat.HardClause(clause...))
	}
	for j, p := range chart.Implicants {
		constrs = append(constrs, maxsat.WeightedClause([]maxsat.Lit{maxsat.Not(p)}, m+literals[j]))
	}

	model, cost := maxsat.New(constrs...).Solve()
	if model == nil {
		return Cost{}, errors.New("chart has no cover")
	}
	return Cost{Terms: cost / m, Literals: cost % m}, nil
}
