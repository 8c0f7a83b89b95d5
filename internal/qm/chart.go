package qm

// Row is one line of the prime implicant chart.
type Row struct {
	Minterm Term
	// Cover holds every prime implicant covering Minterm, ordered by pattern.
	Cover     []Term
	remaining bool
}

// Remaining reports whether no essential implicant covers the row.
func (r Row) Remaining() bool { return r.remaining }

func (r Row) contains(pattern string) bool {
	for _, t := range r.Cover {
		if t.pattern == pattern {
			return true
		}
	}
	return false
}

// buildChart creates one row per minterm, in input order. primes must be
// sorted by pattern.
func buildChart(primes, minterms []Term) []Row {
	rows := make([]Row, len(minterms))
	for i, m := range minterms {
		var cover []Term
		for _, p := range primes {
			if p.Covers(m) {
				cover = append(cover, p)
			}
		}
		rows[i] = Row{Minterm: m, Cover: cover, remaining: true}
	}
	return rows
}

// extractEssentials repeatedly picks the first remaining row with a single
// covering implicant, marks every row that implicant covers, and starts over.
// It returns the essentials in discovery order and the rows left uncovered.
func extractEssentials(rows []Row) (essentials []Term, residual []Row) {
	for {
		found := false
		for i := range rows {
			if !rows[i].remaining || len(rows[i].Cover) != 1 {
				continue
			}
			pi := rows[i].Cover[0]
			essentials = append(essentials, pi)
			for j := range rows {
				if rows[j].contains(pi.pattern) {
					rows[j].remaining = false
				}
			}
			found = true
			break
		}
		if !found {
			break
		}
	}
	for _, r := range rows {
		if r.remaining {
			residual = append(residual, r)
		}
	}
	return essentials, residual
}

// ChartSnapshot is a read-only view of the chart for presentation.
type ChartSnapshot struct {
	// Minterms are the decimal minterms in row order.
	Minterms []int `json:"minterms"`
	// Rows are the minterm patterns in row order.
	Rows []string `json:"rows"`
	// Implicants are the prime implicant patterns, sorted.
	Implicants []string `json:"implicants"`
	// Matrix[i][j] is true when Implicants[j] covers row i.
	Matrix [][]bool `json:"matrix"`
}

func snapshot(rows []Row, primes []Term) ChartSnapshot {
	s := ChartSnapshot{
		Minterms:   make([]int, len(rows)),
		Rows:       make([]string, len(rows)),
		Implicants: Patterns(primes),
		Matrix:     make([][]bool, len(rows)),
	}
	for i, r := range rows {
		s.Minterms[i], _ = r.Minterm.Number()
		s.Rows[i] = r.Minterm.pattern
		line := make([]bool, len(primes))
		for j, p := range primes {
			line[j] = r.contains(p.pattern)
		}
		s.Matrix[i] = line
	}
	return s
}
