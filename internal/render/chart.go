package render

import (
	"strings"

	"github.com/pborges/logicloom/internal/qm"
)

// Default marks for covered chart cells.
const (
	TerminalTick = "x"
	LaTeXTick    = `$\checkmark$`
)

func chartRows(c qm.ChartSnapshot, tick string) [][]string {
	rows := make([][]string, len(c.Rows))
	for i, label := range c.Rows {
		r := make([]string, 0, len(c.Implicants)+1)
		r = append(r, label)
		for j := range c.Implicants {
			if c.Matrix[i][j] {
				r = append(r, tick)
			} else {
				r = append(r, "")
			}
		}
		rows[i] = r
	}
	return rows
}

func chartHeaders(c qm.ChartSnapshot) []string {
	return append([]string{"Minterm"}, c.Implicants...)
}

// ChartTable draws the prime implicant chart for a terminal.
func ChartTable(c qm.ChartSnapshot, tick string) string {
	return Table(chartHeaders(c), chartRows(c, tick))
}

// ChartLaTeX renders the prime implicant chart as a LaTeX tabular.
func ChartLaTeX(c qm.ChartSnapshot, tick string) string {
	var b strings.Builder
	b.WriteString(`\begin{tabular}{|` + strings.Repeat("c|", len(c.Implicants)+1) + "}\n")
	b.WriteString(`\hline` + "\n")
	b.WriteString(strings.Join(chartHeaders(c), " & ") + ` \\` + "\n")
	b.WriteString(`\hline` + "\n")
	for _, r := range chartRows(c, tick) {
		b.WriteString(strings.Join(r, " & ") + ` \\` + "\n")
		b.WriteString(`\hline` + "\n")
	}
	b.WriteString(`\end{tabular}`)
	return b.String()
}
