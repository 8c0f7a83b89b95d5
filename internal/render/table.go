package render

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/pborges/logicloom/internal/qm"
)

const minCellWidth = 2

// Table draws headers and rows as a box-drawing table with centred cells.
// Rows shorter than headers are padded with empty cells.
func Table(headers []string, rows [][]string) string {
	all := make([][]string, 0, len(rows)+1)
	all = append(all, headers)
	all = append(all, rows...)

	widths := make([]int, len(headers))
	for c := range widths {
		widths[c] = minCellWidth
		for _, r := range all {
			if w := runewidth.StringWidth(cell(r, c)); w > widths[c] {
				widths[c] = w
			}
		}
	}

	rule := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return left + strings.Join(parts, mid) + right
	}

	var b strings.Builder
	b.WriteString(rule("┌", "┬", "┐"))
	for i, r := range all {
		b.WriteString("\n│")
		for c, w := range widths {
			b.WriteString(" " + center(cell(r, c), w) + " │")
		}
		if i < len(all)-1 {
			b.WriteString("\n" + rule("├", "┼", "┤"))
		}
	}
	b.WriteString("\n" + rule("└", "┴", "┘"))
	return b.String()
}

func cell(r []string, c int) string {
	if c < len(r) {
		return r[c]
	}
	return ""
}

func center(s string, w int) string {
	pad := w - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	// Odd padding puts the extra space on the left when w is odd.
	left := pad/2 + (pad & w & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// ImplicantTable lists terms with their pattern and expression.
func ImplicantTable(vars []string, terms []qm.Term) string {
	rows := make([][]string, len(terms))
	for i, t := range terms {
		rows[i] = []string{t.Pattern(), t.Expression(vars)}
	}
	return Table([]string{"Binary", "Literal"}, rows)
}
