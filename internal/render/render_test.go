package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pborges/logicloom/internal/qm"
)

func simplify(t *testing.T, vars []string, minterms ...int) *qm.Simplifier {
	t.Helper()
	s, err := qm.New(minterms, vars)
	require.NoError(t, err)
	require.NoError(t, s.Run())
	return s
}

func TestEquation(t *testing.T) {
	for _, tc := range []struct {
		name     string
		vars     []string
		minterms []int
		text     string
		markup   string
	}{
		{
			name:     "tautology",
			vars:     []string{"A", "B"},
			minterms: []int{0, 1, 2, 3},
			text:     "F(A,B) = true",
			markup:   `F(A,B) = \mathrm{true}`,
		},
		{
			name:     "three variables",
			vars:     []string{"x", "y", "z"},
			minterms: []int{0, 2, 4, 5, 6},
			text:     "F(x,y,z) = z' + xy'",
			markup:   `F(x,y,z) = \bar{z} + x \cdot \bar{y}`,
		},
		{
			name:     "textbook",
			vars:     []string{"w", "x", "y", "z"},
			minterms: []int{1, 4, 5, 6, 12, 14, 15},
			text:     "F(w,x,y,z) = w'y'z + xz' + wxy",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := simplify(t, tc.vars, tc.minterms...)
			cover, err := s.Cover()
			require.NoError(t, err)
			eq := NewEquation(s.Variables(), cover)
			assert.Equal(t, tc.text, eq.Text)
			if tc.markup != "" {
				assert.Equal(t, tc.markup, eq.Markup)
			}
		})
	}
}

func TestEquationsOnePerCover(t *testing.T) {
	s := simplify(t, []string{"a", "b", "c"}, 0, 1, 2, 5, 6, 7)
	covers, err := s.Covers()
	require.NoError(t, err)
	eqs := Equations(s.Variables(), covers)
	require.Len(t, eqs, 2)
	assert.Equal(t, "F(a,b,c) = b'c + a'c' + ab", eqs[0].Text)
	assert.Equal(t, "F(a,b,c) = bc' + a'b' + ac", eqs[1].Text)
}

func TestTable(t *testing.T) {
	got := Table([]string{"Binary", "Literal"}, [][]string{{"--0", "z'"}, {"10-"}})
	want := strings.Join([]string{
		"┌────────┬─────────┐",
		"│ Binary │ Literal │",
		"├────────┼─────────┤",
		"│  --0   │    z'   │",
		"├────────┼─────────┤",
		"│  10-   │         │",
		"└────────┴─────────┘",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestCenter(t *testing.T) {
	for _, tc := range []struct {
		s    string
		w    int
		want string
	}{
		{"ab", 4, " ab "},
		{"ab", 5, "  ab "},
		{"a", 4, " a  "},
		{"z'", 7, "   z'  "},
		{"--0", 6, " --0  "},
		{"wide", 2, "wide"},
	} {
		assert.Equal(t, tc.want, center(tc.s, tc.w), "center(%q, %d)", tc.s, tc.w)
	}
}

func TestTableMinimumWidth(t *testing.T) {
	got := Table([]string{"a"}, nil)
	assert.Equal(t, "┌────┐\n│ a  │\n└────┘", got)
}

func TestChart(t *testing.T) {
	s := simplify(t, []string{"x", "y", "z"}, 0, 2, 4, 5, 6)
	chart, err := s.Chart()
	require.NoError(t, err)

	table := ChartTable(chart, TerminalTick)
	lines := strings.Split(table, "\n")
	assert.Equal(t, "│ Minterm │ --0 │ 10- │", lines[1])
	assert.Equal(t, "│   000   │  x  │     │", lines[3])
	assert.Equal(t, "│   101   │     │  x  │", lines[9])

	assert.Equal(t, strings.Join([]string{
		`\begin{tabular}{|c|c|c|}`,
		`\hline`,
		`Minterm & --0 & 10- \\`,
		`\hline`,
		`000 & X &  \\`,
		`\hline`,
		`010 & X &  \\`,
		`\hline`,
		`100 & X & X \\`,
		`\hline`,
		`101 &  & X \\`,
		`\hline`,
		`110 & X &  \\`,
		`\hline`,
		`\end{tabular}`,
	}, "\n"), ChartLaTeX(chart, "X"))
}

func TestHTML(t *testing.T) {
	eqs := []Equation{{Text: "F(a,b) = a<b & c", Markup: `F(a,b) = \bar{a}`}}

	var buf bytes.Buffer
	require.NoError(t, EquationsHTML(&buf, eqs))
	assert.Contains(t, buf.String(), "F(a,b) = a&lt;b &amp; c</p>")

	buf.Reset()
	require.NoError(t, LaTeXHTML(&buf, eqs))
	assert.Contains(t, buf.String(), `<p>$$F(a,b) = \bar{a}$$</p>`)
	assert.Contains(t, buf.String(), MathJaxURL)

	buf.Reset()
	require.NoError(t, EmptyHTML(&buf, "Enter <variables>"))
	assert.Contains(t, buf.String(), "Enter &lt;variables&gt;")

	s := simplify(t, []string{"x", "y", "z"}, 0, 2, 4, 5, 6)
	chart, err := s.Chart()
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, ChartHTML(&buf, chart, "✓"))
	assert.Equal(t, 6, strings.Count(buf.String(), "<tr>"))
	assert.Contains(t, buf.String(), ">--0</th>")
	assert.Contains(t, buf.String(), ">✓</td>")
}
