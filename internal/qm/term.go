package qm

import (
	"strconv"
	"strings"
)

// Pattern characters.
const (
	One      = '1'
	Zero     = '0'
	DontCare = '-'
)

// Term is a product term written as a fixed-length pattern over {0,1,-}.
// Terms are values; two terms with the same pattern are the same implicant
// regardless of where they came from, so collections of terms are always keyed
// by Pattern().
type Term struct {
	pattern   string
	number    int
	hasNumber bool
}

// FromNumber returns the minterm for n, zero-padded to width bits.
func FromNumber(n, width int) Term {
	p := strconv.FormatInt(int64(n), 2)
	if len(p) < width {
		p = strings.Repeat("0", width-len(p)) + p
	}
	return Term{pattern: p, number: n, hasNumber: true}
}

// FromPattern returns the implicant for pattern p. The result carries no
// originating number.
func FromPattern(p string) Term {
	return Term{pattern: p}
}

// Pattern returns the term as a string over {0,1,-}, most significant bit first.
func (t Term) Pattern() string { return t.pattern }

// String returns the pattern.
func (t Term) String() string { return t.pattern }

// Number returns the decimal value the term was built from. ok is false for
// merged implicants.
func (t Term) Number() (n int, ok bool) {
	return t.number, t.hasNumber
}

// Len is the number of variables the term ranges over.
func (t Term) Len() int { return len(t.pattern) }

// Ones counts the '1' positions.
func (t Term) Ones() int {
	return strings.Count(t.pattern, string(One))
}

// Literals counts the positions that are not don't-care.
func (t Term) Literals() int {
	return len(t.pattern) - strings.Count(t.pattern, string(DontCare))
}

// Merge combines t and o when their patterns differ in exactly one position,
// replacing that position with a don't-care. Patterns of unequal length never
// merge.
func (t Term) Merge(o Term) (Term, bool) {
	if len(t.pattern) != len(o.pattern) {
		return Term{}, false
	}
	diff := -1
	for i := 0; i < len(t.pattern); i++ {
		if t.pattern[i] == o.pattern[i] {
			continue
		}
		if diff >= 0 {
			return Term{}, false
		}
		diff = i
	}
	if diff < 0 {
		return Term{}, false
	}
	b := []byte(t.pattern)
	b[diff] = DontCare
	return FromPattern(string(b)), true
}

// Covers reports whether every minterm of o is also a minterm of t.
func (t Term) Covers(o Term) bool {
	if len(t.pattern) != len(o.pattern) {
		return false
	}
	for i := 0; i < len(t.pattern); i++ {
		if t.pattern[i] != DontCare && t.pattern[i] != o.pattern[i] {
			return false
		}
	}
	return true
}

// Expression renders the term as a product of literals, e.g. "xy'z".
// A term with no literals is the constant "true".
func (t Term) Expression(vars []string) string {
	var sb strings.Builder
	for i := 0; i < len(t.pattern) && i < len(vars); i++ {
		switch t.pattern[i] {
		case One:
			sb.WriteString(vars[i])
		case Zero:
			sb.WriteString(vars[i])
			sb.WriteByte('\'')
		}
	}
	if sb.Len() == 0 {
		return "true"
	}
	return sb.String()
}

// Markup renders the term as a LaTeX product, e.g. `x \cdot \bar{y}`.
func (t Term) Markup(vars []string) string {
	parts := make([]string, 0, len(t.pattern))
	for i := 0; i < len(t.pattern) && i < len(vars); i++ {
		switch t.pattern[i] {
		case One:
			parts = append(parts, vars[i])
		case Zero:
			parts = append(parts, `\bar{`+vars[i]+`}`)
		}
	}
	if len(parts) == 0 {
		return `\mathrm{true}`
	}
	return strings.Join(parts, ` \cdot `)
}

// Patterns returns the patterns of ts in order.
func Patterns(ts []Term) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.pattern
	}
	return out
}

// LiteralCount sums Literals over ts.
func LiteralCount(ts []Term) int {
	n := 0
	for _, t := range ts {
		n += t.Literals()
	}
	return n
}
