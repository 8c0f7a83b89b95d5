// Package render formats minimization results for terminals, LaTeX and HTML.
package render

import (
	"strings"

	"github.com/pborges/logicloom/internal/qm"
)

// Equation is one sum-of-products expression in plain text and LaTeX markup.
type Equation struct {
	Text   string `json:"text"`
	Markup string `json:"markup"`
}

// Header returns the function heading, e.g. "F(a,b,c) = ".
func Header(vars []string) string {
	return "F(" + strings.Join(vars, ",") + ") = "
}

// NewEquation renders a cover over vars.
func NewEquation(vars []string, cover []qm.Term) Equation {
	text := make([]string, len(cover))
	markup := make([]string, len(cover))
	for i, t := range cover {
		text[i] = t.Expression(vars)
		markup[i] = t.Markup(vars)
	}
	h := Header(vars)
	return Equation{
		Text:   h + strings.Join(text, " + "),
		Markup: h + strings.Join(markup, " + "),
	}
}

// Equations renders every cover in order.
func Equations(vars []string, covers [][]qm.Term) []Equation {
	out := make([]Equation, len(covers))
	for i, c := range covers {
		out[i] = NewEquation(vars, c)
	}
	return out
}
