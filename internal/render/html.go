package render

import (
	"html/template"
	"io"

	"github.com/pborges/logicloom/internal/qm"
)

// MathJaxURL is the script the LaTeX page loads to typeset equations.
const MathJaxURL = "https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js"

var pages = template.Must(template.New("empty").Parse(`<!DOCTYPE html>
<html>
<body style="background:#1a2332;color:#8b9cb8;font-size:14px;padding:16px;margin:0;">
<p style="margin:0;">{{.}}</p>
</body>
</html>
`))

func init() {
	template.Must(pages.New("equations").Parse(`<!DOCTYPE html>
<html>
<body style="background:#1a2332;color:#e6edf3;font-size:18px;padding:6px 12px;margin:0;">
{{- range .}}
<p style="margin:0 0 6px 0;font-size:18px;font-family:'JetBrains Mono',Consolas,monospace;">{{.Text}}</p>
{{- end}}
</body>
</html>
`))
	template.Must(pages.New("latex").Parse(`<!DOCTYPE html>
<html>
<head>
<script src="{{.Script}}"></script>
</head>
<body style="background:#1a2332;color:#e6edf3;font-size:16px;padding:12px;margin:0;">
{{- range .Equations}}
<p>$${{.Markup}}$$</p>
{{- end}}
</body>
</html>
`))
	template.Must(pages.New("chart").Parse(`<!DOCTYPE html>
<html>
<body style="background:#1a2332;color:#e6edf3;font-size:14px;padding:12px;margin:0;">
<table style="border-collapse:collapse;font-family:'JetBrains Mono',Consolas,monospace;">
<tr>{{range .Headers}}<th style="border:1px solid #8b9cb8;padding:2px 8px;">{{.}}</th>{{end}}</tr>
{{- range .Rows}}
<tr>{{range .}}<td style="border:1px solid #8b9cb8;padding:2px 8px;text-align:center;">{{.}}</td>{{end}}</tr>
{{- end}}
</table>
</body>
</html>
`))
}

// EmptyHTML writes a page showing only placeholder.
func EmptyHTML(w io.Writer, placeholder string) error {
	return pages.ExecuteTemplate(w, "empty", placeholder)
}

// EquationsHTML writes a page listing the plain text equations.
func EquationsHTML(w io.Writer, eqs []Equation) error {
	return pages.ExecuteTemplate(w, "equations", eqs)
}

// LaTeXHTML writes a page that typesets the equation markup with MathJax.
func LaTeXHTML(w io.Writer, eqs []Equation) error {
	return pages.ExecuteTemplate(w, "latex", struct {
		Script    string
		Equations []Equation
	}{MathJaxURL, eqs})
}

// ChartHTML writes the prime implicant chart as an HTML table.
func ChartHTML(w io.Writer, c qm.ChartSnapshot, tick string) error {
	return pages.ExecuteTemplate(w, "chart", struct {
		Headers []string
		Rows    [][]string
	}{chartHeaders(c), chartRows(c, tick)})
}
