package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/perfchart"
)

//go:embed templates
var templates embed.FS

// funcs are available to every markdown template.
var funcs = template.FuncMap{
	"usd":     perfchart.FormatUSD,
	"pct":     func(v float64) string { return fmt.Sprintf("%+.2f%%", v) },
	"percent": func(v float64) string { return fmt.Sprintf("%.2f%%", v) },
	"ratio":   func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"shares":  func(v float64) string { return fmt.Sprintf("%g", v) },
	"inc":     func(i int) int { return i + 1 },
}

// RenderSummary renders the report to a markdown string.
func RenderSummary(r *Report) string {
	partials := map[string]string{
		"summary_title":    "summary_title.md",
		"summary_values":   "summary_values.md",
		"summary_holdings": "",
		"summary_stats":    "summary_stats.md",
	}
	if r.Snapshot != nil {
		partials["summary_holdings"] = "holdings.md"
	}
	return renderTemplate("summary", "summary.md", partials, r)
}

// RenderHoldings renders the positions of a snapshot as a markdown table.
func RenderHoldings(s *perfchart.Snapshot) string {
	return renderTemplate("holdings", "holdings.md", nil, s)
}

// RenderTrades renders the transaction history as a markdown table.
func RenderTrades(trades []perfchart.Trade) string {
	return renderTemplate("trades", "trades.md", nil, trades)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, "templates/"+file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
