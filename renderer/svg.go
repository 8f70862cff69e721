package renderer

import (
	"fmt"
	"html/template"
	"io"

	"github.com/etnz/perfchart"
)

var svgTemplate = template.Must(template.New("chart.svg").
	Funcs(template.FuncMap{
		"num":  coord,
		"half": func(v float64) string { return coord(v / 2) },
	}).
	ParseFS(templates, "templates/chart.svg"))

// RenderSVG writes the SVG document of the current state of c.
func RenderSVG(w io.Writer, c *perfchart.Chart, opts Options) error {
	s := NewScene(c, opts)
	if err := svgTemplate.Execute(w, s); err != nil {
		return fmt.Errorf("could not render svg: %w", err)
	}
	return nil
}
