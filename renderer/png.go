package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/etnz/perfchart"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Series colors, shared with the SVG stylesheet.
var (
	benchmarkColor = drawing.ColorFromHex("1f77b4")
	portfolioColor = drawing.ColorFromHex("ff7f0e")
)

// RenderPNG writes a static image of the focus view of c.
func RenderPNG(w io.Writer, c *perfchart.Chart, opts Options) error {
	l := c.Layout()
	focus := c.Focus()
	points := c.Series().Within(focus.Dates)
	if len(points) == 0 {
		// The selection holds no data point: draw the flat values around it.
		if p, ok := c.Series().Nearest(focus.Dates.From.Time()); ok {
			points = perfchart.Series{p}
		}
	}

	var (
		times                  []time.Time
		benchmarks, portfolios []float64
	)
	for _, p := range points {
		times = append(times, p.Date.Time())
		benchmarks = append(benchmarks, p.Benchmark)
		portfolios = append(portfolios, p.Portfolio)
	}
	if len(times) == 1 {
		// A single point gives an empty x range.
		times = append(times, times[0].Add(perfchart.Day))
		benchmarks = append(benchmarks, benchmarks[0])
		portfolios = append(portfolios, portfolios[0])
	}

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	ch := chart.Chart{
		Title:      title,
		Width:      int(l.Width),
		Height:     int(l.Height),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			ValueFormatter: timeLabel,
		},
		YAxis: chart.YAxis{
			Range:          &chart.ContinuousRange{Min: focus.Values.Min, Max: focus.Values.Max},
			ValueFormatter: valueLabel,
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Benchmark",
				XValues: times,
				YValues: benchmarks,
				Style:   chart.Style{StrokeColor: benchmarkColor, StrokeWidth: 1.5},
			},
			chart.TimeSeries{
				Name:    "Portfolio",
				XValues: times,
				YValues: portfolios,
				Style:   chart.Style{StrokeColor: portfolioColor, StrokeWidth: 1.5},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("could not render png: %w", err)
	}
	return nil
}

func timeLabel(v any) string {
	if f, ok := v.(float64); ok {
		return perfchart.TickLabel(perfchart.DateOf(chart.TimeFromFloat64(f).UTC()))
	}
	return ""
}

func valueLabel(v any) string {
	if f, ok := v.(float64); ok {
		return perfchart.ThousandsLabel(f)
	}
	return ""
}
