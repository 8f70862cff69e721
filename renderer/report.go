package renderer

import (
	"github.com/etnz/perfchart"
)

// Report is the data of the markdown summary of a chart view.
type Report struct {
	Title  string
	Label  string // displayed date range
	Mode   string
	Preset string // active zoom preset, if any

	// First and last points of the displayed range.
	Initial, Latest perfchart.DataPoint

	Stats perfchart.Statistics // of the whole series

	Snapshot *perfchart.Snapshot // latest positions, optional
	Since    *perfchart.Summary  // whole table, optional
}

// NewReport summarizes the focus view of c. summary is optional.
func NewReport(c *perfchart.Chart, title string, summary *perfchart.Summary) *Report {
	if title == "" {
		title = DefaultTitle
	}
	r := &Report{
		Title: title,
		Label: c.Label(),
		Mode:  c.Mode().String(),
	}
	if p, ok := c.Preset(); ok && c.Mode() == perfchart.Brushed {
		r.Preset = p.String()
	}
	points := c.Series().Within(c.Focus().Dates)
	if len(points) == 0 {
		points = c.Series()
	}
	r.Initial, r.Latest = points.First(), points.Last()
	r.Stats = perfchart.Stats(c.Series())
	if summary != nil {
		latest := summary.Latest
		r.Snapshot = &latest
		r.Since = summary
	}
	return r
}

// PortfolioChange returns the change of the portfolio over the range, in percent.
func (r *Report) PortfolioChange() float64 {
	return perfchart.USD(r.Latest.Portfolio).Percent(perfchart.USD(r.Initial.Portfolio))
}

// BenchmarkChange returns the change of the benchmark over the range, in percent.
func (r *Report) BenchmarkChange() float64 {
	return perfchart.USD(r.Latest.Benchmark).Percent(perfchart.USD(r.Initial.Benchmark))
}

// Excess returns the portfolio change minus the benchmark change, in percentage points.
func (r *Report) Excess() float64 { return r.PortfolioChange() - r.BenchmarkChange() }
