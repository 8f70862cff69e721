package perfchart

// Tooltip is the hover marker of the focus view.
type Tooltip struct {
	Visible bool      `json:"visible"`
	Point   DataPoint `json:"point"`

	// Positions in focus view coordinates.
	X          float64 `json:"x"`
	YBenchmark float64 `json:"y_benchmark"`
	YPortfolio float64 `json:"y_portfolio"`

	// Flip is true when the text goes on the left of the marker, for points on the right half.
	Flip bool `json:"flip"`
}

// Title returns the first line of the tooltip text.
func (t Tooltip) Title() string { return t.Point.Date.Label() + ":" }

// Portfolio returns the formatted portfolio value.
func (t Tooltip) Portfolio() string { return FormatUSD(t.Point.Portfolio) }

// Benchmark returns the formatted benchmark value.
func (t Tooltip) Benchmark() string { return FormatUSD(t.Point.Benchmark) }

// Lines returns the tooltip text.
func (t Tooltip) Lines() []string {
	return []string{
		t.Title(),
		"Portfolio: " + t.Portfolio(),
		"Benchmark: " + t.Benchmark(),
	}
}
