package perfchart

// Mode is the state of the focus view.
type Mode int

const (
	// FullRange shows the whole dataset: no brush selection is active.
	FullRange Mode = iota
	// Brushed shows the brush selection.
	Brushed
)

func (m Mode) String() string {
	if m == Brushed {
		return "brushed"
	}
	return "full-range"
}

// Chart owns the state of a focus+context chart: the dataset, the two view
// states, the brush selection and the tooltip.
//
// A Chart is not safe for concurrent use. Every mutation happens in one of the
// input handlers (OnBrush, SelectPreset, OnPointerMove, OnPointerLeave) which
// are expected to be called from a single goroutine, the way a UI event loop
// dispatches them.
type Chart struct {
	layout  Layout
	series  Series
	initial ViewState // context view, and reset state of the focus view
	focus   ViewState
	brush   Range
	preset  Preset // last selected preset, valid while picked is true
	picked  bool
	tooltip Tooltip
}

// NewChart returns a chart over s, in FullRange mode, laid out with DefaultLayout.
func NewChart(s Series) (*Chart, error) { return NewChartWithLayout(s, DefaultLayout) }

// NewChartWithLayout returns a chart over s using the layout l.
func NewChartWithLayout(s Series, l Layout) (*Chart, error) {
	if len(s) == 0 {
		return nil, ErrNoData
	}
	initial := InitialRanges(s)
	return &Chart{
		layout:  l,
		series:  s,
		initial: initial,
		focus:   initial,
	}, nil
}

// Layout returns the geometry of the chart.
func (c *Chart) Layout() Layout { return c.layout }

// Series returns the whole data set, sorted by date.
func (c *Chart) Series() Series { return c.series }

// Context returns the state of the context view. It never changes.
func (c *Chart) Context() ViewState { return c.initial }

// Focus returns the state of the focus view.
func (c *Chart) Focus() ViewState { return c.focus }

// Brush returns the current brush selection, and false if there is none.
func (c *Chart) Brush() (Range, bool) { return c.brush, !c.brush.IsEmpty() }

// Mode returns the state of the focus view.
func (c *Chart) Mode() Mode {
	if c.brush.IsEmpty() {
		return FullRange
	}
	return Brushed
}

// Label returns the displayed date range, e.g. "Dec 24, 2023 – Dec 31, 2023".
func (c *Chart) Label() string { return c.focus.Dates.Label() }

// Preset returns the active zoom preset, if any.
//
// It is the last selected preset, or the one matching a brush selection made
// directly. The full range is All.
func (c *Chart) Preset() (Preset, bool) {
	switch {
	case c.Mode() == FullRange:
		return All, true
	case c.picked:
		return c.preset, true
	}
	return MatchPreset(c.brush, c.initial.Dates)
}

// OnBrush applies a brush selection.
//
// The selection is clamped to the dataset extent. An empty selection returns the
// focus view to the full range.
func (c *Chart) OnBrush(selection Range) {
	if !selection.IsEmpty() {
		selection = selection.Clamp(c.initial.Dates)
	}
	if selection.IsEmpty() {
		selection = Range{}
	}
	c.brush = selection
	c.picked = false
	c.focus = FocusRanges(c.series, c.initial, selection)
	if c.tooltip.Visible {
		c.tooltip = c.tooltipAt(c.tooltip.Point)
	}
}

// ClearBrush removes the brush selection.
func (c *Chart) ClearBrush() { c.OnBrush(Range{}) }

// SelectPreset applies the preset's date range as the brush selection, and returns it.
func (c *Chart) SelectPreset(p Preset) Range {
	r := PresetRange(p, c.initial.Dates)
	c.OnBrush(r)
	c.preset, c.picked = p, true
	return r
}

// FocusX returns the horizontal scale of the focus view.
func (c *Chart) FocusX() TimeScale {
	return TimeScale{Domain: c.focus.Dates, From: 0, To: c.layout.FocusWidth()}
}

// FocusY returns the vertical scale of the focus view.
func (c *Chart) FocusY() LinearScale {
	return LinearScale{Domain: c.focus.Values, From: c.layout.FocusHeight(), To: 0}
}

// ContextX returns the horizontal scale of the context view.
func (c *Chart) ContextX() TimeScale {
	return TimeScale{Domain: c.initial.Dates, From: 0, To: c.layout.ContextWidth()}
}

// ContextY returns the vertical scale of the context view.
func (c *Chart) ContextY() LinearScale {
	return LinearScale{Domain: c.initial.Values, From: c.layout.ContextHeight(), To: 0}
}

// Tooltip returns the current tooltip.
func (c *Chart) Tooltip() Tooltip { return c.tooltip }

// OnPointerMove moves the tooltip to the point nearest to the pixel position x
// of the focus view, and returns it.
func (c *Chart) OnPointerMove(x float64) Tooltip {
	p, ok := c.series.Nearest(c.FocusX().Invert(x))
	if !ok {
		c.tooltip = Tooltip{}
		return c.tooltip
	}
	c.tooltip = c.tooltipAt(p)
	return c.tooltip
}

// OnPointerLeave hides the tooltip.
func (c *Chart) OnPointerLeave() { c.tooltip.Visible = false }

func (c *Chart) tooltipAt(p DataPoint) Tooltip {
	x, y := c.FocusX(), c.FocusY()
	px := x.Map(p.Date)
	return Tooltip{
		Visible:    true,
		Point:      p,
		X:          px,
		YBenchmark: y.Map(p.Benchmark),
		YPortfolio: y.Map(p.Portfolio),
		Flip:       px >= c.layout.FocusWidth()/2,
	}
}
