package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/perfchart"
)

// Tick counts of the axes.
const (
	timeTicks  = 10
	valueTicks = 6
	gridTicks  = 5
)

// Geometry of the zoom preset buttons.
const (
	presetWidth  = 28
	presetHeight = 20
	presetGap    = 5
	presetOffset = 40
	zoomBarY     = 55

	tooltipOffset = 10
)

// Options customizes the rendering of a chart.
type Options struct {
	Title string // defaults to "Portfolio Performance"

	// PresetHref returns the link of a zoom preset button. Buttons are not links when nil.
	PresetHref func(perfchart.Preset) string
}

// DefaultTitle is the chart title when none is provided.
const DefaultTitle = "Portfolio Performance"

// Scene is the drawing-surface independent description of a chart.
type Scene struct {
	Width, Height float64
	Title         string
	Label         string // displayed date range

	Focus   FocusScene
	Context ContextScene
	Zoom    ZoomBar
	Tooltip *TooltipScene // nil when hidden
}

// FocusScene is the detailed view.
type FocusScene struct {
	X, Y          float64 // translation
	Width, Height float64
	Benchmark     string // path data
	Portfolio     string // path data
	XTicks        []perfchart.Tick
	YTicks        []perfchart.Tick
	Grid          []float64 // y positions of the horizontal grid lines
}

// ContextScene is the overview strip and its brush.
type ContextScene struct {
	X, Y          float64
	Width, Height float64
	Area          string // path data of the benchmark area
	XTicks        []perfchart.Tick
	Brush         *Extent // nil when there is no selection
}

// Extent is a horizontal interval in pixels.
type Extent struct{ X, Width float64 }

// ZoomBar holds the preset buttons and the range label.
type ZoomBar struct {
	X, Y    float64
	Presets []PresetButton
	LabelX  float64 // anchor (end) of the range label
}

// PresetButton is one zoom preset.
type PresetButton struct {
	Name   string
	X      float64 // left of the button
	TextX  float64 // center of the label
	Width  float64
	Height float64
	Active bool
	Href   string
}

// TooltipScene is the hover marker and its text.
type TooltipScene struct {
	X, YBenchmark, YPortfolio float64
	Height                    float64 // hover line length
	Lines                     []string
	Flip                      bool
	TextX                     float64 // anchor of the text
	Anchor                    string  // "start", or "end" when flipped
}

// NewScene describes the current state of c.
func NewScene(c *perfchart.Chart, opts Options) Scene {
	l := c.Layout()
	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	s := Scene{
		Width:  l.Width,
		Height: l.Height,
		Title:  title,
		Label:  c.Label(),
	}

	fx, fy := c.FocusX(), c.FocusY()
	series := c.Series()
	s.Focus = FocusScene{
		X:         l.Focus.Left,
		Y:         l.Focus.Top,
		Width:     l.FocusWidth(),
		Height:    l.FocusHeight(),
		Benchmark: linePath(series, fx, fy, benchmark),
		Portfolio: linePath(series, fx, fy, portfolio),
		XTicks:    fx.Ticks(timeTicks),
		YTicks:    fy.Ticks(valueTicks),
	}
	for _, v := range fy.Values(gridTicks) {
		s.Focus.Grid = append(s.Focus.Grid, fy.Map(v))
	}

	cx, cy := c.ContextX(), c.ContextY()
	s.Context = ContextScene{
		X:      l.Context.Left,
		Y:      l.Context.Top,
		Width:  l.ContextWidth(),
		Height: l.ContextHeight(),
		Area:   areaPath(series, cx, cy, l.ContextHeight()),
		XTicks: cx.Ticks(timeTicks),
	}
	if brush, ok := c.Brush(); ok {
		x0, x1 := cx.Map(brush.From), cx.Map(brush.To)
		s.Context.Brush = &Extent{X: x0, Width: x1 - x0}
	}

	active, hasActive := c.Preset()
	if c.Mode() == perfchart.FullRange {
		hasActive = false
	}
	s.Zoom = ZoomBar{X: l.Context.Left, Y: zoomBarY, LabelX: l.FocusWidth() - 10}
	for i, p := range perfchart.Presets {
		x := float64((presetWidth+presetGap)*i + presetOffset)
		b := PresetButton{
			Name:   p.String(),
			X:      x,
			TextX:  x + presetWidth/2,
			Width:  presetWidth,
			Height: presetHeight,
			Active: hasActive && p == active,
		}
		if opts.PresetHref != nil {
			b.Href = opts.PresetHref(p)
		}
		s.Zoom.Presets = append(s.Zoom.Presets, b)
	}

	if tip := c.Tooltip(); tip.Visible {
		s.Tooltip = &TooltipScene{
			X:          tip.X,
			YBenchmark: tip.YBenchmark,
			YPortfolio: tip.YPortfolio,
			Height:     l.FocusHeight(),
			Lines:      tip.Lines(),
			Flip:       tip.Flip,
			TextX:      tip.X + tooltipOffset,
			Anchor:     "start",
		}
		if tip.Flip {
			s.Tooltip.TextX = tip.X - tooltipOffset
			s.Tooltip.Anchor = "end"
		}
	}
	return s
}

func benchmark(p perfchart.DataPoint) float64 { return p.Benchmark }
func portfolio(p perfchart.DataPoint) float64 { return p.Portfolio }

// linePath returns the SVG path data of one value of the series.
func linePath(s perfchart.Series, x perfchart.TimeScale, y perfchart.LinearScale, value func(perfchart.DataPoint) float64) string {
	var b strings.Builder
	for i, p := range s {
		cmd := 'L'
		if i == 0 {
			cmd = 'M'
		}
		fmt.Fprintf(&b, "%c%s,%s", cmd, coord(x.Map(p.Date)), coord(y.Map(value(p))))
	}
	return b.String()
}

// areaPath returns the SVG path data of the benchmark area down to base.
func areaPath(s perfchart.Series, x perfchart.TimeScale, y perfchart.LinearScale, base float64) string {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(linePath(s, x, y, benchmark))
	fmt.Fprintf(&b, "L%s,%sL%s,%sZ",
		coord(x.Map(s.Last().Date)), coord(base),
		coord(x.Map(s.First().Date)), coord(base))
	return b.String()
}

// coord formats a coordinate with at most two decimals.
func coord(v float64) string {
	s := strings.TrimRight(fmt.Sprintf("%.2f", v), "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
