package perfchart

// Margin is the space around a view, in logical units.
type Margin struct{ Top, Right, Bottom, Left float64 }

// Layout positions the focus and context views on the drawing surface.
//
// Both views share the same horizontal extent; the context view is a thin strip
// laid out below the focus view.
type Layout struct {
	Width, Height float64
	Focus         Margin
	Context       Margin
}

// DefaultLayout is the 873x350 surface of the dashboard.
var DefaultLayout = Layout{
	Width:   873,
	Height:  350,
	Focus:   Margin{Top: 75, Right: 10, Bottom: 90, Left: 35},
	Context: Margin{Top: 290, Right: 10, Bottom: 20, Left: 35},
}

// FocusWidth returns the drawable width of the focus view.
func (l Layout) FocusWidth() float64 { return l.Width - l.Focus.Left - l.Focus.Right }

// FocusHeight returns the drawable height of the focus view.
func (l Layout) FocusHeight() float64 { return l.Height - l.Focus.Top - l.Focus.Bottom }

// ContextWidth returns the drawable width of the context view.
func (l Layout) ContextWidth() float64 { return l.Width - l.Context.Left - l.Context.Right }

// ContextHeight returns the drawable height of the context view.
func (l Layout) ContextHeight() float64 { return l.Height - l.Context.Top - l.Context.Bottom }
