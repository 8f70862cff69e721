package perfchart

import "fmt"

// Padding is the factor applied on both ends of a value range.
const Padding = 1.03

// ValueRange is the [Min, Max] interval displayed on the value axis.
type ValueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Pad widens v by Padding on both ends.
//
// The factor is applied away from zero on the low end and towards it for
// negative maxima, so that Min only decreases and Max only increases.
func (v ValueRange) Pad() ValueRange {
	lo, hi := v.Min/Padding, v.Max*Padding
	if v.Min < 0 {
		lo = v.Min * Padding
	}
	if v.Max < 0 {
		hi = v.Max / Padding
	}
	return ValueRange{Min: lo, Max: hi}
}

func (v ValueRange) String() string { return fmt.Sprintf("[%.2f, %.2f]", v.Min, v.Max) }

// ViewState is what a view displays: a date range and a value range.
type ViewState struct {
	Dates  Range      `json:"dates"`
	Values ValueRange `json:"values"`
}

// InitialRanges returns the view state of the full dataset.
//
// The date range is the extent of the series. The value range spans both the
// benchmark and the portfolio, padded. It is computed once and serves both as
// the context view state and as the reset state of the focus view.
func InitialRanges(s Series) ViewState {
	lo, hi, _ := extent(s.Benchmarks(), s.Portfolios())
	return ViewState{
		Dates:  s.Extent(),
		Values: ValueRange{Min: lo, Max: hi}.Pad(),
	}
}

// FocusRanges returns the focus view state for a brush selection.
//
// An empty selection restores initial. Otherwise the date range is the
// selection and the value range is padded from the benchmark values inside it:
// the portfolio does not take part in autoscaling. A selection that contains no
// point keeps the initial value range.
func FocusRanges(s Series, initial ViewState, selection Range) ViewState {
	if selection.IsEmpty() {
		return initial
	}
	focus := ViewState{Dates: selection, Values: initial.Values}
	lo, hi, ok := extent(s.Within(selection).Benchmarks())
	if ok {
		focus.Values = ValueRange{Min: lo, Max: hi}.Pad()
	}
	return focus
}
