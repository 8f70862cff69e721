package perfchart

import (
	"math"
	"strconv"
	"time"
)

// Tick is a labelled position on an axis.
type Tick struct {
	Pos   float64 // pixel position
	Label string
}

// linearStep returns a "nice" step (1, 2 or 5 times a power of ten) splitting span in about n intervals.
func linearStep(span float64, n int) float64 {
	if span <= 0 || n <= 0 {
		return 0
	}
	step := math.Pow(10, math.Floor(math.Log10(span/float64(n))))
	switch err := float64(n) / span * step; {
	case err <= .15:
		step *= 10
	case err <= .35:
		step *= 5
	case err <= .75:
		step *= 2
	}
	return step
}

// Values returns about n round values inside the domain, ascending.
func (s LinearScale) Values(n int) []float64 {
	lo, hi := s.Domain.Min, s.Domain.Max
	if lo > hi {
		lo, hi = hi, lo
	}
	step := linearStep(hi-lo, n)
	if step == 0 {
		return nil
	}
	first := math.Ceil(lo / step)
	last := math.Floor(hi / step)
	values := make([]float64, 0, int(last-first)+1)
	for i := first; i <= last; i++ {
		values = append(values, i*step)
	}
	return values
}

// Ticks returns about n ticks labelled in thousands, e.g. "12k".
func (s LinearScale) Ticks(n int) []Tick {
	values := s.Values(n)
	ticks := make([]Tick, len(values))
	for i, v := range values {
		ticks[i] = Tick{Pos: s.Map(v), Label: ThousandsLabel(v)}
	}
	return ticks
}

// ThousandsLabel formats v as an integer number of thousands, truncated toward zero.
func ThousandsLabel(v float64) string {
	return strconv.Itoa(int(v/1000)) + "k"
}

// interval is a calendar tick interval.
type interval struct {
	approx time.Duration
	unit   Period
	step   int
}

var tickIntervals = []interval{
	{Day, Daily, 1},
	{2 * Day, Daily, 2},
	{7 * Day, Weekly, 1},
	{30 * Day, Monthly, 1},
	{90 * Day, Monthly, 3},
	{365 * Day, Yearly, 1},
}

// tickInterval picks the interval that splits span closest to n intervals.
func tickInterval(span time.Duration, n int) interval {
	target := span / time.Duration(n)
	i := 0
	for i < len(tickIntervals) && tickIntervals[i].approx <= target {
		i++
	}
	switch {
	case i == 0:
		return tickIntervals[0]
	case i == len(tickIntervals):
		years := float64(span) / float64(365*Day)
		step := max(1, int(math.Round(linearStep(years, n))))
		return interval{365 * Day, Yearly, step}
	}
	lo, hi := tickIntervals[i-1], tickIntervals[i]
	if float64(target)/float64(lo.approx) < float64(hi.approx)/float64(target) {
		return lo
	}
	return hi
}

// contains reports whether d is a boundary of the interval.
func (iv interval) contains(d Date) bool {
	switch iv.unit {
	case Daily:
		return (d.Day()-1)%iv.step == 0
	case Weekly:
		return d.Weekday() == time.Sunday
	case Monthly:
		return d.Day() == 1 && (int(d.Month())-1)%iv.step == 0
	default:
		return d.Day() == 1 && d.Month() == time.January && d.Year()%iv.step == 0
	}
}

// Dates returns about n calendar-aligned dates inside the domain.
func (s TimeScale) Dates(n int) []Date {
	span := s.Domain.To.Time().Sub(s.Domain.From.Time())
	if span <= 0 {
		return []Date{s.Domain.From}
	}
	iv := tickInterval(span, n)
	var dates []Date
	for d := range s.Domain.Dates() {
		if iv.contains(d) {
			dates = append(dates, d)
		}
	}
	return dates
}

// Ticks returns about n calendar ticks with their labels.
func (s TimeScale) Ticks(n int) []Tick {
	dates := s.Dates(n)
	ticks := make([]Tick, len(dates))
	for i, d := range dates {
		ticks[i] = Tick{Pos: s.Map(d), Label: TickLabel(d)}
	}
	return ticks
}

// TickLabel returns the axis label of a date.
//
// Years are labelled on January 1st, months on their first day, always with the
// abbreviated month name. Sundays read "Jan 08", other days "Mon 09".
func TickLabel(d Date) string {
	switch {
	case d.Day() != 1 && d.Weekday() != time.Sunday:
		return d.Format("Mon 02")
	case d.Day() != 1:
		return d.Format("Jan 02")
	case d.Month() != time.January:
		return d.Format("Jan")
	default:
		return d.Format("2006")
	}
}
