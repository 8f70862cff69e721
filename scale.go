package perfchart

import (
	"math"
	"time"
)

// TimeScale maps dates of Domain onto the pixel interval [From, To].
//
// A degenerate domain maps everything to From, and inverts to the domain start.
type TimeScale struct {
	Domain   Range
	From, To float64
}

// Map returns the pixel position of the day d.
func (s TimeScale) Map(d Date) float64 { return s.MapTime(d.Time()) }

// MapTime returns the pixel position of the instant t.
func (s TimeScale) MapTime(t time.Time) float64 {
	start := s.Domain.From.Time()
	span := s.Domain.To.Time().Sub(start)
	if span == 0 {
		return s.From
	}
	return s.From + float64(t.Sub(start))/float64(span)*(s.To-s.From)
}

// Invert returns the instant at pixel position px. Positions outside the pixel
// interval are clamped to it, NaN inverts to the domain start.
func (s TimeScale) Invert(px float64) time.Time {
	start := s.Domain.From.Time()
	span := s.Domain.To.Time().Sub(start)
	if span == 0 || s.To == s.From || math.IsNaN(px) {
		return start
	}
	ratio := (px - s.From) / (s.To - s.From)
	ratio = max(0, min(1, ratio))
	return start.Add(time.Duration(ratio * float64(span)))
}

// LinearScale maps values of Domain onto the pixel interval [From, To].
//
// Vertical scales run from the bottom of the view (From) to its top (To).
type LinearScale struct {
	Domain   ValueRange
	From, To float64
}

// Map returns the pixel position of v.
func (s LinearScale) Map(v float64) float64 {
	span := s.Domain.Max - s.Domain.Min
	if span == 0 {
		return s.From
	}
	return s.From + (v-s.Domain.Min)/span*(s.To-s.From)
}

// Invert returns the value at pixel position px.
func (s LinearScale) Invert(px float64) float64 {
	if s.To == s.From {
		return s.Domain.Min
	}
	return s.Domain.Min + (px-s.From)/(s.To-s.From)*(s.Domain.Max-s.Domain.Min)
}
