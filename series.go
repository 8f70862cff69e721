package perfchart

import (
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
)

// DataPoint is one day of the chart: the benchmark and the portfolio value.
type DataPoint struct {
	Date      Date    `json:"date"`
	Benchmark float64 `json:"benchmark"`
	Portfolio float64 `json:"portfolio"`
}

// Series is a chronological, immutable sequence of DataPoint.
//
// A Series is produced once by a decoder and never modified afterwards: the
// views hold sub-slices of it.
type Series []DataPoint

// NewSeries returns a Series with points sorted by date.
//
// Points sharing the same date keep their input order.
func NewSeries(points []DataPoint) Series {
	s := slices.Clone(points)
	slices.SortStableFunc(s, func(a, b DataPoint) int { return a.Date.Compare(b.Date) })
	return Series(s)
}

// Len returns the number of points.
func (s Series) Len() int { return len(s) }

// First returns the earliest point.
func (s Series) First() DataPoint { return s[0] }

// Last returns the latest point.
func (s Series) Last() DataPoint { return s[len(s)-1] }

// Extent returns the range of dates covered by the series.
func (s Series) Extent() Range {
	if len(s) == 0 {
		return Range{}
	}
	return Range{From: s[0].Date, To: s[len(s)-1].Date}
}

// Benchmarks returns the benchmark values.
func (s Series) Benchmarks() []float64 {
	v := make([]float64, len(s))
	for i, p := range s {
		v[i] = p.Benchmark
	}
	return v
}

// Portfolios returns the portfolio values.
func (s Series) Portfolios() []float64 {
	v := make([]float64, len(s))
	for i, p := range s {
		v[i] = p.Portfolio
	}
	return v
}

// Times returns the canonical instant of every point.
func (s Series) Times() []time.Time {
	v := make([]time.Time, len(s))
	for i, p := range s {
		v[i] = p.Date.Time()
	}
	return v
}

// Within returns the sub-series of points whose date is in r.
func (s Series) Within(r Range) Series {
	lo := s.bisect(r.From.Time())
	hi := s.bisect(r.To.Add(1).Time())
	return s[lo:hi]
}

// bisect returns the index of the first point not before t.
func (s Series) bisect(t time.Time) int {
	i, _ := slices.BinarySearchFunc(s, t, func(p DataPoint, t time.Time) int {
		return p.Date.Time().Compare(t)
	})
	return i
}

// Nearest returns the point closest to t.
//
// The candidate found by bisection is compared with its left neighbour, and ties
// are resolved in favor of the left one. ok is false for an empty series.
func (s Series) Nearest(t time.Time) (p DataPoint, ok bool) {
	if len(s) == 0 {
		return DataPoint{}, false
	}
	i := s.bisect(t)
	switch {
	case i == 0:
		return s[0], true
	case i == len(s):
		return s[len(s)-1], true
	}
	left, right := s[i-1], s[i]
	if t.Sub(left.Date.Time()) > right.Date.Time().Sub(t) {
		return right, true
	}
	return left, true
}

// extent returns min and max of values, ok is false when values is empty.
func extent(values ...[]float64) (lo, hi float64, ok bool) {
	for _, v := range values {
		if len(v) == 0 {
			continue
		}
		vlo, vhi := floats.Min(v), floats.Max(v)
		if !ok {
			lo, hi, ok = vlo, vhi, true
			continue
		}
		lo, hi = min(lo, vlo), max(hi, vhi)
	}
	return lo, hi, ok
}
