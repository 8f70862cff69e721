package perfchart

import (
	"encoding/json"
	"iter"
)

// Range represents a range of dates, boundaries included.
//
// The zero Range is empty, as is any range whose boundaries are equal: a brush
// selection that collapsed to a single instant selects nothing.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// IsEmpty reports whether the range selects nothing.
func (r Range) IsEmpty() bool { return r.From == r.To }

// Clamp returns r restricted to the bounds of limit.
//
// A range entirely outside limit collapses on the nearest boundary, and is therefore empty.
func (r Range) Clamp(limit Range) Range {
	from := MinDate(MaxDate(r.From, limit.From), limit.To)
	to := MaxDate(MinDate(r.To, limit.To), limit.From)
	return Range{From: from, To: to}
}

// Days returns the number of days between From and To.
func (r Range) Days() int { return int(r.To.Time().Sub(r.From.Time()) / Day) }

// Dates returns an iterator that yields each date within the range, inclusive.
func (r Range) Dates() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Label formats the range for humans, e.g. "Dec 24, 2023 – Dec 31, 2023".
func (r Range) Label() string { return r.From.Label() + " – " + r.To.Label() }

// String returns the ISO representation "2023-12-24..2023-12-31".
func (r Range) String() string { return r.From.String() + ".." + r.To.String() }

func (r Range) MarshalJSON() ([]byte, error) {
	if r == (Range{}) {
		return []byte("null"), nil
	}
	return json.Marshal([2]Date{r.From, r.To})
}
