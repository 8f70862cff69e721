package perfchart

import (
	"fmt"
	"strings"
)

// Preset is a named shortcut for a common date range, anchored at the latest date.
type Preset int

const (
	OneWeek Preset = iota
	OneMonth
	ThreeMonths
	SixMonths
	OneYear
	All
)

// Presets lists the presets in display order.
var Presets = []Preset{OneWeek, OneMonth, ThreeMonths, SixMonths, OneYear, All}

func (p Preset) String() string {
	switch p {
	case OneWeek:
		return "1w"
	case OneMonth:
		return "1m"
	case ThreeMonths:
		return "3m"
	case SixMonths:
		return "6m"
	case OneYear:
		return "1y"
	case All:
		return "All"
	default:
		return fmt.Sprintf("Preset(%d)", int(p))
	}
}

// ParsePreset parses a preset token, case insensitive.
func ParsePreset(s string) (Preset, error) {
	for _, p := range Presets {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return All, fmt.Errorf("unknown preset %q, want one of 1w, 1m, 3m, 6m, 1y, All", s)
}

// start returns the first day of the preset window ending on end.
func (p Preset) start(end Date) Date {
	switch p {
	case OneWeek:
		return end.Add(-7)
	case OneMonth:
		return end.AddMonth(-1)
	case ThreeMonths:
		return end.AddMonth(-3)
	case SixMonths:
		return end.AddMonth(-6)
	case OneYear:
		return end.AddYear(-1)
	default:
		return Date{}
	}
}

// PresetRange returns the date range selected by p over extent.
//
// The range ends on the latest date of extent and starts the preset's offset
// before, clamped to the earliest date. All selects extent itself.
func PresetRange(p Preset, extent Range) Range {
	if p == All {
		return extent
	}
	return Range{From: MaxDate(p.start(extent.To), extent.From), To: extent.To}
}

// MatchPreset returns the preset that selects exactly r over extent, if any.
//
// When several presets clamp to the same range, the shortest one wins.
func MatchPreset(r Range, extent Range) (Preset, bool) {
	for _, p := range Presets {
		if PresetRange(p, extent) == r {
			return p, true
		}
	}
	return All, false
}
