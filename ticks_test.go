package perfchart

import (
	"math"
	"slices"
	"testing"
)

func TestTickLabel(t *testing.T) {
	tests := []struct {
		date Date
		want string
	}{
		{NewDate(2023, 1, 1), "2023"},
		{NewDate(2023, 2, 1), "Feb"},
		{NewDate(2023, 9, 1), "Sep"},
		{NewDate(2023, 1, 8), "Jan 08"}, // a Sunday
		{NewDate(2023, 1, 9), "Mon 09"},
	}
	for _, tt := range tests {
		if got := TickLabel(tt.date); got != tt.want {
			t.Errorf("TickLabel(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestThousandsLabel(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{12500, "12k"},
		{999, "0k"},
		{-1500, "-1k"},
		{500000, "500k"},
	}
	for _, tt := range tests {
		if got := ThousandsLabel(tt.v); got != tt.want {
			t.Errorf("ThousandsLabel(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestLinearScale_Values(t *testing.T) {
	s := LinearScale{Domain: ValueRange{Min: 0, Max: 100}, From: 100, To: 0}
	want := []float64{0, 20, 40, 60, 80, 100}
	if got := s.Values(5); !slices.Equal(got, want) {
		t.Errorf("Values(5) = %v, want %v", got, want)
	}
	ticks := s.Ticks(5)
	if ticks[0].Pos != 100 || ticks[len(ticks)-1].Pos != 0 {
		t.Errorf("Ticks(5) positions = %v, want from 100 to 0", ticks)
	}
}

func TestTimeScale_MonthlyTicks(t *testing.T) {
	s := TimeScale{Domain: NewRange(NewDate(2023, 1, 1), NewDate(2023, 12, 31)), From: 0, To: 828}
	ticks := s.Ticks(10)
	if len(ticks) != 12 {
		t.Fatalf("Ticks(10) = %v, want 12 monthly ticks", ticks)
	}
	if ticks[0].Label != "2023" || ticks[0].Pos != 0 {
		t.Errorf("first tick = %v, want 2023 at 0", ticks[0])
	}
	for _, tick := range ticks[1:] {
		if len(tick.Label) != 3 {
			t.Errorf("tick %v, want an abbreviated month name", tick)
		}
	}
}

func TestTimeScale_WeeklyTicks(t *testing.T) {
	s := TimeScale{Domain: NewRange(NewDate(2023, 1, 1), NewDate(2023, 3, 1)), From: 0, To: 828}
	for _, d := range s.Dates(10) {
		if d.Weekday() != 0 {
			t.Errorf("weekly tick on %v (%v), want a Sunday", d, d.Weekday())
		}
	}
}

func TestTimeScale_Invert(t *testing.T) {
	s := TimeScale{Domain: NewRange(NewDate(2023, 1, 1), NewDate(2023, 1, 11)), From: 0, To: 100}
	tests := []struct {
		px   float64
		want Date
	}{
		{50, NewDate(2023, 1, 6)},
		{0, NewDate(2023, 1, 1)},
		{100, NewDate(2023, 1, 11)},
		{-1e7, NewDate(2023, 1, 1)},
		{1e7, NewDate(2023, 1, 11)},
		{math.Inf(1), NewDate(2023, 1, 11)},
		{math.Inf(-1), NewDate(2023, 1, 1)},
		{math.NaN(), NewDate(2023, 1, 1)},
	}
	for _, tt := range tests {
		if got := s.Invert(tt.px); !got.Equal(tt.want.Time()) {
			t.Errorf("Invert(%v) = %v, want %v", tt.px, got, tt.want)
		}
	}
	if got := s.Map(NewDate(2023, 1, 6)); got != 50 {
		t.Errorf("Map(2023-01-06) = %v, want 50", got)
	}
}
