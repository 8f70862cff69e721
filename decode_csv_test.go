package perfchart

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeSeries(t *testing.T) {
	in := `date,cash,total_value,benchmark
2023-01-02,10.5,1000.25,990
2023-01-01,10.5,1000,1000
2023-01-03,10.5,1010.75,1005.5
`
	s, err := DecodeSeries(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeSeries() error = %v", err)
	}
	want := Series{
		{Date: NewDate(2023, 1, 1), Benchmark: 1000, Portfolio: 1000},
		{Date: NewDate(2023, 1, 2), Benchmark: 990, Portfolio: 1000.25},
		{Date: NewDate(2023, 1, 3), Benchmark: 1005.5, Portfolio: 1010.75},
	}
	if len(s) != len(want) {
		t.Fatalf("DecodeSeries() = %v, want %v", s, want)
	}
	for i := range want {
		if s[i] != want[i] {
			t.Errorf("DecodeSeries()[%d] = %v, want %v", i, s[i], want[i])
		}
	}
}

func TestDecodeSeries_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		noData bool
		line   int
	}{
		{"empty input", "", true, 0},
		{"header only", "date,benchmark,total_value\n", true, 0},
		{"missing column", "date,benchmark\n2023-01-01,1\n", false, 1},
		{"malformed date", "date,benchmark,total_value\n2023-01-01,1,1\n01/02/2023,1,1\n", false, 3},
		{"malformed value", "date,benchmark,total_value\n2023-01-01,one,1\n", false, 2},
		{"not a finite value", "date,benchmark,total_value\n2023-01-01,1,NaN\n", false, 2},
		{"short row", "date,benchmark,total_value\n2023-01-01,1\n", false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSeries(strings.NewReader(tt.input))
			var loadErr *DataLoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("DecodeSeries() error = %v, want a *DataLoadError", err)
			}
			if got := errors.Is(err, ErrNoData); got != tt.noData {
				t.Errorf("errors.Is(%v, ErrNoData) = %v, want %v", err, got, tt.noData)
			}
			if loadErr.Line != tt.line {
				t.Errorf("DataLoadError.Line = %d, want %d", loadErr.Line, tt.line)
			}
		})
	}
}
