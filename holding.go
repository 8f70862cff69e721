package perfchart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Suffixes of the per-security columns of the portfolio table.
const (
	suffixShare = "_share"
	suffixClose = "_close"
)

// Holding is the position in one security.
type Holding struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name,omitempty"`
	Shares float64 `json:"shares"`
	Price  float64 `json:"price"` // closing price
}

// Value returns the market value of the position.
func (h Holding) Value() float64 { return h.Shares * h.Price }

// Snapshot is one row of the portfolio table: every position, the cash and the totals.
type Snapshot struct {
	Date      Date      `json:"date"`
	Holdings  []Holding `json:"holdings"`
	Cash      float64   `json:"cash"`
	Total     float64   `json:"total_value"`
	Benchmark float64   `json:"benchmark"`
}

// Summary compares the latest snapshot with the initial one.
type Summary struct {
	Initial Snapshot `json:"initial"`
	Latest  Snapshot `json:"latest"`
}

// Change returns the relative change of the total value since the initial snapshot, in percent.
func (s Summary) Change() float64 { return USD(s.Latest.Total).Percent(USD(s.Initial.Total)) }

// BenchmarkChange returns the relative change of the benchmark since the initial snapshot, in percent.
func (s Summary) BenchmarkChange() float64 {
	return USD(s.Latest.Benchmark).Percent(USD(s.Initial.Benchmark))
}

// DecodeSummary reads the wide portfolio table and returns its first and last rows.
//
// Securities are discovered from the "<SYMBOL>_share" columns. names maps
// symbols to their description, it can be nil.
func DecodeSummary(r io.Reader, names map[string]string) (Summary, error) {
	fail := func(line int, err error) (Summary, error) {
		return Summary{}, &DataLoadError{Source: "-", Line: line, Err: err}
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return fail(0, ErrNoData)
	}
	if err != nil {
		return fail(1, err)
	}
	h := newHeader(head)
	idx, err := h.require(ColumnDate, ColumnCash, ColumnPortfolio, ColumnBenchmark)
	if err != nil {
		return fail(1, err)
	}
	symbols := symbolsOf(head)
	for _, sym := range symbols {
		if _, err := h.require(sym+suffixClose); err != nil {
			return fail(1, err)
		}
	}

	var s Summary
	rows := 0
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fail(line, err)
		}
		snap, err := parseSnapshot(rec, h, idx, symbols, names)
		if err != nil {
			return fail(line, err)
		}
		if rows == 0 {
			s.Initial = snap
		}
		s.Latest = snap
		rows++
	}
	if rows == 0 {
		return fail(0, ErrNoData)
	}
	return s, nil
}

// symbolsOf returns the securities of the table, in column order.
func symbolsOf(head []string) []string {
	var symbols []string
	for _, name := range head {
		name = strings.TrimSpace(name)
		if sym, ok := strings.CutSuffix(name, suffixShare); ok && sym != "" && !slices.Contains(symbols, sym) {
			symbols = append(symbols, sym)
		}
	}
	return symbols
}

func parseSnapshot(rec []string, h header, idx []int, symbols []string, names map[string]string) (Snapshot, error) {
	value := func(i int) (float64, error) {
		if i >= len(rec) {
			return 0, fmt.Errorf("expected at least %d fields, got %d", i+1, len(rec))
		}
		return parseValue(strings.TrimSpace(rec[i]), nil)
	}
	var snap Snapshot
	if idx[0] >= len(rec) {
		return snap, fmt.Errorf("missing date")
	}
	var err error
	if snap.Date, err = ParseDate(strings.TrimSpace(rec[idx[0]])); err != nil {
		return snap, err
	}
	if snap.Cash, err = value(idx[1]); err != nil {
		return snap, fmt.Errorf("invalid %s: %w", ColumnCash, err)
	}
	if snap.Total, err = value(idx[2]); err != nil {
		return snap, fmt.Errorf("invalid %s: %w", ColumnPortfolio, err)
	}
	if snap.Benchmark, err = value(idx[3]); err != nil {
		return snap, fmt.Errorf("invalid %s: %w", ColumnBenchmark, err)
	}
	for _, sym := range symbols {
		hd := Holding{Symbol: sym, Name: names[sym]}
		if hd.Shares, err = value(h[sym+suffixShare]); err != nil {
			return snap, fmt.Errorf("invalid %s%s: %w", sym, suffixShare, err)
		}
		if hd.Price, err = value(h[sym+suffixClose]); err != nil {
			return snap, fmt.Errorf("invalid %s%s: %w", sym, suffixClose, err)
		}
		snap.Holdings = append(snap.Holdings, hd)
	}
	return snap, nil
}
