package perfchart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Column names of the portfolio table.
const (
	ColumnDate      = "date"
	ColumnBenchmark = "benchmark"
	ColumnPortfolio = "total_value"
	ColumnCash      = "cash"
)

// header maps column names to their index.
type header map[string]int

func newHeader(names []string) header {
	h := make(header, len(names))
	for i, n := range names {
		h[strings.TrimSpace(n)] = i
	}
	return h
}

// require returns the indexes of the given columns, or an error naming the first missing one.
func (h header) require(names ...string) ([]int, error) {
	idx := make([]int, len(names))
	for i, n := range names {
		j, ok := h[n]
		if !ok {
			return nil, fmt.Errorf("missing column %q", n)
		}
		idx[i] = j
	}
	return idx, nil
}

// DecodeSeries reads a portfolio table in CSV format.
//
// The table must have the columns date, benchmark and total_value, other columns
// are ignored. Any malformed row aborts the decoding: the returned error is a
// *DataLoadError. A table without rows is an error wrapping ErrNoData.
func DecodeSeries(r io.Reader) (Series, error) {
	return decodeSeries("-", r)
}

func decodeSeries(source string, r io.Reader) (Series, error) {
	fail := func(line int, err error) (Series, error) {
		return nil, &DataLoadError{Source: source, Line: line, Err: err}
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	names, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return fail(0, ErrNoData)
	}
	if err != nil {
		return fail(1, err)
	}
	idx, err := newHeader(names).require(ColumnDate, ColumnBenchmark, ColumnPortfolio)
	if err != nil {
		return fail(1, err)
	}

	var points []DataPoint
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fail(line, err)
		}
		p, err := parsePoint(rec, idx[0], idx[1], idx[2])
		if err != nil {
			return fail(line, err)
		}
		points = append(points, p)
	}
	if len(points) == 0 {
		return fail(0, ErrNoData)
	}
	return NewSeries(points), nil
}

func parsePoint(rec []string, date, benchmark, portfolio int) (DataPoint, error) {
	field := func(i int) (string, error) {
		if i >= len(rec) {
			return "", fmt.Errorf("expected at least %d fields, got %d", i+1, len(rec))
		}
		return strings.TrimSpace(rec[i]), nil
	}
	var p DataPoint
	s, err := field(date)
	if err != nil {
		return p, err
	}
	if p.Date, err = ParseDate(s); err != nil {
		return p, err
	}
	if p.Benchmark, err = parseValue(field(benchmark)); err != nil {
		return p, fmt.Errorf("invalid %s: %w", ColumnBenchmark, err)
	}
	if p.Portfolio, err = parseValue(field(portfolio)); err != nil {
		return p, fmt.Errorf("invalid %s: %w", ColumnPortfolio, err)
	}
	return p, nil
}

func parseValue(s string, err error) (float64, error) {
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number %q", s)
	}
	return v, nil
}
