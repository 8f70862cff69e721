package perfchart

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// JSONPaths locates the three columns of a series inside a JSON document.
//
// Each path must select an array; the three arrays are zipped together.
type JSONPaths struct {
	Date      string
	Benchmark string
	Portfolio string
}

// DefaultJSONPaths reads an array of row objects: [{"date":..., "benchmark":..., "total_value":...}].
var DefaultJSONPaths = JSONPaths{
	Date:      "$[*].date",
	Benchmark: "$[*].benchmark",
	Portfolio: "$[*].total_value",
}

// DecodeJSONSeries reads a series from a JSON document.
//
// Values can be JSON numbers or numeric strings. Like DecodeSeries, any malformed
// row aborts the decoding with a *DataLoadError.
func DecodeJSONSeries(r io.Reader, paths JSONPaths) (Series, error) {
	return decodeJSONSeries("-", r, paths)
}

func decodeJSONSeries(source string, r io.Reader, paths JSONPaths) (Series, error) {
	fail := func(row int, err error) (Series, error) {
		return nil, &DataLoadError{Source: source, Line: row, Err: err}
	}

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return fail(0, err)
	}

	dates, err := selectArray(jobj, paths.Date)
	if err != nil {
		return fail(0, err)
	}
	benchmarks, err := selectArray(jobj, paths.Benchmark)
	if err != nil {
		return fail(0, err)
	}
	portfolios, err := selectArray(jobj, paths.Portfolio)
	if err != nil {
		return fail(0, err)
	}
	if len(dates) != len(benchmarks) || len(dates) != len(portfolios) {
		return fail(0, fmt.Errorf("column lengths differ: %d dates, %d benchmarks, %d portfolios", len(dates), len(benchmarks), len(portfolios)))
	}
	if len(dates) == 0 {
		return fail(0, ErrNoData)
	}

	points := make([]DataPoint, len(dates))
	for i := range dates {
		s, ok := dates[i].(string)
		if !ok {
			return fail(i+1, fmt.Errorf("date is not a string: %v", dates[i]))
		}
		p := &points[i]
		if p.Date, err = ParseDate(s); err != nil {
			return fail(i+1, err)
		}
		if p.Benchmark, err = jsonNumber(benchmarks[i]); err != nil {
			return fail(i+1, fmt.Errorf("invalid %s: %w", ColumnBenchmark, err))
		}
		if p.Portfolio, err = jsonNumber(portfolios[i]); err != nil {
			return fail(i+1, fmt.Errorf("invalid %s: %w", ColumnPortfolio, err))
		}
	}
	return NewSeries(points), nil
}

// selectArray evaluates path and returns the selected array.
func selectArray(jobj any, path string) ([]any, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q does not select an array", path)
	}
	return jlist, nil
}

func jsonNumber(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case string:
		return parseValue(x, nil)
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}
