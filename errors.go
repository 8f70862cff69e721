package perfchart

import (
	"errors"
	"fmt"
)

// ErrNoData is returned when a source parses but yields no rows.
var ErrNoData = errors.New("no data rows")

// DataLoadError reports a failure to fetch or parse a data source.
//
// It is fatal to rendering: no partial chart is ever produced from a source that
// failed to load.
type DataLoadError struct {
	Source string // file path, URL or "-"
	Line   int    // 1-based line of the offending row, 0 when not row related
	Err    error
}

func (e *DataLoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("cannot load %s: line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("cannot load %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }
