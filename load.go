package perfchart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"strings"
)

// Loader fetches and decodes data sources.
//
// A source is a local file path, "-" for the standard input, or an http(s) URL.
// Sources ending in ".json" are decoded with DecodeJSONSeries, all others as CSV.
// There is no retry: a failure is reported once and the caller renders nothing.
type Loader struct {
	Client    *http.Client // defaults to http.DefaultClient
	JSONPaths JSONPaths    // defaults to DefaultJSONPaths
	Stdin     io.Reader    // defaults to os.Stdin
}

// Load fetches and decodes source with a default Loader.
func Load(ctx context.Context, source string) (Series, error) {
	return new(Loader).Load(ctx, source)
}

// Load fetches and decodes a series.
func (l *Loader) Load(ctx context.Context, source string) (Series, error) {
	rc, err := l.Open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return l.Decode(source, rc)
}

// Decode decodes the content of source, already fetched.
func (l *Loader) Decode(source string, r io.Reader) (Series, error) {
	if isJSON(source) {
		paths := l.JSONPaths
		if paths == (JSONPaths{}) {
			paths = DefaultJSONPaths
		}
		return decodeJSONSeries(source, r, paths)
	}
	return decodeSeries(source, r)
}

// Trades fetches and decodes the trade history table.
func (l *Loader) Trades(ctx context.Context, source string) ([]Trade, error) {
	rc, err := l.Open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	trades, err := DecodeTrades(rc)
	return trades, withSource(err, source)
}

// Descriptions fetches the names of the securities, a JSON object mapping symbols to names.
func (l *Loader) Descriptions(ctx context.Context, source string) (map[string]string, error) {
	rc, err := l.Open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	var names map[string]string
	if err := json.NewDecoder(rc).Decode(&names); err != nil {
		return nil, &DataLoadError{Source: source, Err: err}
	}
	return names, nil
}

// Open returns the raw content of source. Errors are *DataLoadError.
func (l *Loader) Open(ctx context.Context, source string) (io.ReadCloser, error) {
	fail := func(err error) (io.ReadCloser, error) {
		return nil, &DataLoadError{Source: source, Err: err}
	}
	switch {
	case source == "":
		return fail(fmt.Errorf("no source"))
	case source == "-":
		in := l.Stdin
		if in == nil {
			in = os.Stdin
		}
		return io.NopCloser(in), nil
	case isRemote(source):
		rc, err := l.get(ctx, source)
		if err != nil {
			return fail(err)
		}
		return rc, nil
	default:
		f, err := os.Open(source)
		if err != nil {
			return fail(err)
		}
		return f, nil
	}
}

// get performs an HTTP GET request and returns the body of a successful response.
func (l *Loader) get(ctx context.Context, addr string) (io.ReadCloser, error) {
	client := l.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return resp.Body, nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

func isJSON(source string) bool {
	if i := strings.IndexAny(source, "?#"); i >= 0 && isRemote(source) {
		source = source[:i]
	}
	return strings.EqualFold(path.Ext(source), ".json")
}

// withSource sets the source of a *DataLoadError.
func withSource(err error, source string) error {
	var lerr *DataLoadError
	if errors.As(err, &lerr) {
		lerr.Source = source
	}
	return err
}
