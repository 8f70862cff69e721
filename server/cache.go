package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"sync"

	"github.com/etnz/perfchart"
)

// dataset is the loaded content of the data sources. It is never modified.
type dataset struct {
	raw     []byte // portfolio table as fetched
	series  perfchart.Series
	summary *perfchart.Summary // nil when the table has no positions
	trades  []perfchart.Trade
}

// cache loads the dataset once. A failed load is retried on the next request.
type cache struct {
	cfg Config

	mu sync.Mutex
	ds *dataset
}

func (c *cache) get(ctx context.Context) (*dataset, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ds != nil {
		return c.ds, nil
	}
	ds, err := load(ctx, c.cfg)
	if err != nil {
		return nil, err
	}
	c.ds = ds
	return ds, nil
}

func load(ctx context.Context, cfg Config) (*dataset, error) {
	l := cfg.Loader
	rc, err := l.Open(ctx, cfg.Portfolio)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, &perfchart.DataLoadError{Source: cfg.Portfolio, Err: err}
	}
	ds := &dataset{raw: raw}
	if ds.series, err = l.Decode(cfg.Portfolio, bytes.NewReader(raw)); err != nil {
		return nil, err
	}

	var names map[string]string
	if cfg.Descriptions != "" {
		if names, err = l.Descriptions(ctx, cfg.Descriptions); err != nil {
			return nil, err
		}
	}
	// Positions are only available in the wide portfolio table.
	if summary, err := perfchart.DecodeSummary(bytes.NewReader(raw), names); err != nil {
		log.Printf("no positions in %s: %v", cfg.Portfolio, err)
	} else {
		ds.summary = &summary
	}

	if cfg.Trades != "" {
		if ds.trades, err = l.Trades(ctx, cfg.Trades); err != nil {
			return nil, err
		}
	}
	log.Printf("loaded %d points from %s (%v)", ds.series.Len(), cfg.Portfolio, ds.series.Extent())
	return ds, nil
}

// contentType returns the media type of the raw portfolio table.
func (ds *dataset) contentType() string {
	if json.Valid(ds.raw) {
		return "application/json"
	}
	return "text/csv; charset=utf-8"
}
