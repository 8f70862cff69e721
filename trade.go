package perfchart

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Trade is one entry of the transaction history.
type Trade struct {
	Date     Date    `json:"date"`
	Symbol   string  `json:"symbol"`
	Shares   float64 `json:"shares"`   // position before the trade
	Quantity float64 `json:"quantity"` // bought (positive) or sold (negative)
	Price    float64 `json:"price"`
}

// Side returns "buy", "sell" or "hold".
func (t Trade) Side() string {
	switch {
	case t.Quantity > 0:
		return "buy"
	case t.Quantity < 0:
		return "sell"
	default:
		return "hold"
	}
}

// Amount returns the cash exchanged, positive on buys.
func (t Trade) Amount() float64 { return t.Quantity * t.Price }

// DecodeTrades reads the trade history table (date,symbol,share,transaction,price).
//
// Trades are returned newest first; trades of the same day keep their table order.
// An empty history is not an error.
func DecodeTrades(r io.Reader) ([]Trade, error) {
	fail := func(line int, err error) ([]Trade, error) {
		return nil, &DataLoadError{Source: "-", Line: line, Err: err}
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return fail(1, err)
	}
	idx, err := newHeader(head).require("date", "symbol", "share", "transaction", "price")
	if err != nil {
		return fail(1, err)
	}

	var trades []Trade
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fail(line, err)
		}
		if len(rec) < len(head) {
			return fail(line, fmt.Errorf("expected %d fields, got %d", len(head), len(rec)))
		}
		field := func(i int) string { return strings.TrimSpace(rec[idx[i]]) }
		t := Trade{Symbol: field(1)}
		if t.Date, err = ParseDate(field(0)); err != nil {
			return fail(line, err)
		}
		if t.Shares, err = parseValue(field(2), nil); err != nil {
			return fail(line, fmt.Errorf("invalid share: %w", err))
		}
		if t.Quantity, err = parseValue(field(3), nil); err != nil {
			return fail(line, fmt.Errorf("invalid transaction: %w", err))
		}
		if t.Price, err = parseValue(field(4), nil); err != nil {
			return fail(line, fmt.Errorf("invalid price: %w", err))
		}
		trades = append(trades, t)
	}
	slices.SortStableFunc(trades, func(a, b Trade) int { return b.Date.Compare(a.Date) })
	return trades, nil
}
