package table

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/etnz/perfchart"
)

func snapshot() *perfchart.Snapshot {
	return &perfchart.Snapshot{
		Date: perfchart.NewDate(2024, time.March, 1),
		Holdings: []perfchart.Holding{
			{Symbol: "AAPL", Name: "Apple Inc.", Shares: 10, Price: 150},
			{Symbol: "MSFT", Name: "Microsoft", Shares: 2, Price: 400},
			{Symbol: "aaplx", Name: "Not Apple", Shares: 1, Price: 10},
		},
		Cash:  100,
		Total: 2410,
	}
}

// dashboard returns a document with both panels, the holdings one visible.
func dashboard(t *testing.T) *goquery.Document {
	t.Helper()
	holdings, err := HoldingsHTML(snapshot())
	if err != nil {
		t.Fatalf("HoldingsHTML() error = %v", err)
	}
	trades, err := TradesHTML([]perfchart.Trade{
		{Date: perfchart.NewDate(2024, time.January, 5), Symbol: "AAPL", Quantity: 10, Price: 150},
	})
	if err != nil {
		t.Fatalf("TradesHTML() error = %v", err)
	}
	page := `<html><body>
<div id="table-title"><div>Portfolio Details</div></div>
<div id="holding-detail" style="display: block">` + holdings + `</div>
<div id="transaction-history" style="color: red; display: none">` + trades + `</div>
</body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatalf("cannot parse page: %v", err)
	}
	return doc
}

func TestHoldingsHTML(t *testing.T) {
	doc := dashboard(t)
	table := doc.Find("table#" + HoldingsID)
	if table.Length() != 1 {
		t.Fatalf("holdings table not found")
	}
	var symbols []string
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		symbols = append(symbols, tr.Find("td").Eq(1).Text())
	})
	want := []string{"AAPL", "MSFT", "aaplx", "Cash", "Total"}
	if strings.Join(symbols, ",") != strings.Join(want, ",") {
		t.Errorf("second cells = %q, want %q", symbols, want)
	}
	if n := doc.Find("table#" + TradesID).Length(); n != 1 {
		t.Errorf("got %d transactions table, want 1", n)
	}
}

func TestFilterRows(t *testing.T) {
	tests := []struct {
		query string
		want  []string // visible second cells
	}{
		{"AAPL", []string{"AAPL", "aaplx"}},
		{"aapl", []string{"AAPL", "aaplx"}},
		{"soft", nil},
		{"MS", []string{"MSFT"}},
		{"", []string{"AAPL", "MSFT", "aaplx", "Cash", "Total"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			doc := dashboard(t)
			n, err := FilterRows(doc, HoldingsID, tt.query)
			if err != nil {
				t.Fatalf("FilterRows() error = %v", err)
			}
			if n != len(tt.want) {
				t.Errorf("FilterRows(%q) = %d, want %d", tt.query, n, len(tt.want))
			}
			var visible []string
			doc.Find("#" + HoldingsID + " tr").Each(func(_ int, tr *goquery.Selection) {
				td := tr.Find("td").Eq(1)
				if td.Length() == 0 {
					// header row
					if display(tr) != "" {
						t.Errorf("header row was hidden")
					}
					return
				}
				if display(tr) != "none" {
					visible = append(visible, td.Text())
				}
			})
			if strings.Join(visible, ",") != strings.Join(tt.want, ",") {
				t.Errorf("visible rows = %q, want %q", visible, tt.want)
			}
		})
	}
}

func TestFilterRows_ShowsAgain(t *testing.T) {
	doc := dashboard(t)
	if _, err := FilterRows(doc, HoldingsID, "MSFT"); err != nil {
		t.Fatalf("FilterRows() error = %v", err)
	}
	n, err := FilterRows(doc, HoldingsID, "")
	if err != nil {
		t.Fatalf("FilterRows() error = %v", err)
	}
	if n != 5 {
		t.Errorf("FilterRows(\"\") = %d, want 5", n)
	}
	if hidden := doc.Find(`tr[style*="display"]`).Length(); hidden != 0 {
		t.Errorf("%d rows still carry a display style", hidden)
	}
}

func TestFilterRows_Missing(t *testing.T) {
	if _, err := FilterRows(dashboard(t), "nope", "AAPL"); !errors.Is(err, ErrNotFound) {
		t.Errorf("FilterRows() error = %v, want ErrNotFound", err)
	}
}

func TestTogglePanel(t *testing.T) {
	doc := dashboard(t)
	if got := Panel(doc); got != HoldingPanel {
		t.Fatalf("Panel() = %q, want %q", got, HoldingPanel)
	}

	if err := TogglePanel(doc, TradePanel); err != nil {
		t.Fatalf("TogglePanel() error = %v", err)
	}
	if got := Panel(doc); got != TradePanel {
		t.Errorf("Panel() = %q, want %q", got, TradePanel)
	}
	if got := doc.Find("#" + TitleID).Text(); got != "Transaction History" {
		t.Errorf("title = %q, want %q", got, "Transaction History")
	}
	if got := doc.Find("#" + TradePanel).AttrOr("style", ""); got != "color: red; display: block" {
		t.Errorf("style = %q, want other properties kept", got)
	}
	if got := display(doc.Find("#" + HoldingPanel)); got != "none" {
		t.Errorf("holdings display = %q, want none", got)
	}

	// re-entrant
	for range 2 {
		if err := TogglePanel(doc, HoldingPanel); err != nil {
			t.Fatalf("TogglePanel() error = %v", err)
		}
	}
	if got := doc.Find("#" + TitleID).Text(); got != "Portfolio Details" {
		t.Errorf("title = %q, want %q", got, "Portfolio Details")
	}
	if got := display(doc.Find("#" + TradePanel)); got != "none" {
		t.Errorf("transactions display = %q, want none", got)
	}
}

func TestTogglePanel_Unknown(t *testing.T) {
	if err := TogglePanel(dashboard(t), "chart"); err == nil {
		t.Errorf("TogglePanel(chart) error = nil, want error")
	}
}
