// Package table implements the holdings and transactions tables of the dashboard.
//
// Tables are written in markdown by the renderer package and converted to HTML
// here. FilterRows and TogglePanel apply the dashboard interactions to an HTML
// document, so that they can run server side.
package table

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/etnz/perfchart"
	"github.com/etnz/perfchart/renderer"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Element ids of the dashboard.
const (
	HoldingsID   = "scroll-portfolio"    // holdings table
	TradesID     = "transaction-table"   // transactions table
	HoldingPanel = "holding-detail"      // panel of the holdings table
	TradePanel   = "transaction-history" // panel of the transactions table
	TitleID      = "table-title"         // title shared by the panels
)

// Titles of the panels.
var titles = map[string]string{
	HoldingPanel: "Portfolio Details",
	TradePanel:   "Transaction History",
}

// ErrNotFound is returned when an element is missing from the document.
var ErrNotFound = errors.New("element not found")

var markdown = goldmark.New(goldmark.WithExtensions(extension.Table))

// HoldingsHTML returns the holdings table of the snapshot.
func HoldingsHTML(s *perfchart.Snapshot) (string, error) {
	return toHTML(renderer.RenderHoldings(s), HoldingsID)
}

// TradesHTML returns the transactions table.
func TradesHTML(trades []perfchart.Trade) (string, error) {
	return toHTML(renderer.RenderTrades(trades), TradesID)
}

// toHTML converts a markdown table to HTML and sets the id of the table.
func toHTML(md, id string) (string, error) {
	var b bytes.Buffer
	if err := markdown.Convert([]byte(md), &b); err != nil {
		return "", fmt.Errorf("could not convert table %q: %w", id, err)
	}
	doc, err := goquery.NewDocumentFromReader(&b)
	if err != nil {
		return "", fmt.Errorf("could not parse table %q: %w", id, err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return "", fmt.Errorf("table %q: %w", id, ErrNotFound)
	}
	table.SetAttr("id", id)
	return goquery.OuterHtml(table)
}

// FilterRows hides the rows of the table whose second cell does not contain query, ignoring case.
//
// Matching rows are shown, rows without a second cell are left untouched.
// It returns the number of matching rows.
func FilterRows(doc *goquery.Document, tableID, query string) (int, error) {
	table := byID(doc, tableID)
	if table.Length() == 0 {
		return 0, fmt.Errorf("table %q: %w", tableID, ErrNotFound)
	}
	query = strings.ToUpper(query)
	visible := 0
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		td := tr.ChildrenFiltered("td").Eq(1)
		if td.Length() == 0 {
			return
		}
		if strings.Contains(strings.ToUpper(td.Text()), query) {
			setDisplay(tr, "")
			visible++
		} else {
			setDisplay(tr, "none")
		}
	})
	return visible, nil
}

// TogglePanel shows the panel panelID, hides the other one and updates the title.
func TogglePanel(doc *goquery.Document, panelID string) error {
	title, ok := titles[panelID]
	if !ok {
		return fmt.Errorf("unknown panel %q, want %q or %q", panelID, HoldingPanel, TradePanel)
	}
	other := TradePanel
	if panelID == TradePanel {
		other = HoldingPanel
	}
	for _, id := range []string{panelID, other, TitleID} {
		if byID(doc, id).Length() == 0 {
			return fmt.Errorf("%q: %w", id, ErrNotFound)
		}
	}
	byID(doc, TitleID).SetHtml("<div>" + title + "</div>")
	setDisplay(byID(doc, other), "none")
	setDisplay(byID(doc, panelID), "block")
	return nil
}

// Panel returns the name of the visible panel.
func Panel(doc *goquery.Document) string {
	if display(byID(doc, HoldingPanel)) == "none" {
		return TradePanel
	}
	return HoldingPanel
}

func byID(doc *goquery.Document, id string) *goquery.Selection {
	return doc.Find(fmt.Sprintf("[id=%q]", id))
}
