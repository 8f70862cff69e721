package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/etnz/perfchart/table"
	"github.com/google/subcommands"
)

type filterCmd struct {
	table string
	panel string
	out   string
}

func (*filterCmd) Name() string     { return "filter" }
func (*filterCmd) Synopsis() string { return "filter the rows of a dashboard table" }
func (*filterCmd) Usage() string {
	return `filter [-table <id>] [-panel <id>] [-o <file>] <query> [<page.html>]

Hide the rows of the table whose second cell does not contain the query,
ignoring case, and show the others. With -panel, also show that panel and hide
the other one. The page is read from stdin when no file is given.
`
}

func (c *filterCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.table, "table", table.HoldingsID, "id of the table to filter")
	f.StringVar(&c.panel, "panel", "", "panel to show: "+table.HoldingPanel+" or "+table.TradePanel)
	f.StringVar(&c.out, "o", "", "output file (default stdout)")
}

func (c *filterCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 || f.NArg() > 2 {
		fmt.Fprintln(os.Stderr, "expecting a query and an optional file")
		return subcommands.ExitUsageError
	}
	var in io.Reader = os.Stdin
	if f.NArg() == 2 {
		file, err := os.Open(f.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(1), err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}
	doc, err := goquery.NewDocumentFromReader(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing page: %v\n", err)
		return subcommands.ExitFailure
	}

	n, err := table.FilterRows(doc, c.table, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.panel != "" {
		if err := table.TogglePanel(doc, c.panel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	html, err := doc.Html()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.out == "" {
		fmt.Print(html)
	} else if err := os.WriteFile(c.out, []byte(html), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "%d matching rows\n", n)
	return subcommands.ExitSuccess
}
