// Package cmd implements the CLI application to render and serve a portfolio performance chart.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/perfchart"
	"github.com/google/subcommands"
)

// Commands lists the subcommands, in help order.
var Commands = []subcommands.Command{
	&serveCmd{},
	&renderCmd{},
	&viewCmd{},
	&tooltipCmd{},
	&filterCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (default pchart.yaml in the working directory)")

// chartFlags are the flags of the commands that replay an interaction on the chart.
type chartFlags struct {
	portfolio string
	preset    string
	from, to  string
}

func (c *chartFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "portfolio", config().Data.Portfolio, "portfolio table: a CSV or JSON file, an http(s) URL or - for stdin")
	f.StringVar(&c.preset, "preset", "", "zoom preset: 1w, 1m, 3m, 6m, 1y or All")
	f.StringVar(&c.from, "from", "", "first day of the brush selection (YYYY-MM-DD)")
	f.StringVar(&c.to, "to", "", "last day of the brush selection (YYYY-MM-DD)")
}

// chart loads the portfolio and applies the preset then the brush selection.
func (c *chartFlags) chart(ctx context.Context) (*perfchart.Chart, error) {
	series, err := loader().Load(ctx, c.portfolio)
	if err != nil {
		return nil, err
	}
	chart, err := perfchart.NewChart(series)
	if err != nil {
		return nil, err
	}
	if c.preset != "" {
		p, err := perfchart.ParsePreset(c.preset)
		if err != nil {
			return nil, err
		}
		chart.SelectPreset(p)
	}
	if c.from != "" || c.to != "" {
		r, err := c.brush(chart.Context().Dates)
		if err != nil {
			return nil, err
		}
		chart.OnBrush(r)
	}
	return chart, nil
}

// brush returns the selection of the -from and -to flags. A missing end defaults to the extent's.
func (c *chartFlags) brush(extent perfchart.Range) (perfchart.Range, error) {
	r := extent
	var err error
	if c.from != "" {
		if r.From, err = perfchart.ParseDate(c.from); err != nil {
			return r, fmt.Errorf("invalid -from: %w", err)
		}
	}
	if c.to != "" {
		if r.To, err = perfchart.ParseDate(c.to); err != nil {
			return r, fmt.Errorf("invalid -to: %w", err)
		}
	}
	return perfchart.NewRange(r.From, r.To), nil
}

// loader returns the loader of the data sources.
func loader() *perfchart.Loader {
	l := new(perfchart.Loader)
	if config().Data.Cache {
		l.Client = perfchart.DailyClient("")
	}
	return l
}

// printMarkdown renders markdown for the terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Fprintf(os.Stderr, "cannot render markdown: %v\n", err)
	fmt.Print(md)
}
