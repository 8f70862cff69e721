package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/perfchart"
	"github.com/etnz/perfchart/renderer"
	"github.com/google/subcommands"
)

type viewCmd struct {
	chartFlags
	descriptions string
	title        string
	raw          bool
}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "summarize the performance over a date range" }
func (*viewCmd) Usage() string {
	return `view [-preset <preset>] [-from <date> -to <date>]

Print the portfolio and benchmark values at both ends of the displayed range,
and the latest positions when the portfolio table has them.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {
	c.chartFlags.SetFlags(f)
	f.StringVar(&c.descriptions, "descriptions", config().Data.Descriptions, "JSON object mapping symbols to names (optional)")
	f.StringVar(&c.title, "title", config().Chart.Title, "report title")
	f.BoolVar(&c.raw, "markdown", false, "print raw markdown")
}

func (c *viewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	chart, err := c.chart(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var summary *perfchart.Summary
	if c.portfolio != "-" {
		summary, err = c.summary(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	md := renderer.RenderSummary(renderer.NewReport(chart, c.title, summary))
	if c.raw {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}

// summary returns the positions of the portfolio table, or nil if it has none.
func (c *viewCmd) summary(ctx context.Context) (*perfchart.Summary, error) {
	l := loader()
	var names map[string]string
	if c.descriptions != "" {
		var err error
		if names, err = l.Descriptions(ctx, c.descriptions); err != nil {
			return nil, err
		}
	}
	rc, err := l.Open(ctx, c.portfolio)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	s, err := perfchart.DecodeSummary(rc, names)
	if err != nil {
		// a plain date,benchmark,total_value table has no positions.
		return nil, nil
	}
	return &s, nil
}
