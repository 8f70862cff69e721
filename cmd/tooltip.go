package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/etnz/perfchart"
	"github.com/google/subcommands"
)

type tooltipCmd struct {
	chartFlags
	date   string
	asJSON bool
}

func (*tooltipCmd) Name() string     { return "tooltip" }
func (*tooltipCmd) Synopsis() string { return "show the data point under a position of the focus view" }
func (*tooltipCmd) Usage() string {
	return `tooltip [-preset <preset>] [-from <date> -to <date>] (<x> | -date <date>)

Print the tooltip of the point nearest to the horizontal position x (in chart
units, from 0 to the focus view width) or to a date.
`
}

func (c *tooltipCmd) SetFlags(f *flag.FlagSet) {
	c.chartFlags.SetFlags(f)
	f.StringVar(&c.date, "date", "", "date to look up instead of a position")
	f.BoolVar(&c.asJSON, "json", false, "print the tooltip as JSON")
}

func (c *tooltipCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (f.NArg() == 1) == (c.date != "") {
		fmt.Fprintln(os.Stderr, "expecting exactly one of <x> or -date")
		return subcommands.ExitUsageError
	}
	var x float64
	if c.date == "" {
		var err error
		if x, err = strconv.ParseFloat(f.Arg(0), 64); err != nil || !finite(x) {
			fmt.Fprintf(os.Stderr, "invalid position %q: expecting a finite number\n", f.Arg(0))
			return subcommands.ExitUsageError
		}
	}
	chart, err := c.chart(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.date != "" {
		d, err := perfchart.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		x = chart.FocusX().Map(d)
	}

	tip := chart.OnPointerMove(x)
	if !tip.Visible {
		fmt.Fprintln(os.Stderr, "no data point")
		return subcommands.ExitFailure
	}
	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(tip); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	for _, line := range tip.Lines() {
		fmt.Println(line)
	}
	return subcommands.ExitSuccess
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
