package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/perfchart"
	"github.com/etnz/perfchart/renderer"
	"github.com/google/subcommands"
)

type renderCmd struct {
	chartFlags
	format string
	out    string
	title  string
	x      float64
}

func (*renderCmd) Name() string     { return "render" }
func (*renderCmd) Synopsis() string { return "render the chart as SVG or PNG" }
func (*renderCmd) Usage() string {
	return `render [-preset <preset>] [-from <date> -to <date>] [-format svg|png] [-o <file>]

Render the chart. The zoom preset is applied first, then the brush selection.
The format defaults to the extension of the output file, or svg.
`
}

func (c *renderCmd) SetFlags(f *flag.FlagSet) {
	c.chartFlags.SetFlags(f)
	f.StringVar(&c.format, "format", "", "output format: svg or png")
	f.StringVar(&c.out, "o", "", "output file (default stdout)")
	f.StringVar(&c.title, "title", config().Chart.Title, "chart title")
	f.Float64Var(&c.x, "x", -1, "show the tooltip for this horizontal position of the focus view")
}

func (c *renderCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	format := c.format
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(c.out), ".")
	}
	if format == "" {
		format = "svg"
	}
	if !finite(c.x) {
		fmt.Fprintf(os.Stderr, "invalid -x %v: expecting a finite number\n", c.x)
		return subcommands.ExitUsageError
	}

	var render func(io.Writer, *perfchart.Chart, renderer.Options) error
	switch strings.ToLower(format) {
	case "svg":
		render = renderer.RenderSVG
	case "png":
		render = renderer.RenderPNG
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q, want svg or png\n", format)
		return subcommands.ExitUsageError
	}

	chart, err := c.chart(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.x >= 0 {
		chart.OnPointerMove(c.x)
	}

	var w io.Writer = os.Stdout
	if c.out != "" {
		file, err := os.Create(c.out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.out, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}
	buf := bufio.NewWriter(w)
	if err := render(buf, chart, renderer.Options{Title: c.title}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := buf.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
