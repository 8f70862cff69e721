package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/etnz/perfchart/server"
	"github.com/google/subcommands"
)

type serveCmd struct {
	addr         string
	portfolio    string
	trades       string
	descriptions string
	title        string
	lazy         bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the portfolio dashboard over HTTP" }
func (*serveCmd) Usage() string {
	return `serve [-addr <host:port>] [-portfolio <source>] [-trades <source>]

Serve the dashboard: the chart with its zoom presets, the holdings and the
transaction history. See 'topic server' for the routes.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	cfg := config()
	f.StringVar(&c.addr, "addr", cfg.Server.Addr, "address to listen on")
	f.StringVar(&c.portfolio, "portfolio", cfg.Data.Portfolio, "portfolio table: a CSV or JSON file or an http(s) URL")
	f.StringVar(&c.trades, "trades", cfg.Data.Trades, "trade history table (optional)")
	f.StringVar(&c.descriptions, "descriptions", cfg.Data.Descriptions, "JSON object mapping symbols to names (optional)")
	f.StringVar(&c.title, "title", cfg.Chart.Title, "chart title")
	f.BoolVar(&c.lazy, "lazy", false, "load the data on the first request instead of at startup")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := server.New(server.Config{
		Portfolio:    c.portfolio,
		Trades:       c.trades,
		Descriptions: c.descriptions,
		Title:        c.title,
		Loader:       loader(),
	})
	if !c.lazy {
		if err := s.Preload(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := s.ListenAndServe(ctx, c.addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error serving: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
