package cmd

import (
	"flag"
	"io"
	"os"

	"github.com/etnz/perfchart"
	"github.com/etnz/perfchart/docs"
	"github.com/etnz/perfchart/table"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// predictors of the flags that take a known set of values, or a file.
var predictors = map[string]complete.Predictor{
	"config":       predict.Files("*.yaml"),
	"portfolio":    predict.Files("*"),
	"trades":       predict.Files("*.csv"),
	"descriptions": predict.Files("*.json"),
	"o":            predict.Files("*"),
	"format":       predict.Set{"svg", "png"},
	"table":        predict.Set{table.HoldingsID, table.TradesID},
	"panel":        predict.Set{table.HoldingPanel, table.TradePanel},
}

func init() {
	var presets predict.Set
	for _, p := range perfchart.Presets {
		presets = append(presets, p.String())
	}
	predictors["preset"] = presets
}

// Complete performs the shell completion and exits, when the shell asks for it.
func Complete(c *subcommands.Commander, name string) {
	for _, env := range []string{"COMP_LINE", "COMP_INSTALL", "COMP_UNINSTALL"} {
		if os.Getenv(env) != "" {
			Completion(c).Complete(name)
			return
		}
	}
}

// Completion returns the shell completion of the commander's subcommands and flags.
//
// Set COMP_INSTALL=1 in the environment and run the binary to install it.
func Completion(c *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagsOf(flag.CommandLine),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		f.SetOutput(io.Discard)
		cmd.SetFlags(f)
		sub := &complete.Command{Flags: flagsOf(f)}
		switch cmd.Name() {
		case "topic":
			if names, err := docs.GetAllTopics(); err == nil {
				sub.Args = predict.Set(names)
			}
		case "filter":
			sub.Args = predict.Files("*.html")
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func flagsOf(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		if p, ok := predictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}
