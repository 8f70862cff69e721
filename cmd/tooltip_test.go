package cmd

import (
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
)

func TestPosition_NotFinite(t *testing.T) {
	tests := []struct {
		cmd  subcommands.Command
		args []string
	}{
		{&tooltipCmd{}, []string{"NaN"}},
		{&tooltipCmd{}, []string{"--", "-Inf"}},
		{&tooltipCmd{}, []string{"left"}},
		{&renderCmd{}, []string{"-x", "NaN"}},
		{&renderCmd{}, []string{"-x", "+Inf"}},
	}
	for _, tt := range tests {
		f := flag.NewFlagSet(tt.cmd.Name(), flag.ContinueOnError)
		tt.cmd.SetFlags(f)
		if err := f.Parse(tt.args); err != nil {
			t.Fatalf("%s %v: %v", tt.cmd.Name(), tt.args, err)
		}
		if got := tt.cmd.Execute(context.Background(), f); got != subcommands.ExitUsageError {
			t.Errorf("%s %v = %v, want a usage error", tt.cmd.Name(), tt.args, got)
		}
	}
}
