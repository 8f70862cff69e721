package cmd

import (
	"flag"
	"testing"

	"github.com/google/subcommands"
)

func TestCompletion(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("pchart", flag.ContinueOnError), "pchart")
	Register(commander)

	root := Completion(commander)
	for _, c := range Commands {
		if _, ok := root.Sub[c.Name()]; !ok {
			t.Errorf("no completion for %q", c.Name())
		}
	}

	render := root.Sub["render"]
	if render == nil {
		t.Fatal("no completion for render")
	}
	for _, name := range []string{"portfolio", "preset", "from", "to", "format", "o", "x"} {
		if _, ok := render.Flags[name]; !ok {
			t.Errorf("render: no completion for flag -%s", name)
		}
	}
	if got := render.Flags["preset"].Predict(""); len(got) != 6 {
		t.Errorf("render -preset predicts %q, want the 6 presets", got)
	}
	if root.Sub["topic"].Args == nil {
		t.Errorf("topic: no completion for arguments")
	}
}
