package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Environment variables passed to extensions, matching the configuration keys.
const (
	EnvPortfolio    = EnvPrefix + "_DATA_PORTFOLIO"
	EnvTrades       = EnvPrefix + "_DATA_TRADES"
	EnvDescriptions = EnvPrefix + "_DATA_DESCRIPTIONS"
	EnvAddr         = EnvPrefix + "_SERVER_ADDR"
	EnvTitle        = EnvPrefix + "_CHART_TITLE"
)

// IsCommand returns true if name is a builtin subcommand.
func IsCommand(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}

// RunExtension runs the pchart-<subcommand> binary found in PATH, if any, and
// returns its exit code. ok is false when there is no such binary.
//
// The extension receives the resolved configuration in its environment, on top
// of the current one.
func RunExtension(subcommand string, args []string) (ok bool, code int) {
	name := "pchart-" + subcommand
	path, err := exec.LookPath(name)
	if err != nil {
		return false, 0
	}

	ext := exec.Command(path, args...)
	ext.Stdin, ext.Stdout, ext.Stderr = os.Stdin, os.Stdout, os.Stderr
	ext.Env = append(os.Environ(), extensionEnv(config())...)

	err = ext.Run()
	var exit *exec.ExitError
	switch {
	case err == nil:
		return true, 0
	case errors.As(err, &exit) && exit.ExitCode() >= 0:
		return true, exit.ExitCode()
	default:
		fmt.Fprintf(os.Stderr, "Error: cannot run %s: %v\n", name, err)
		return true, 1
	}
}

// extensionEnv returns the configuration as environment variables.
func extensionEnv(cfg *Config) []string {
	vars := []struct{ name, value string }{
		{EnvPortfolio, cfg.Data.Portfolio},
		{EnvTrades, cfg.Data.Trades},
		{EnvDescriptions, cfg.Data.Descriptions},
		{EnvAddr, cfg.Server.Addr},
		{EnvTitle, cfg.Chart.Title},
	}
	env := make([]string, len(vars))
	for i, v := range vars {
		env[i] = v.name + "=" + v.value
	}
	return env
}
