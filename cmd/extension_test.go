package cmd

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// pchart-hello prints the environment it receives.
	helloSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	for _, name := range []string{%q, %q, %q} {
		fmt.Printf("%%s=%%s\n", name, os.Getenv(name))
	}
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvPortfolio, EnvAddr, EnvTitle)

	helloPath := filepath.Join(tempDir, "pchart-hello")
	srcFile := helloPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloSource), 0644); err != nil {
		t.Fatalf("Failed to write pchart-hello source: %v", err)
	}
	build := exec.Command("go", "build", "-o", helloPath, srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile pchart-hello: %v", err)
	}

	pchartPath := filepath.Join(tempDir, "pchart")
	build = exec.Command("go", "build", "-o", pchartPath, "../pchart")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile pchart binary: %v", err)
	}

	configPath := filepath.Join(tempDir, "pchart.yaml")
	config := "data:\n  portfolio: https://example.com/portfolio.csv\nchart:\n  title: My Savings\n"
	if err := os.WriteFile(configPath, []byte(config), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cmd := exec.Command(pchartPath, "-config", configPath, "hello", "world")
	cmd.Dir = tempDir
	cmd.Env = []string{
		"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH"),
		EnvAddr + "=:9090",
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("pchart command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	for _, want := range []string{
		EnvPortfolio + "=https://example.com/portfolio.csv",
		EnvAddr + "=:9090",
		EnvTitle + "=My Savings",
		"args=[world]",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}

func TestExtensionEnv(t *testing.T) {
	cfg := &Config{}
	cfg.Data.Portfolio = "p.csv"
	cfg.Data.Trades = "t.csv"
	cfg.Server.Addr = ":8080"
	cfg.Chart.Title = "Mine"
	want := []string{
		EnvPortfolio + "=p.csv",
		EnvTrades + "=t.csv",
		EnvDescriptions + "=",
		EnvAddr + "=:8080",
		EnvTitle + "=Mine",
	}
	if got := extensionEnv(cfg); !slices.Equal(got, want) {
		t.Errorf("extensionEnv() = %q, want %q", got, want)
	}
}

func TestRunExtension_Missing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if ok, code := RunExtension("nothing-here", nil); ok || code != 0 {
		t.Errorf("RunExtension() = %v, %d, want false, 0", ok, code)
	}
}

func TestIsCommand(t *testing.T) {
	for _, name := range []string{"serve", "render", "view", "tooltip", "filter", "topic", "help"} {
		if !IsCommand(name) {
			t.Errorf("IsCommand(%q) = false, want true", name)
		}
	}
	if IsCommand("hello") {
		t.Errorf("IsCommand(%q) = true, want false", "hello")
	}
}
