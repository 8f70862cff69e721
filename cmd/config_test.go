package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pchart.yaml")
	content := `data:
  portfolio: https://example.com/portfolio.csv
  cache: true
chart:
  title: My Savings
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PCHART_SERVER_ADDR", ":9090")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if got := cfg.Data.Portfolio; got != "https://example.com/portfolio.csv" {
		t.Errorf("data.portfolio = %q", got)
	}
	if !cfg.Data.Cache {
		t.Errorf("data.cache = false, want true")
	}
	if got := cfg.Chart.Title; got != "My Savings" {
		t.Errorf("chart.title = %q, want %q", got, "My Savings")
	}
	if got := cfg.Server.Addr; got != ":9090" {
		t.Errorf("server.addr = %q, want the environment value", got)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Data.Portfolio != "portfolio.csv" || cfg.Server.Addr != "localhost:8080" || cfg.Data.Cache {
		t.Errorf("LoadConfig() = %+v, want the defaults", cfg)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadConfig() succeeded on a missing file")
	}
	if cfg.Chart.Title != "Portfolio Performance" {
		t.Errorf("chart.title = %q, want the default", cfg.Chart.Title)
	}
}
