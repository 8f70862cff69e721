package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables overriding the configuration,
// e.g. PCHART_DATA_PORTFOLIO for data.portfolio.
const EnvPrefix = "PCHART"

// Config holds the defaults of the command flags.
type Config struct {
	Data struct {
		Portfolio    string `mapstructure:"portfolio"`
		Trades       string `mapstructure:"trades"`
		Descriptions string `mapstructure:"descriptions"`
		Cache        bool   `mapstructure:"cache"` // keep remote sources on disk for the day
	} `mapstructure:"data"`
	Server struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"server"`
	Chart struct {
		Title string `mapstructure:"title"`
	} `mapstructure:"chart"`
}

var (
	configOnce sync.Once
	loaded     Config
)

// config returns the configuration, loaded on first use.
//
// A configuration that cannot be read is reported, and the defaults are used.
func config() *Config {
	configOnce.Do(func() {
		cfg, err := LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading configuration: %v\n", err)
		}
		loaded = cfg
	})
	return &loaded
}

// LoadConfig reads the configuration from path, the environment and a .env file.
//
// An empty path looks for an optional pchart.yaml in the working directory.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf(".env not loaded: %v", err)
	}

	v := viper.New()
	setDefaults(v)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("pchart")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			v.Unmarshal(&cfg)
			return cfg, fmt.Errorf("cannot read config %q: %w", path, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("cannot decode config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.portfolio", "portfolio.csv")
	v.SetDefault("data.trades", "")
	v.SetDefault("data.descriptions", "")
	v.SetDefault("data.cache", false)
	v.SetDefault("server.addr", "localhost:8080")
	v.SetDefault("chart.title", "Portfolio Performance")
}
