// Package config loads the application configuration from a yaml file and
// the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. It contains the
// lending policy, the optional ops HTTP server settings and shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Lending contains the lending policy knobs of the engine
	Lending struct {
		// LoanDuration is how long a borrowed book may be kept before it is due.
		// The demonstration default is a few seconds; a deployment would use days.
		LoanDuration time.Duration `env:"LENDING_LOAN_DURATION" env-default:"5s" yaml:"loanDuration"`
		// FineRatePerSecond is the currency amount added to a user's fine balance
		// per second a returned book is overdue. Parsed as an exact decimal.
		FineRatePerSecond string `env:"LENDING_FINE_RATE_PER_SECOND" env-default:"2" yaml:"fineRatePerSecond"`
	} `yaml:"lending"`

	// Ops contains the settings of the metrics/pprof HTTP server
	Ops struct {
		// Enabled controls whether the ops server is started at all
		Enabled bool `env:"OPS_ENABLED" env-default:"false" yaml:"enabled"`
		// Addr is the address and port the ops server will listen on
		Addr string `env:"OPS_ADDR" env-default:":9090" yaml:"addr"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"OPS_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"OPS_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
	} `yaml:"ops"`

	// GracefulShutdownTimeout is the maximum duration to wait for the ops server to drain during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for a yaml config file and returns a filled Config
// struct. A missing file is not an error; configuration then comes from the
// environment and defaults only.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
