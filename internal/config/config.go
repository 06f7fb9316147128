// Package config provides configuration for the stub service binary.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the stub service settings. Monetary values are wire-scale
// (1.00 = 1000000).
type Config struct {
	Addr         string        `env:"STUB_ADDR" envDefault:":8080"`
	ReadTimeout  time.Duration `env:"STUB_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"STUB_WRITE_TIMEOUT" envDefault:"30s"`

	JWTSecret       string        `env:"STUB_JWT_SECRET" envDefault:"rgs-stub-dev-secret"`
	SessionTTL      time.Duration `env:"STUB_SESSION_TTL" envDefault:"24h"`
	StartingBalance int64         `env:"STUB_STARTING_BALANCE" envDefault:"1000000000"`
	Currency        string        `env:"STUB_CURRENCY" envDefault:"USD"`
	MaxBet          int64         `env:"STUB_MAX_BET" envDefault:"100000000"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}
