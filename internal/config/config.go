package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains client configuration parameters.
type Config struct {
	LogLevel int   `env:"LOG_LEVEL" envDefault:"0"`
	API      API   `envPrefix:"API_"`
	State    State `envPrefix:"STATE_"`
}

// API contains backend endpoint parameters.
type API struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://localhost:7200/api"`
	// Timeout of 0 means no client-side deadline; hung calls are bounded
	// only by the caller's context and the token's own expiry.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"0"`
}

// State contains durable client state parameters.
type State struct {
	Dir string `env:"DIR"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.State.Dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config dir: %w", err)
		}
		cfg.State.Dir = filepath.Join(base, "homecraft")
	}

	return &cfg, nil
}
