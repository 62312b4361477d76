// Package config resolves process configuration for the checkout verifier.
// Configuration is loaded once at startup and passed into the core as
// explicit values; the flow itself never reads ambient environment state.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces all environment variables.
const EnvPrefix = "CHECKOUTFLOW"

// Config holds every externally supplied setting.
type Config struct {
	// BaseURL is the storefront under verification.
	BaseURL string `envconfig:"BASE_URL" default:"https://www.saucedemo.com"`

	// Username and Password authenticate the session. The defaults are
	// the storefront's published demo credentials.
	Username string `envconfig:"USERNAME" default:"standard_user"`
	Password string `envconfig:"PASSWORD" default:"secret_sauce"`

	// Items is the requested selection size per run.
	Items int `envconfig:"ITEMS" default:"3"`

	// Headless controls the browser window.
	Headless bool `envconfig:"HEADLESS" default:"true"`

	// ChromePath overrides Chrome binary detection.
	ChromePath string `envconfig:"CHROME_PATH"`

	// OpTimeout bounds each individual screen operation.
	OpTimeout time.Duration `envconfig:"OP_TIMEOUT" default:"10s"`
}

// Load reads a .env file if present, then resolves the configuration from
// the environment with documented defaults.
func Load() (*Config, error) {
	// Missing .env is fine; the environment alone is a valid source.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
