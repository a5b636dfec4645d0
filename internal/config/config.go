package config

import (
	"fmt"

	pkgconfig "github.com/onlinebazaar/cart/pkg/config"
)

// Config holds all configuration for the cart application.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Backing files
	CatalogFile        string `env:"CATALOG_FILE" envDefault:"product_catalog.json"`
	CartStateFile      string `env:"CART_STATE_FILE" envDefault:"cart_state.json"`
	TransactionLogFile string `env:"TRANSACTION_LOG_FILE" envDefault:"transactions.csv"`

	// Seed the sample catalog when the catalog file is missing or empty.
	SeedSampleCatalog bool `env:"SEED_SAMPLE_CATALOG" envDefault:"true"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load cart config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	if c.CatalogFile == "" {
		return fmt.Errorf("CATALOG_FILE must not be empty")
	}
	if c.CartStateFile == "" {
		return fmt.Errorf("CART_STATE_FILE must not be empty")
	}
	if c.TransactionLogFile == "" {
		return fmt.Errorf("TRANSACTION_LOG_FILE must not be empty")
	}
	return nil
}
