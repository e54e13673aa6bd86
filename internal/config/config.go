package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"MobileStore/internal/catalog"
)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	StoreName       string `envconfig:"STORE_NAME" default:"Flipkart Mobiles"`
	DefaultCategory string `envconfig:"DEFAULT_CATEGORY" default:"mobiles"`
	CatalogContract string `envconfig:"CATALOG_CONTRACT" default:"strict"`

	MetricsEnabled bool   `envconfig:"METRICS_ENABLED" default:"true"`
	MetricsToken   string `envconfig:"METRICS_TOKEN"`

	RateLimit         int `envconfig:"RATE_LIMIT" default:"0"`
	RateWindowSeconds int `envconfig:"RATE_WINDOW_SECONDS" default:"60"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads configuration from the process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}
	if _, err := catalog.ParseContract(c.CatalogContract); err != nil {
		return fmt.Errorf("CATALOG_CONTRACT: %w", err)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("RATE_LIMIT must be >= 0, got %d", c.RateLimit)
	}
	if c.RateLimit > 0 && c.RateWindowSeconds <= 0 {
		return fmt.Errorf("RATE_WINDOW_SECONDS must be > 0, got %d", c.RateWindowSeconds)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0, got %s", c.ShutdownTimeout)
	}
	return nil
}

// Contract returns the validated catalog contract.
func (c *Config) Contract() catalog.Contract {
	ct, _ := catalog.ParseContract(c.CatalogContract)
	return ct
}

func (c *Config) Addr() string { return ":" + c.Port }
