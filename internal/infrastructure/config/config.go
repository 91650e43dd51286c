package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	CatalogSourceDynamoDB = "dynamodb"
	CatalogSourceFile     = "file"
)

var ErrUnknownCatalogSource = errors.New("unknown catalog source")

// Config is the service configuration, read from the environment (and .env, loaded by main).
type Config struct {
	Port            int           `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Catalog CatalogConfig
	Session SessionConfig
	AWS     AWSConfig
}

// CatalogConfig selects where quote catalogs are read from.
type CatalogConfig struct {
	Source       string `env:"CATALOG_SOURCE" envDefault:"dynamodb"`
	FixturesDir  string `env:"CATALOG_FIXTURES_DIR" envDefault:"fixtures"`
	OptionsTable string `env:"QUOTE_OPTIONS_TABLE" envDefault:"quote_options"`
	ItemsTable   string `env:"QUOTE_ITEMS_TABLE" envDefault:"quote_items"`
}

type SessionConfig struct {
	TTL           time.Duration `env:"MATRIX_SESSION_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"MATRIX_SESSION_SWEEP_INTERVAL" envDefault:"1m"`
}

// AWSConfig is local-friendly: DynamoDB Local ignores credentials but the SDK requires them.
type AWSConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Catalog.Source = strings.ToLower(strings.TrimSpace(cfg.Catalog.Source))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Catalog.Source {
	case CatalogSourceDynamoDB, CatalogSourceFile:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCatalogSource, c.Catalog.Source)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.New("shutdown timeout must be positive")
	}
	if c.Session.TTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		return errors.New("session sweep interval must be positive")
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
