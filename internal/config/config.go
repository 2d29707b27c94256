// Package config reads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type StorageKind string

const (
	StorageMemory   StorageKind = "memory"
	StorageSQLite   StorageKind = "sqlite"
	StoragePostgres StorageKind = "postgres"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Addr             string        `env:"HUGOLAND_ADDR" envDefault:":8080"`
	Storage          StorageKind   `env:"HUGOLAND_STORAGE" envDefault:"sqlite"`
	SQLitePath       string        `env:"HUGOLAND_SQLITE_PATH" envDefault:"hugoland.db"`
	DatabaseDSN      string        `env:"HUGOLAND_DB_DSN"`
	MigrationsDir    string        `env:"HUGOLAND_MIGRATIONS_DIR"`
	StorageKey       string        `env:"HUGOLAND_STORAGE_KEY" envDefault:"hugoland-game-state"`
	CatalogPath      string        `env:"HUGOLAND_CATALOG_PATH"`
	RulesPath        string        `env:"HUGOLAND_RULES_PATH"`
	AutosaveInterval time.Duration `env:"HUGOLAND_AUTOSAVE_INTERVAL" envDefault:"30s"`
	Seed             uint64        `env:"HUGOLAND_SEED" envDefault:"0"`
	AllowOrigin      string        `env:"HUGOLAND_ALLOW_ORIGIN" envDefault:"*"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Storage {
	case StorageMemory:
	case StorageSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("%w: HUGOLAND_SQLITE_PATH is required for sqlite storage", ErrInvalidConfig)
		}
	case StoragePostgres:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("%w: HUGOLAND_DB_DSN is required for postgres storage", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage %q", ErrInvalidConfig, c.Storage)
	}
	if c.StorageKey == "" {
		return fmt.Errorf("%w: HUGOLAND_STORAGE_KEY must not be empty", ErrInvalidConfig)
	}
	if c.AutosaveInterval <= 0 {
		return fmt.Errorf("%w: HUGOLAND_AUTOSAVE_INTERVAL must be positive", ErrInvalidConfig)
	}
	return nil
}
