package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `env:"SERVICE_NAME"   envDefault:"agora"`
	HTTPPort    string `env:"HTTP_PORT"      envDefault:"8080"`
	PostgresDSN string `env:"POSTGRES_DSN"`

	// InMemory swaps the Postgres repositories for in-process stores; meant
	// for local runs and smoke tests, never production.
	InMemory bool `env:"FEED_IN_MEMORY" envDefault:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
