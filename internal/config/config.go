// Package config loads server settings from the environment. An empty DSN
// switches the server onto the in-memory store, which is the dev default.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ListenAddr    string `env:"STORYFORGE_LISTEN_ADDR" envDefault:":8080"`
	DBDSN         string `env:"STORYFORGE_DB_DSN"`
	MigrationsDir string `env:"STORYFORGE_MIGRATIONS_DIR" envDefault:"migrations"`
	OutcomePath   string `env:"STORYFORGE_OUTCOME_TABLES"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
