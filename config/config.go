// Package config reads the engine's ambient runtime settings from the
// environment.
package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"hermannm.dev/wrap"
)

// EngineConfig is the one setting this engine's ambient logging needs: how
// verbose devlog should be. There is no persisted state and no
// network-facing driver to configure (see spec.md §5/§6), so unlike the
// teacher's Config there is no per-backend branching here.
type EngineConfig struct {
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
}

// ReadFromEnv loads a local .env file if present, then parses EngineConfig
// from the process environment.
func ReadFromEnv() (EngineConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return EngineConfig{}, wrap.Error(err, "failed to load .env file")
	}

	var config EngineConfig
	if err := env.ParseWithOptions(&config, env.Options{RequiredIfNoDef: true}); err != nil {
		return EngineConfig{}, wrap.Error(err, "failed to parse engine config from env")
	}

	return config, nil
}
