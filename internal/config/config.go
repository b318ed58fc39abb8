// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the CLI settings that are not positional arguments.
type Config struct {
	// Unit is the default chunk size; a fourth positional argument wins.
	Unit string `env:"RANDKEY_UNIT" envDefault:"1048576"`
	// Workers bounds per-class parallelism. 0 means GOMAXPROCS.
	Workers int `env:"RANDKEY_WORKERS" envDefault:"0"`
	// Seed makes output reproducible when nonzero.
	Seed     uint64 `env:"RANDKEY_SEED" envDefault:"0"`
	LogLevel string `env:"RANDKEY_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the Config read from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level maps LogLevel to a slog level.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}
