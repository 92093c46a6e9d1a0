// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/olegiv/hourlog-go/internal/store"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBDriver   string `env:"HLOG_DB_DRIVER" envDefault:"sqlite"`
	DBPath     string `env:"HLOG_DB_PATH" envDefault:"./data/hourlog.db"`
	DBDSN      string `env:"HLOG_DB_DSN"` // MySQL DSN, required when DBDriver is mysql
	ServerHost string `env:"HLOG_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"HLOG_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"HLOG_ENV" envDefault:"development"`
	LogLevel   string `env:"HLOG_LOG_LEVEL" envDefault:"info"`

	// Seeding configuration
	DoSeed bool `env:"HLOG_DO_SEED" envDefault:"false"` // Insert the sample data set on serve
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// Dialect returns the parsed store dialect. Load has already validated it.
func (c Config) Dialect() store.Dialect {
	d, _ := store.ParseDialect(c.DBDriver)
	return d
}

// DBTarget returns what to open for the configured dialect: the SQLite file
// path or the MySQL DSN.
func (c Config) DBTarget() string {
	if c.Dialect() == store.DialectMySQL {
		return c.DBDSN
	}
	return c.DBPath
}

// SlogLevel maps LogLevel to a slog level.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadDotEnv loads .env files if present. Variables already set in the
// environment win.
func LoadDotEnv(files ...string) {
	for _, f := range files {
		if err := godotenv.Load(f); err == nil {
			slog.Debug("loaded env file", "file", f)
		}
	}
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	dialect, err := store.ParseDialect(cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("HLOG_DB_DRIVER: %w", err)
	}
	if dialect == store.DialectMySQL && cfg.DBDSN == "" {
		return nil, fmt.Errorf("HLOG_DB_DSN is required when HLOG_DB_DRIVER is %q", cfg.DBDriver)
	}

	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("HLOG_SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("HLOG_LOG_LEVEL must be one of debug, info, warn, error; got %q", cfg.LogLevel)
	}

	return cfg, nil
}
