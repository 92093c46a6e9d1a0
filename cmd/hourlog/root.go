// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/olegiv/hourlog-go/internal/config"
	"github.com/olegiv/hourlog-go/internal/logging"
	"github.com/olegiv/hourlog-go/internal/store"
)

var (
	cfg      *config.Config
	envFiles []string
)

var rootCmd = &cobra.Command{
	Use:   "hourlog",
	Short: "Hypermedia API for logging hours spent on activities",
	Long: `hourlog serves a Mason hypermedia API for recording time spent on
activities. Categories group activities, users own logs and time reports.

QUICK START:

  $ hourlog migrate          # Create the schema
  $ hourlog seed             # Load the sample data set
  $ hourlog serve            # Serve the API on HLOG_SERVER_HOST:HLOG_SERVER_PORT

CONFIGURATION:

  HLOG_DB_DRIVER     sqlite or mysql (default: sqlite)
  HLOG_DB_PATH       SQLite database path (default: ./data/hourlog.db)
  HLOG_DB_DSN        MySQL DSN, required when HLOG_DB_DRIVER=mysql
  HLOG_SERVER_HOST   Listen host (default: localhost)
  HLOG_SERVER_PORT   Listen port (default: 8080)
  HLOG_ENV           development|production (default: development)
  HLOG_LOG_LEVEL     debug|info|warn|error (default: info)
  HLOG_DO_SEED       Load the sample data set on serve (default: false)

Variables may also be given in a .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		config.LoadDotEnv(envFiles...)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		slog.SetDefault(logging.New(os.Stdout, cfg.SlogLevel(), cfg.IsDevelopment()))
		return nil
	},
}

// Execute runs the root command. The command context is cancelled on
// SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"},
		"dotenv files to load before reading the environment")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

// openStore opens the configured database and applies pending migrations.
func openStore(c *config.Config) (*sql.DB, error) {
	dialect := c.Dialect()

	if dialect == store.DialectSQLite {
		if err := os.MkdirAll(filepath.Dir(c.DBPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	slog.Info("opening database", "driver", dialect)
	db, err := store.Open(dialect, c.DBTarget())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := store.Migrate(db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	return db, nil
}

func closeStore(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing database connection", "error", err)
	}
}
