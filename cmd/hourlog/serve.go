// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fatih/color"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/olegiv/hourlog-go/internal/handler"
	"github.com/olegiv/hourlog-go/internal/handler/api"
	"github.com/olegiv/hourlog-go/internal/middleware"
	"github.com/olegiv/hourlog-go/internal/store"
	"github.com/olegiv/hourlog-go/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the hypermedia API",
	Long: `Open and migrate the database, optionally load the sample data set
(HLOG_DO_SEED=true), then serve the API until SIGINT or SIGTERM.

The API entry point is GET /api. Health probes live under /health.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		db, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer closeStore(db)

		if cfg.DoSeed {
			if err := store.Seed(ctx, db); err != nil {
				return fmt.Errorf("seeding database: %w", err)
			}
		}

		info := version.Get()
		srv := &http.Server{
			Addr:              cfg.ServerAddr(),
			Handler:           newRouter(db, cfg.Dialect(), info),
			ReadTimeout:       handler.ReadTimeout,
			ReadHeaderTimeout: handler.ReadHeaderTimeout,
			WriteTimeout:      handler.WriteTimeout,
			IdleTimeout:       handler.IdleTimeout,
			MaxHeaderBytes:    handler.MaxHeaderBytes,
		}

		errCh := make(chan error, 1)
		go func() {
			slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", info.Version)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()
		color.Green("✓ Listening on http://%s/api", cfg.ServerAddr())

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		slog.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), handler.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}

		slog.Info("server stopped")
		return nil
	},
}

// newRouter wires the middleware stack, the health probes and the API.
func newRouter(db *sql.DB, dialect store.Dialect, info version.Info) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.StripTrailingSlash)
	r.Use(middleware.RequestPath)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	handler.NewHealthHandler(db, dialect, info).Routes(r)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(handler.RequestTimeout))
		api.NewHandler(db).Routes(r)
	})

	return r
}
