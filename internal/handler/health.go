// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler holds the operational HTTP endpoints that sit beside the
// hypermedia API.
package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/hourlog-go/internal/store"
	"github.com/olegiv/hourlog-go/internal/version"
)

// probeTimeout bounds each store probe.
const probeTimeout = 2 * time.Second

// Probe states.
const (
	StateHealthy   = "healthy"
	StateUnhealthy = "unhealthy"
	StateDegraded  = "degraded"
)

// HealthHandler serves the liveness, readiness and status probes.
type HealthHandler struct {
	db        *sql.DB
	dialect   store.Dialect
	schema    *store.Schema
	schemaErr error
	build     version.Info
	started   time.Time
}

// NewHealthHandler creates a health handler for the given store.
func NewHealthHandler(db *sql.DB, dialect store.Dialect, info version.Info) *HealthHandler {
	h := &HealthHandler{db: db, dialect: dialect, build: info, started: time.Now()}
	h.schema, h.schemaErr = store.NewSchema(db, dialect)
	return h
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   string           `json:"version"`
	Checks    map[string]Check `json:"checks"`
	System    *SystemInfo      `json:"system,omitempty"`
}

// Check is the outcome of one probe.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

func (c Check) ok() bool { return c.Status == StateHealthy }

// SystemInfo is included with ?verbose=true.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumGoroutine int    `json:"num_goroutines"`
	NumCPU       int    `json:"num_cpus"`
	MemAlloc     string `json:"mem_alloc"`
	MemSys       string `json:"mem_sys"`
	OpenConns    int    `json:"db_open_connections"`
	InUseConns   int    `json:"db_in_use_connections"`
}

type probe struct {
	name string
	run  func(context.Context) error
	// describe renders the success message.
	describe func() string
}

func (h *HealthHandler) probes() []probe {
	var schema int64
	return []probe{
		{
			name:     "database",
			run:      h.db.PingContext,
			describe: func() string { return fmt.Sprintf("Connected (%s)", h.dialect) },
		},
		{
			name: "schema",
			run: func(ctx context.Context) error {
				if h.schemaErr != nil {
					return h.schemaErr
				}
				v, err := h.schema.Version(ctx)
				if err != nil {
					return err
				}
				if v < 1 {
					return fmt.Errorf("no migrations applied")
				}
				schema = v
				return nil
			},
			describe: func() string { return fmt.Sprintf("Migration %d applied", schema) },
		},
	}
}

// runProbes executes every probe in order. The second result is the first
// failing probe's name, or "" when all passed.
func (h *HealthHandler) runProbes(ctx context.Context) (map[string]Check, string) {
	checks := make(map[string]Check)
	failed := ""
	for _, p := range h.probes() {
		c := runProbe(ctx, p)
		checks[p.name] = c
		if !c.ok() && failed == "" {
			failed = p.name
		}
	}
	return checks, failed
}

func runProbe(ctx context.Context, p probe) Check {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	err := p.run(ctx)
	c := Check{Status: StateHealthy, Latency: time.Since(start).String()}
	if err != nil {
		c.Status = StateUnhealthy
		c.Message = err.Error()
		return c
	}
	c.Message = p.describe()
	return c
}

// Routes registers the health endpoints on r.
func (h *HealthHandler) Routes(r chi.Router) {
	r.Route(RouteHealth, func(r chi.Router) {
		r.Get("/", h.Health)
		r.Get(RouteSuffixLive, h.Liveness)
		r.Get(RouteSuffixReady, h.Readiness)
	})
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks, failed := h.runProbes(r.Context())

	status := HealthStatus{
		Status:    StateHealthy,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.started).Round(time.Second).String(),
		Version:   h.build.Version,
		Checks:    checks,
	}
	if status.Version == "" {
		status.Version = "dev"
	}
	if r.URL.Query().Get("verbose") == "true" {
		status.System = h.systemInfo()
	}

	code := http.StatusOK
	if failed != "" {
		status.Status = StateDegraded
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}

// Liveness handles GET /health/live. It never touches the store.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// Readiness handles GET /health/ready.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	checks, failed := h.runProbes(r.Context())
	if failed == "" {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
		return
	}

	writeJSON(w, http.StatusServiceUnavailable, map[string]string{
		"status":  "not_ready",
		"check":   failed,
		"message": checks[failed].Message,
	})
}

func (h *HealthHandler) systemInfo() *SystemInfo {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	pool := h.db.Stats()

	return &SystemInfo{
		GoVersion:    runtime.Version(),
		NumGoroutine: runtime.NumGoroutine(),
		NumCPU:       runtime.NumCPU(),
		MemAlloc:     formatBytes(m.Alloc),
		MemSys:       formatBytes(m.Sys),
		OpenConns:    pool.OpenConnections,
		InUseConns:   pool.InUse,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// formatBytes renders a byte count with a binary unit.
func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}
