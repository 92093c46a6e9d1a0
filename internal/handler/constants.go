package handler

import "time"

// Route pattern constants for chi router registration.
const (
	// RouteHealth is the health check route.
	RouteHealth = "/health"
	// RouteSuffixLive is the suffix for the liveness probe.
	RouteSuffixLive = "/live"
	// RouteSuffixReady is the suffix for the readiness probe.
	RouteSuffixReady = "/ready"
)

// Server timeouts.
const (
	ReadTimeout       = 15 * time.Second
	ReadHeaderTimeout = 5 * time.Second
	WriteTimeout      = 30 * time.Second
	IdleTimeout       = 60 * time.Second
	// RequestTimeout bounds a single API request, store work included.
	RequestTimeout = 20 * time.Second
	// ShutdownTimeout bounds the graceful drain on SIGINT/SIGTERM.
	ShutdownTimeout = 30 * time.Second
	// MaxHeaderBytes caps request header size.
	MaxHeaderBytes = 1 << 20
)
