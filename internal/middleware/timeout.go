package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/olegiv/hourlog-go/internal/hypermedia"
	"github.com/olegiv/hourlog-go/internal/mason"
)

// Timeout wraps an http.Handler and applies a request timeout.
// If the handler has not written anything when the timeout fires, a 503
// Mason error document is sent and later writes by the handler are dropped.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			done := make(chan struct{})
			tw := &timeoutWriter{ResponseWriter: w, header: w.Header().Clone()}

			// A panic is handed back to this goroutine so the outer
			// Recoverer sees it. After the deadline it can only be logged.
			var panicked any
			go func() {
				defer close(done)
				defer func() {
					p := recover()
					if p == nil {
						return
					}
					tw.mu.Lock()
					late := tw.timedOut
					tw.mu.Unlock()
					if late {
						slog.ErrorContext(r.Context(), "handler panicked after timeout", "panic", p)
						return
					}
					panicked = p
				}()
				next.ServeHTTP(tw, r.WithContext(ctx))
			}()

			select {
			case <-done:
				if panicked != nil {
					panic(panicked)
				}
				return
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				if tw.wroteHeader {
					return
				}

				slog.WarnContext(r.Context(), "request timed out", "timeout", timeout)
				doc := hypermedia.NewErrorDocument(r.URL.Path, "Service unavailable",
					"The request did not complete in time")
				w.Header().Set("Content-Type", mason.MediaType)
				w.WriteHeader(http.StatusServiceUnavailable)
				_ = json.NewEncoder(w).Encode(doc)
			}
		})
	}
}

// timeoutWriter buffers header changes until the first write and drops
// everything written after the deadline.
type timeoutWriter struct {
	http.ResponseWriter
	mu          sync.Mutex
	header      http.Header
	wroteHeader bool
	timedOut    bool
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	tw.writeHeaderLocked(code)
}

func (tw *timeoutWriter) writeHeaderLocked(code int) {
	if tw.wroteHeader || tw.timedOut {
		return
	}
	tw.wroteHeader = true
	dst := tw.ResponseWriter.Header()
	for k, v := range tw.header {
		dst[k] = v
	}
	tw.ResponseWriter.WriteHeader(code)
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()
	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	tw.writeHeaderLocked(http.StatusOK)
	return tw.ResponseWriter.Write(b)
}
