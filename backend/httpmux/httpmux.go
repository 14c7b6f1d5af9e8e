// Package httpmux adapts a net/http ServeMux as a docuhook backend.
package httpmux

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/xraph/docuhook/backend"
	"github.com/xraph/docuhook/payload"
	"github.com/xraph/docuhook/signature"
)

const maxBodySize = 1 << 20 // 1MB cap on inbound webhook bodies

// Adapter serves docuhook webhook routes on a stdlib ServeMux.
type Adapter struct {
	mux    *http.ServeMux
	logger *slog.Logger
	secret string
	async  bool
}

// Option configures the adapter.
type Option func(*Adapter)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) { a.logger = logger }
}

// WithSecret enables shared-token verification: requests missing the
// X-Docuhook-Token header, or carrying a wrong value, are rejected with 401
// before the handler runs. Must match the secret configured on the Hooks
// instance so the synthesized webhook actions send it.
func WithSecret(secret string) Option {
	return func(a *Adapter) { a.secret = secret }
}

// WithAsync makes the adapter acknowledge deliveries with 202 immediately
// and run the handler in a background goroutine, mirroring frameworks that
// must answer webhooks fast. Handler errors are then only logged.
func WithAsync() Option {
	return func(a *Adapter) { a.async = true }
}

// New creates an adapter with its own ServeMux.
func New(opts ...Option) *Adapter {
	a := &Adapter{
		mux:    http.NewServeMux(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RegisterRoute implements backend.Backend.
func (a *Adapter) RegisterRoute(path string, handler backend.JSONHandler) {
	a.logger.Info("registering webhook route", "path", path)
	a.mux.HandleFunc("POST "+path, a.webhook(handler))
}

// ServeHTTP implements http.Handler.
func (a *Adapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.withMiddleware(a.mux).ServeHTTP(w, r)
}

func (a *Adapter) webhook(handler backend.JSONHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if a.secret != "" && !signature.Verify(a.secret, r.Header.Get(signature.TokenHeader)) {
			writeError(w, http.StatusUnauthorized, "invalid webhook token")
			return
		}

		defer r.Body.Close()
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			writeError(w, http.StatusBadRequest, "unreadable body")
			return
		}

		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		if a.async {
			// Detach from the request context so the callback survives the
			// early 202 response.
			ctx := context.WithoutCancel(r.Context())
			go func() {
				if err := handler(ctx, body); err != nil {
					a.logger.ErrorContext(ctx, "webhook handler failed",
						"path", r.URL.Path, "error", err)
				}
			}()
			writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
			return
		}

		if err := handler(r.Context(), body); err != nil {
			var payloadErr *payload.Error
			if errors.As(err, &payloadErr) {
				writeError(w, http.StatusBadRequest, payloadErr.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (a *Adapter) withMiddleware(next http.Handler) http.Handler {
	return a.panicRecovery(a.logging(next))
}

func (a *Adapter) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		a.logger.Info("webhook request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (a *Adapter) panicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				a.logger.Error("panic recovered",
					"error", rec,
					"stack", string(debug.Stack()),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best effort
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
