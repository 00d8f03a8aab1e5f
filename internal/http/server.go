// Package http serves the tracker's views and edits as a small JSON API for
// local front ends. It binds to loopback by default and keeps no state of its
// own beyond the App it wraps.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"budgetbook/internal/app"
	"budgetbook/internal/trace"
)

// Server wraps an App behind a JSON API. The App is not safe for concurrent
// use, so every handler holds mu while it touches it.
type Server struct {
	http.Server
	app         *app.App
	logger      *slog.Logger
	rateLimiter *rateLimiter

	mu           sync.Mutex
	shutdownOnce sync.Once
}

// NewServer configures routes, returning a ready-to-run server.
func NewServer(addr string, a *app.App, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		app:         a,
		logger:      logger.With("component", "http"),
		rateLimiter: newRateLimiter(60, 5*time.Minute),
	}

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /api/dashboard", s.wrap(s.handleDashboard))
	mux.HandleFunc("GET /api/history", s.wrap(s.handleHistory))
	mux.HandleFunc("GET /api/transactions", s.wrap(s.handleListTransactions))
	mux.HandleFunc("POST /api/transactions", s.wrap(s.handleCreateTransaction))
	mux.HandleFunc("PUT /api/transactions/{id}", s.wrap(s.handleUpdateTransaction))
	mux.HandleFunc("DELETE /api/transactions/{id}", s.wrap(s.handleDeleteTransaction))
	mux.HandleFunc("GET /api/categories", s.wrap(s.handleListCategories))
	mux.HandleFunc("GET /api/budgets/{month}", s.wrap(s.handleGetBudget))
	mux.HandleFunc("PUT /api/budgets/{month}", s.wrap(s.handleSetBudget))
	mux.HandleFunc("GET /api/events", s.wrap(s.handleListEvents))
	mux.HandleFunc("GET /api/export", s.wrap(s.handleExport))

	return s
}

// Shutdown stops the rate limiter cleanup and then the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		s.rateLimiter.stop()
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}

// wrap adds the operation id, rate limiting on writes, security headers and
// request logging.
func (s *Server) wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		clientIP := extractClientIP(r)

		ctx, requestID := trace.WithOperationID(r.Context())
		r = r.WithContext(ctx)

		if r.Method != http.MethodGet && !s.rateLimiter.allow(clientIP) {
			s.logger.WarnContext(ctx, "Rate limit exceeded",
				"request_id", requestID,
				"client_ip", clientIP,
				"method", r.Method,
				"url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeJSON(w, http.StatusTooManyRequests, errorBody{Error: "rate limit exceeded"})
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		level := slog.LevelDebug
		if rw.statusCode >= 500 {
			level = slog.LevelError
		} else if rw.statusCode >= 400 {
			level = slog.LevelWarn
		}
		s.logger.Log(ctx, level, "Request completed",
			"request_id", requestID,
			"method", r.Method,
			"url", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", clientIP)
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
