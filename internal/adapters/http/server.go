// Package http exposes the assistant over a small JSON API.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/daneel-ai/daneel"
	present "github.com/daneel-ai/daneel/internal/presentation/graph"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server wires the Assistant into HTTP handlers.
type Server struct {
	assistant *daneel.Assistant
	logger    *slog.Logger
	metrics   http.Handler
}

type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetricsHandler mounts a metrics endpoint (e.g. promhttp.Handler())
// at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates the HTTP handler for the assistant.
func NewHandler(assistant *daneel.Assistant, opts ...Option) http.Handler {
	s := &Server{
		assistant: assistant,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/assistant", s.handleInteract)
	r.Get("/graph", s.handleGraph)
	r.Get("/graph/mermaid", s.handleGraphMermaid)
	r.Get("/tools", s.handleTools)
	r.Get("/healthz", s.handleHealth)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics)
	}

	return r
}

// Serve runs the handler until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *slog.Logger) error {
	httpServer := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

// handleInteract handles the POST /assistant request.
func (s *Server) handleInteract(w http.ResponseWriter, r *http.Request) {
	var req daneel.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.RawInput == "" {
		http.Error(w, "raw_input is required", http.StatusBadRequest)
		return
	}

	resp, err := s.assistant.Handle(r.Context(), req)
	if err != nil {
		s.logger.Error("interaction failed", "err", err)
		http.Error(w, fmt.Sprintf("Interaction error: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, s.logger, resp)
}

// handleGraph handles the GET /graph request.
func (s *Server) handleGraph(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.logger, s.assistant.Definition().Nodes())
}

// handleGraphMermaid handles the GET /graph/mermaid request.
func (s *Server) handleGraphMermaid(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, present.GenerateMermaid(s.assistant.Definition().Nodes(), nil))
}

// handleTools handles the GET /tools request.
func (s *Server) handleTools(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.logger, s.assistant.Tools().ListTools())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok", "version": daneel.Version})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "err", err)
	}
}
