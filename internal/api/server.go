// Package api exposes the cloud pipeline over HTTP: a JSON endpoint for
// the front-end visualizer plus static asset serving.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"codecloud/internal/scan"
)

// Server represents the HTTP server
type Server struct {
	router    *http.ServeMux
	server    *http.Server
	addr      string
	assetsDir string
	logger    *slog.Logger
	engine    *scan.Engine
}

// NewServer creates a new HTTP server instance
func NewServer(addr, assetsDir string, engine *scan.Engine, logger *slog.Logger) *Server {
	s := &Server{
		addr:      addr,
		assetsDir: assetsDir,
		logger:    logger,
		engine:    engine,
		router:    http.NewServeMux(),
	}

	s.registerRoutes()

	handler := s.applyMiddleware(s.router)
	s.server = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute, // a scan runs to completion inside the request
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", "addr", s.addr)

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	s.logger.Info("Server shut down successfully")
	return nil
}

// ServeHTTP implements http.Handler for testing
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.server.Handler.ServeHTTP(w, r)
}

// applyMiddleware wraps the handler with middleware in the correct order
func (s *Server) applyMiddleware(handler http.Handler) http.Handler {
	// Apply middleware in reverse order (last one wraps first)
	handler = RecoveryMiddleware(s.logger)(handler)
	handler = LoggingMiddleware(s.logger)(handler)
	handler = GzipMiddleware()(handler)
	handler = RequestIDMiddleware()(handler)
	handler = CORSMiddleware()(handler)
	return handler
}
