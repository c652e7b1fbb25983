package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/netutil"
)

// Start runs the HTTP server until it fails or Shutdown is called.
func (s *Server) Start() error {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		return err
	}

	// WriteTimeout is generous: chunked zip renders of large catalogs can
	// take a while to stream back
	addr := fmt.Sprintf(":%s", s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	// cap concurrent connections so a bulk-upload spree cannot exhaust fds
	listener = netutil.LimitListener(listener, s.config.MaxConcurrentConnections)

	slog.Info("HTTP server starting",
		"addr", addr,
		"max_connections", s.config.MaxConcurrentConnections,
	)

	if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	slog.Info("Initiating graceful shutdown")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	slog.Info("Graceful shutdown completed")
	return nil
}
