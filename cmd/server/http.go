package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/JaimeStill/controller-examples/internal/config"
	"github.com/JaimeStill/controller-examples/pkg/lifecycle"
)

type httpServer struct {
	http            *http.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration
	listener        net.Listener
}

func newHTTPServer(cfg *config.ServerConfig, handler http.Handler, logger *slog.Logger) *httpServer {
	return &httpServer{
		http: &http.Server{
			Addr:           cfg.Addr(),
			Handler:        handler,
			ReadTimeout:    cfg.ReadTimeoutDuration(),
			WriteTimeout:   cfg.WriteTimeoutDuration(),
			IdleTimeout:    cfg.IdleTimeoutDuration(),
			MaxHeaderBytes: cfg.MaxHeaderBytes(),
		},
		logger:          logger,
		shutdownTimeout: cfg.ShutdownTimeoutDuration(),
	}
}

// Start binds the listener, serves in the background, and registers graceful
// shutdown with lc. Bind errors are returned directly.
func (s *httpServer) Start(lc *lifecycle.Coordinator) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	s.listener = ln

	lc.OnStartup(func() {
		s.logger.Info("server listening", "addr", s.Addr())
	})

	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.http.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", "error", err)
		} else {
			s.logger.Info("server shutdown complete")
		}
	})

	return nil
}

// Addr returns the bound listener address, or the configured address before Start.
func (s *httpServer) Addr() string {
	if s.listener == nil {
		return s.http.Addr
	}
	return s.listener.Addr().String()
}
