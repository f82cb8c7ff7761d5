package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaimeStill/controller-examples/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	if err := cfg.Finalize(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		slog.Error("failed to initialize server", "error", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
}
