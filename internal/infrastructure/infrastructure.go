// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies (lifecycle, logging, metrics) that modules require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/JaimeStill/controller-examples/internal/config"
	"github.com/JaimeStill/controller-examples/pkg/lifecycle"
	"github.com/JaimeStill/controller-examples/pkg/logging"
	"github.com/JaimeStill/controller-examples/pkg/middleware"
)

// Infrastructure holds the core systems shared by all modules.
// Metrics is nil when metrics are disabled.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Registry  *prometheus.Registry
	Metrics   *middleware.Metrics
}

// New creates an Infrastructure from finalized configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	return NewWithLogger(cfg, logging.New(&cfg.Logging))
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	infra := &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Registry:  prometheus.NewRegistry(),
	}

	if !cfg.Metrics.Enabled {
		return infra, nil
	}

	if err := infra.Registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, fmt.Errorf("register go collector: %w", err)
	}
	if err := infra.Registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
		Namespace: cfg.Metrics.Namespace,
	})); err != nil {
		return nil, fmt.Errorf("register process collector: %w", err)
	}

	infra.Metrics = middleware.NewMetrics(infra.Registry, cfg.Metrics.Namespace)
	return infra, nil
}

// Start registers infrastructure hooks with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	i.Lifecycle.OnStartup(func() {
		i.Logger.Debug("infrastructure started")
	})

	i.Lifecycle.OnShutdown(func() {
		<-i.Lifecycle.Context().Done()
		i.Logger.Info("infrastructure stopped")
	})

	return nil
}
