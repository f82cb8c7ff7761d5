package api

import (
	"github.com/JaimeStill/controller-examples/internal/config"
	"github.com/JaimeStill/controller-examples/internal/infrastructure"
	"github.com/JaimeStill/controller-examples/pkg/logging"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	BasePath        string
	RequestIDHeader string
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    logging.Scoped(infra.Logger, "api"),
			Registry:  infra.Registry,
			Metrics:   infra.Metrics,
		},
		BasePath:        cfg.API.BasePath,
		RequestIDHeader: cfg.API.RequestIDHeader,
	}
}
