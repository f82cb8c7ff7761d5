package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/JaimeStill/controller-examples/internal/api"
	"github.com/JaimeStill/controller-examples/internal/config"
	"github.com/JaimeStill/controller-examples/internal/infrastructure"
	"github.com/JaimeStill/controller-examples/pkg/lifecycle"
	"github.com/JaimeStill/controller-examples/pkg/logging"
	"github.com/JaimeStill/controller-examples/pkg/middleware"
	"github.com/JaimeStill/controller-examples/pkg/module"
	"github.com/JaimeStill/controller-examples/web/scalar"
)

// Modules holds the mounted modules. Scalar is nil when docs are disabled.
type Modules struct {
	API    *module.Module
	Scalar *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	modules := &Modules{API: apiModule}

	if cfg.Docs.Enabled {
		scalarModule, err := scalar.NewModule(
			cfg.Docs.BasePath,
			cfg.API.OpenAPI.Title,
			cfg.API.BasePath+api.SpecPath,
		)
		if err != nil {
			return nil, err
		}
		if infra.Metrics != nil {
			scalarModule.Use(infra.Metrics.Middleware("docs"))
		}
		scalarModule.Use(middleware.Logger(logging.Scoped(infra.Logger, "docs")))
		modules.Scalar = scalarModule
	}

	return modules, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	if m.Scalar != nil {
		router.Mount(m.Scalar)
	}
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		handleReadinessCheck(w, infra.Lifecycle)
	})

	if cfg.Metrics.Enabled {
		router.HandleNative("GET "+cfg.Metrics.Path, promhttp.HandlerFor(
			infra.Registry,
			promhttp.HandlerOpts{Registry: infra.Registry},
		).ServeHTTP)
	}

	return router
}

func handleReadinessCheck(w http.ResponseWriter, ready lifecycle.ReadinessChecker) {
	if !ready.Ready() {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("NOT READY"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("READY"))
}
