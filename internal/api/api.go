// Package api assembles the API module: domain systems, their routes, the
// OpenAPI document, and the module middleware chain.
package api

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/controller-examples/internal/config"
	"github.com/JaimeStill/controller-examples/internal/infrastructure"
	"github.com/JaimeStill/controller-examples/pkg/middleware"
	"github.com/JaimeStill/controller-examples/pkg/module"
	"github.com/JaimeStill/controller-examples/pkg/openapi"
)

// SpecPath is where the module serves its OpenAPI document, relative to its base path.
const SpecPath = "/openapi.json"

func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.Domain)

	mux := http.NewServeMux()
	if err := registerRoutes(mux, spec, runtime, domain); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi: %w", err)
	}
	mux.HandleFunc("GET "+SpecPath, openapi.ServeSpec(specBytes))

	if out := cfg.API.OpenAPI.Output; out != "" {
		if err := openapi.WriteJSON(spec, out); err != nil {
			return nil, err
		}
		runtime.Logger.Info("openapi document written", "path", out)
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.RequestID(runtime.RequestIDHeader))
	m.Use(middleware.Logger(runtime.Logger))
	if runtime.Metrics != nil {
		m.Use(runtime.Metrics.Middleware("api"))
	}
	m.Use(middleware.CORS(&cfg.API.CORS))

	return m, nil
}
