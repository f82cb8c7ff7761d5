package main

import (
	"time"

	"github.com/JaimeStill/controller-examples/internal/config"
	"github.com/JaimeStill/controller-examples/internal/infrastructure"
)

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra   *infrastructure.Infrastructure
	modules *Modules
	http    *httpServer
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}
	return newServer(cfg, infra)
}

func newServer(cfg *config.Config, infra *infrastructure.Infrastructure) (*Server, error) {
	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra, cfg)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"modules", router.Modules(),
	)

	return &Server{
		infra:   infra,
		modules: modules,
		http:    newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

// Start begins all subsystems and returns once they are registered with the lifecycle.
// Readiness is reported after every startup hook completes.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown gracefully stops all subsystems within timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
