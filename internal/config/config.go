// Package config provides application configuration management with support for
// TOML files, environment variable overrides, and configuration overlays.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/controller-examples/pkg/logging"
)

const (
	// BaseConfigFile is the primary configuration file name.
	BaseConfigFile = "config.toml"

	// OverlayConfigPattern is the file name pattern for environment-specific overlays.
	OverlayConfigPattern = "config.%s.toml"

	// EnvServiceEnv selects the configuration overlay.
	EnvServiceEnv = "SERVICE_ENV"

	EnvServiceVersion         = "SERVICE_VERSION"
	EnvServiceDomain          = "SERVICE_DOMAIN"
	EnvServiceShutdownTimeout = "SERVICE_SHUTDOWN_TIMEOUT"
)

var loggingEnv = &logging.Env{
	Level:  "LOGGING_LEVEL",
	Format: "LOGGING_FORMAT",
}

// Config represents the root service configuration.
type Config struct {
	Server          ServerConfig   `toml:"server"`
	Logging         logging.Config `toml:"logging"`
	API             APIConfig      `toml:"api"`
	Docs            DocsConfig     `toml:"docs"`
	Metrics         MetricsConfig  `toml:"metrics"`
	Version         string         `toml:"version"`
	Domain          string         `toml:"domain"`
	ShutdownTimeout string         `toml:"shutdown_timeout"`
}

// Env returns the overlay environment name, or "" when unset.
func (c *Config) Env() string {
	return os.Getenv(EnvServiceEnv)
}

func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads configuration from the working directory.
func Load() (*Config, error) {
	return LoadFrom(".")
}

// LoadFrom reads the base configuration file in dir and applies the overlay
// selected by SERVICE_ENV, if present. The result is not finalized.
func LoadFrom(dir string) (*Config, error) {
	cfg, err := load(filepath.Join(dir, BaseConfigFile))
	if err != nil {
		return nil, err
	}

	if path := overlayPath(dir); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}
	return cfg, nil
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Logging.Finalize(loggingEnv); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Docs.Finalize(); err != nil {
		return fmt.Errorf("docs: %w", err)
	}
	if err := c.Metrics.Finalize(); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return c.validateMounts()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *Config) Merge(overlay *Config) {
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	if overlay.Domain != "" {
		c.Domain = overlay.Domain
	}
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	c.Server.Merge(&overlay.Server)
	c.Logging.Merge(&overlay.Logging)
	c.API.Merge(&overlay.API)
	c.Docs.Merge(&overlay.Docs)
	c.Metrics.Merge(&overlay.Metrics)
}

func (c *Config) loadDefaults() {
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvServiceVersion); v != "" {
		c.Version = v
	}
	if v := os.Getenv(EnvServiceDomain); v != "" {
		c.Domain = v
	}
	if v := os.Getenv(EnvServiceShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

// validateMounts rejects paths that would shadow each other on the router.
// Modules claim their whole first segment.
func (c *Config) validateMounts() error {
	if c.Docs.Enabled && c.Docs.BasePath == c.API.BasePath {
		return fmt.Errorf("docs base_path %q collides with api base_path", c.Docs.BasePath)
	}
	if c.Metrics.Enabled {
		segment := "/" + strings.SplitN(strings.TrimPrefix(c.Metrics.Path, "/"), "/", 2)[0]
		if segment == c.API.BasePath || (c.Docs.Enabled && segment == c.Docs.BasePath) {
			return fmt.Errorf("metrics path %q is shadowed by a module", c.Metrics.Path)
		}
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath(dir string) string {
	env := os.Getenv(EnvServiceEnv)
	if env == "" {
		return ""
	}
	path := filepath.Join(dir, fmt.Sprintf(OverlayConfigPattern, env))
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
