package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	EnvMetricsEnabled   = "METRICS_ENABLED"
	EnvMetricsPath      = "METRICS_PATH"
	EnvMetricsNamespace = "METRICS_NAMESPACE"
)

// MetricsConfig controls the Prometheus exposition endpoint.
type MetricsConfig struct {
	Enabled   bool   `toml:"enabled"`
	Path      string `toml:"path"`
	Namespace string `toml:"namespace"`
}

func (c *MetricsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge can only enable metrics; use METRICS_ENABLED=false to turn them off.
func (c *MetricsConfig) Merge(overlay *MetricsConfig) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	if overlay.Namespace != "" {
		c.Namespace = overlay.Namespace
	}
}

func (c *MetricsConfig) loadDefaults() {
	if c.Path == "" {
		c.Path = "/metrics"
	}
	if c.Namespace == "" {
		c.Namespace = "controller_examples"
	}
}

func (c *MetricsConfig) loadEnv() {
	if v := os.Getenv(EnvMetricsEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvMetricsPath); v != "" {
		c.Path = v
	}
	if v := os.Getenv(EnvMetricsNamespace); v != "" {
		c.Namespace = v
	}
}

func (c *MetricsConfig) validate() error {
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("path %q must start with /", c.Path)
	}
	if strings.ContainsAny(c.Namespace, "-. ") {
		return fmt.Errorf("namespace %q must be a valid metric name prefix", c.Namespace)
	}
	return nil
}
