package config

import (
	"os"
	"strconv"
)

const (
	EnvDocsEnabled  = "DOCS_ENABLED"
	EnvDocsBasePath = "DOCS_BASE_PATH"
)

// DocsConfig controls the interactive API reference module.
type DocsConfig struct {
	Enabled  bool   `toml:"enabled"`
	BasePath string `toml:"base_path"`
}

func (c *DocsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if !c.Enabled {
		return nil
	}
	return validateBasePath(c.BasePath)
}

// Merge can only enable docs; use DOCS_ENABLED=false to turn them off.
func (c *DocsConfig) Merge(overlay *DocsConfig) {
	if overlay.Enabled {
		c.Enabled = true
	}
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
}

func (c *DocsConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/scalar"
	}
}

func (c *DocsConfig) loadEnv() {
	if v := os.Getenv(EnvDocsEnabled); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.Enabled = enabled
		}
	}
	if v := os.Getenv(EnvDocsBasePath); v != "" {
		c.BasePath = v
	}
}
