package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/JaimeStill/controller-examples/pkg/middleware"
	"github.com/JaimeStill/controller-examples/pkg/openapi"
)

const (
	EnvAPIBasePath        = "API_BASE_PATH"
	EnvAPIRequestIDHeader = "API_REQUEST_ID_HEADER"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "API_CORS_ENABLED",
	Origins:          "API_CORS_ORIGINS",
	AllowedMethods:   "API_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "API_CORS_ALLOWED_HEADERS",
	AllowCredentials: "API_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "API_CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "API_OPENAPI_TITLE",
	Description: "API_OPENAPI_DESCRIPTION",
	Output:      "API_OPENAPI_OUTPUT",
}

// APIConfig configures the module that hosts the example controllers.
type APIConfig struct {
	BasePath        string                `toml:"base_path"`
	RequestIDHeader string                `toml:"request_id_header"`
	CORS            middleware.CORSConfig `toml:"cors"`
	OpenAPI         openapi.Config        `toml:"openapi"`
}

func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := validateBasePath(c.BasePath); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.RequestIDHeader != "" {
		c.RequestIDHeader = overlay.RequestIDHeader
	}
	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.RequestIDHeader == "" {
		c.RequestIDHeader = middleware.DefaultRequestIDHeader
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAPIRequestIDHeader); v != "" {
		c.RequestIDHeader = v
	}
}

// validateBasePath mirrors the module prefix rules: a single segment with a leading slash.
func validateBasePath(path string) error {
	if !strings.HasPrefix(path, "/") || len(path) < 2 {
		return fmt.Errorf("base_path %q must start with / and name a segment", path)
	}
	if strings.Contains(path[1:], "/") {
		return fmt.Errorf("base_path %q must be a single path segment", path)
	}
	return nil
}
