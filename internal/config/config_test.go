package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/controller-examples/internal/config"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoad_RepositoryConfig(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")
	t.Chdir("../..")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.API.BasePath != "/api" {
		t.Errorf("API.BasePath = %q, want /api", cfg.API.BasePath)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = false, want true")
	}
}

func TestLoadFrom_Overlay(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `shutdown_timeout = "30s"

[server]
host = "127.0.0.1"
port = 8080

[metrics]
enabled = true
`)
	writeConfig(t, dir, "config.test.toml", `shutdown_timeout = "60s"

[server]
port = 9090
`)
	t.Setenv(config.EnvServiceEnv, "test")

	cfg, err := config.LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if cfg.Env() != "test" {
		t.Errorf("Env() = %q, want test", cfg.Env())
	}
	if cfg.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q, want 60s", cfg.ShutdownTimeout)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want 127.0.0.1", cfg.Server.Host)
	}
	if !cfg.Metrics.Enabled {
		t.Error("overlay without [metrics] disabled metrics")
	}
}

func TestLoadFrom_MissingOverlayIgnored(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "config.toml", `version = "1.2.3"`)
	t.Setenv(config.EnvServiceEnv, "staging")

	cfg, err := config.LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", cfg.Version)
	}
}

func TestLoadFrom_Errors(t *testing.T) {
	t.Setenv(config.EnvServiceEnv, "")

	t.Run("missing base", func(t *testing.T) {
		if _, err := config.LoadFrom(t.TempDir()); err == nil {
			t.Error("expected error for missing config.toml")
		}
	})

	t.Run("invalid toml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "config.toml", `[server`)
		if _, err := config.LoadFrom(dir); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestFinalize_Defaults(t *testing.T) {
	cfg := &config.Config{}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want 30s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("API.BasePath = %q, want /api", cfg.API.BasePath)
	}
	if cfg.API.RequestIDHeader != "X-Request-ID" {
		t.Errorf("API.RequestIDHeader = %q, want X-Request-ID", cfg.API.RequestIDHeader)
	}
	if cfg.API.OpenAPI.Title == "" {
		t.Error("API.OpenAPI.Title not defaulted")
	}
	if cfg.Docs.BasePath != "/scalar" {
		t.Errorf("Docs.BasePath = %q, want /scalar", cfg.Docs.BasePath)
	}
	if cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics.Path = %q, want /metrics", cfg.Metrics.Path)
	}
}

func TestFinalize_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvServiceShutdownTimeout, "5s")
	t.Setenv("LOGGING_LEVEL", "debug")
	t.Setenv(config.EnvAPIBasePath, "/v1")
	t.Setenv("API_CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv(config.EnvMetricsEnabled, "false")

	cfg := &config.Config{Metrics: config.MetricsConfig{Enabled: true}}
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != 5*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v, want 5s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.API.BasePath != "/v1" {
		t.Errorf("API.BasePath = %q, want /v1", cfg.API.BasePath)
	}
	if len(cfg.API.CORS.Origins) != 2 {
		t.Errorf("API.CORS.Origins = %v, want 2 entries", cfg.API.CORS.Origins)
	}
	if cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = true, want false from env")
	}
}

func TestFinalize_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr string
	}{
		{
			name:    "shutdown timeout",
			cfg:     config.Config{ShutdownTimeout: "invalid"},
			wantErr: "shutdown_timeout",
		},
		{
			name:    "server port",
			cfg:     config.Config{Server: config.ServerConfig{Port: 70000}},
			wantErr: "server",
		},
		{
			name:    "multi-segment base path",
			cfg:     config.Config{API: config.APIConfig{BasePath: "/api/v1"}},
			wantErr: "api",
		},
		{
			name:    "docs collides with api",
			cfg:     config.Config{Docs: config.DocsConfig{Enabled: true, BasePath: "/api"}},
			wantErr: "collides",
		},
		{
			name:    "metrics shadowed by api",
			cfg:     config.Config{Metrics: config.MetricsConfig{Enabled: true, Path: "/api/metrics"}},
			wantErr: "shadowed",
		},
		{
			name:    "metrics namespace",
			cfg:     config.Config{Metrics: config.MetricsConfig{Namespace: "bad-name"}},
			wantErr: "namespace",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
