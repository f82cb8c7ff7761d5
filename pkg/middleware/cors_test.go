package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/controller-examples/pkg/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS_Disabled(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Enabled: false,
		Origins: []string{"http://localhost:3000"},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	middleware.CORS(cfg)(okHandler()).ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("CORS headers should not be set when disabled")
	}
}

func TestCORS_AllowedOrigin(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Enabled:          true,
		Origins:          []string{"http://localhost:3000"},
		AllowCredentials: true,
	}
	cfg.Finalize(nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	middleware.CORS(cfg)(okHandler()).ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}

	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Access-Control-Allow-Credentials = %q", got)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Enabled: true,
		Origins: []string{"http://localhost:3000"},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w := httptest.NewRecorder()

	middleware.CORS(cfg)(okHandler()).ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("disallowed origin should not receive CORS headers")
	}

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Enabled: true,
		Origins: []string{"http://localhost:3000"},
	}
	cfg.Finalize(nil)

	called := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/hello", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()

	middleware.CORS(cfg)(handler).ServeHTTP(w, req)

	if called {
		t.Error("preflight should not reach the handler")
	}

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
	}

	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("Access-Control-Allow-Methods not set")
	}

	if w.Header().Get("Access-Control-Max-Age") != "3600" {
		t.Errorf("Access-Control-Max-Age = %q", w.Header().Get("Access-Control-Max-Age"))
	}
}

func TestCORSConfig_Finalize_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_CORS_ENABLED", "true")
	t.Setenv("TEST_CORS_ORIGINS", "http://localhost:3000, http://localhost:8080")
	t.Setenv("TEST_CORS_MAX_AGE", "7200")

	cfg := &middleware.CORSConfig{}
	env := &middleware.CORSEnv{
		Enabled: "TEST_CORS_ENABLED",
		Origins: "TEST_CORS_ORIGINS",
		MaxAge:  "TEST_CORS_MAX_AGE",
	}

	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if !cfg.Enabled {
		t.Error("Enabled should be true from env")
	}

	if len(cfg.Origins) != 2 || cfg.Origins[1] != "http://localhost:8080" {
		t.Errorf("Origins = %v", cfg.Origins)
	}

	if cfg.MaxAge != 7200 {
		t.Errorf("MaxAge = %d, want 7200", cfg.MaxAge)
	}
}

func TestCORSConfig_Merge(t *testing.T) {
	base := &middleware.CORSConfig{
		Origins: []string{"http://a"},
		MaxAge:  100,
	}

	base.Merge(&middleware.CORSConfig{Enabled: true})

	if !base.Enabled {
		t.Error("Enabled should merge")
	}

	if len(base.Origins) != 1 || base.MaxAge != 100 {
		t.Errorf("unset overlay fields should not change: %+v", base)
	}
}
