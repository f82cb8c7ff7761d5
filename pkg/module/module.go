// Package module hosts self-contained HTTP modules under single-segment prefixes.
//
// A Module owns a handler and its middleware chain and sees request paths
// relative to its mount point. A Router dispatches each request to the module
// matching the first path segment, falling back to natively registered routes.
package module

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/JaimeStill/controller-examples/pkg/middleware"
)

type Module struct {
	prefix     string
	handler    http.Handler
	middleware middleware.System

	once  sync.Once
	chain http.Handler
}

// New creates a module mounted at prefix. The prefix must be a single path
// segment with a leading slash, such as "/api"; New panics otherwise.
func New(prefix string, handler http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}

	return &Module{
		prefix:     prefix,
		handler:    handler,
		middleware: middleware.New(),
	}
}

func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends mw to the module chain; the first registered runs outermost.
// Middleware added after the first call to Handler or Serve is ignored.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

// Handler returns the module handler wrapped in its middleware chain.
// The chain is built once. Paths seen by the handler are relative to the module prefix.
func (m *Module) Handler() http.Handler {
	m.once.Do(func() {
		m.chain = m.middleware.Apply(m.handler)
	})
	return m.chain
}

// Serve strips the module prefix from the request path and dispatches it.
// The module root is served as "/".
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	r2 := r.Clone(r.Context())
	r2.URL.Path = stripPrefix(r.URL.Path, m.prefix)
	if r.URL.RawPath != "" {
		r2.URL.RawPath = stripPrefix(r.URL.RawPath, m.prefix)
	}

	m.Handler().ServeHTTP(w, r2)
}

func stripPrefix(path, prefix string) string {
	p := strings.TrimPrefix(path, prefix)
	if p == "" {
		return "/"
	}
	return p
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix required")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix %q must start with /", prefix)
	}
	if len(prefix) == 1 || strings.Contains(prefix[1:], "/") {
		return fmt.Errorf("module prefix %q must be a single path segment", prefix)
	}
	return nil
}
