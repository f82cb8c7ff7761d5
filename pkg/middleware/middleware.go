// Package middleware provides composable http.Handler wrappers.
package middleware

import "net/http"

// System collects middleware and applies it to a handler.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type middleware struct {
	stack []func(http.Handler) http.Handler
}

func New() System {
	return &middleware{
		stack: []func(http.Handler) http.Handler{},
	}
}

func (m *middleware) Use(mw func(http.Handler) http.Handler) {
	m.stack = append(m.stack, mw)
}

// Apply wraps handler so that the first registered middleware runs outermost.
func (m *middleware) Apply(handler http.Handler) http.Handler {
	return Chain(handler, m.stack...)
}

// Chain wraps handler with mws, first element outermost.
func Chain(handler http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		handler = mws[i](handler)
	}
	return handler
}
