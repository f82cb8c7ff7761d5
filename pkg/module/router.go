package module

import (
	"net/http"
	"net/url"
	"strings"
)

// Router dispatches requests to mounted modules by first path segment.
// Requests that match no module are served by the native mux.
type Router struct {
	native  *http.ServeMux
	modules map[string]*Module
}

func NewRouter() *Router {
	return &Router{
		native:  http.NewServeMux(),
		modules: make(map[string]*Module),
	}
}

// HandleNative registers a ServeMux pattern outside any module, such as "GET /healthz".
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.native.HandleFunc(pattern, handler)
}

// Mount registers m under its prefix, replacing any module already mounted there.
func (r *Router) Mount(m *Module) {
	r.modules[m.prefix] = m
}

// Modules returns the mounted prefixes.
func (r *Router) Modules() []string {
	prefixes := make([]string, 0, len(r.modules))
	for prefix := range r.modules {
		prefixes = append(prefixes, prefix)
	}
	return prefixes
}

// ServeHTTP trims trailing slashes from the path (except for "/") and
// dispatches on the first escaped path segment.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.normalizePath(req)

	if m, ok := r.modules[firstSegment(req.URL.EscapedPath())]; ok {
		m.Serve(w, req)
		return
	}

	r.native.ServeHTTP(w, req)
}

// normalizePath trims literal trailing slashes. An escaped slash (%2F) at the
// end of the path is data and is kept.
func (r *Router) normalizePath(req *http.Request) {
	escaped := req.URL.EscapedPath()
	if len(escaped) <= 1 || !strings.HasSuffix(escaped, "/") {
		return
	}

	trimmed := strings.TrimRight(escaped, "/")
	if trimmed == "" {
		trimmed = "/"
	}

	path, err := url.PathUnescape(trimmed)
	if err != nil {
		return
	}

	req.URL.Path = path
	req.URL.RawPath = ""
	if req.URL.EscapedPath() != trimmed {
		req.URL.RawPath = trimmed
	}
}

func firstSegment(path string) string {
	if len(path) < 2 {
		return ""
	}
	if i := strings.Index(path[1:], "/"); i >= 0 {
		return path[:i+1]
	}
	return path
}
