package openapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
)

const Version = "3.1.0"

// NewSpec creates an empty document with standard components.
func NewSpec(title, version string) *Spec {
	return &Spec{
		OpenAPI: Version,
		Info: &Info{
			Title:   title,
			Version: version,
		},
		Paths:      make(map[string]*PathItem),
		Components: NewComponents(),
	}
}

func (s *Spec) SetDescription(desc string) {
	s.Info.Description = desc
}

// AddServer appends a server URL. Empty URLs are ignored.
func (s *Spec) AddServer(url string) {
	if url == "" {
		return
	}
	s.Servers = append(s.Servers, &Server{URL: url})
}

// AddOperation attaches op to path under the given HTTP method.
func (s *Spec) AddOperation(path, method string, op *Operation) error {
	item, ok := s.Paths[path]
	if !ok {
		item = &PathItem{}
		s.Paths[path] = item
	}

	switch strings.ToUpper(method) {
	case http.MethodGet:
		item.Get = op
	case http.MethodPost:
		item.Post = op
	case http.MethodPut:
		item.Put = op
	case http.MethodPatch:
		item.Patch = op
	case http.MethodDelete:
		item.Delete = op
	default:
		return fmt.Errorf("unsupported method %q for path %s", method, path)
	}
	return nil
}

func MarshalJSON(spec *Spec) ([]byte, error) {
	return json.MarshalIndent(spec, "", "  ")
}

// WriteJSON marshals spec and writes it to path.
func WriteJSON(spec *Spec, path string) error {
	data, err := MarshalJSON(spec)
	if err != nil {
		return fmt.Errorf("marshal spec: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write spec: %w", err)
	}
	return nil
}

// ServeSpec returns a handler that writes a pre-marshaled document.
func ServeSpec(spec []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(spec)
	}
}
