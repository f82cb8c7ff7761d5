// Package scalar provides the interactive API reference module using Scalar UI.
package scalar

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/JaimeStill/controller-examples/pkg/module"
)

//go:embed index.html
var indexTemplate string

var index = template.Must(template.New("index").Parse(indexTemplate))

type page struct {
	Title   string
	SpecURL string
}

// Render executes the index page for the given document URL.
func Render(title, specURL string) ([]byte, error) {
	var buf bytes.Buffer
	if err := index.Execute(&buf, page{Title: title, SpecURL: specURL}); err != nil {
		return nil, fmt.Errorf("render scalar index: %w", err)
	}
	return buf.Bytes(), nil
}

// Handler serves a pre-rendered index page.
func Handler(html []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(html)
	}
}

// NewModule mounts the reference page at prefix, pointed at the document served from specURL.
func NewModule(prefix, title, specURL string) (*module.Module, error) {
	html, err := Render(title, specURL)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", Handler(html))

	return module.New(prefix, mux), nil
}
