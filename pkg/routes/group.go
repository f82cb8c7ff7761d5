// Package routes describes handlers as method-qualified routes organized in
// prefixed groups, and registers them on a ServeMux while documenting them
// in an OpenAPI document.
package routes

import (
	"fmt"
	"net/http"

	"github.com/JaimeStill/controller-examples/pkg/openapi"
)

// Route binds a handler to a method and a pattern relative to its group.
// A nil OpenAPI operation keeps the route out of the document.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Group is a set of routes sharing a prefix. Children inherit the parent prefix.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
	Schemas     map[string]*openapi.Schema
}

// AddToSpec documents the group, its children, and its schemas in spec.
// Operations without tags are documented with the group tags; the route's
// operation is not modified.
func (g *Group) AddToSpec(basePath string, spec *openapi.Spec) error {
	if err := g.addOperations(basePath+g.Prefix, spec); err != nil {
		return err
	}

	if len(g.Schemas) > 0 {
		spec.Components.AddSchemas(g.Schemas)
	}
	return nil
}

func (g *Group) addOperations(prefix string, spec *openapi.Spec) error {
	for _, route := range g.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = g.Tags
		}

		if err := spec.AddOperation(prefix+route.Pattern, route.Method, &op); err != nil {
			return fmt.Errorf("document %s %s: %w", route.Method, prefix+route.Pattern, err)
		}
	}

	for _, child := range g.Children {
		if err := child.AddToSpec(prefix, spec); err != nil {
			return err
		}
	}
	return nil
}
