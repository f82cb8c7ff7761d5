package routes

import (
	"net/http"

	"github.com/JaimeStill/controller-examples/pkg/openapi"
)

// Register adds every route of the groups to mux and documents them in spec.
//
// Mux patterns are relative to the module that owns mux; basePath is the
// module mount point and only prefixes the documented paths.
func Register(mux *http.ServeMux, basePath string, spec *openapi.Spec, groups ...Group) error {
	for _, group := range groups {
		registerGroup(mux, "", group)
		if err := group.AddToSpec(basePath, spec); err != nil {
			return err
		}
	}
	return nil
}

func registerGroup(mux *http.ServeMux, parentPrefix string, group Group) {
	prefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		mux.HandleFunc(route.Method+" "+prefix+route.Pattern, route.Handler)
	}
	for _, child := range group.Children {
		registerGroup(mux, prefix, child)
	}
}
