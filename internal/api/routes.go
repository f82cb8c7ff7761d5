package api

import (
	"net/http"

	"github.com/JaimeStill/controller-examples/internal/examples"
	"github.com/JaimeStill/controller-examples/pkg/openapi"
	"github.com/JaimeStill/controller-examples/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	runtime *Runtime,
	domain *Domain,
) error {
	examplesHandler := examples.NewHandler(domain.Examples, runtime.Logger)

	return routes.Register(
		mux,
		runtime.BasePath,
		spec,
		examplesHandler.Routes(),
	)
}
