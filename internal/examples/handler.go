package examples

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/controller-examples/pkg/handlers"
	"github.com/JaimeStill/controller-examples/pkg/openapi"
	"github.com/JaimeStill/controller-examples/pkg/routes"
)

type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "",
		Tags:        []string{"Examples"},
		Description: "Example controllers returning plain text and structured data",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/hello", Handler: h.Hello, OpenAPI: Spec.Hello},
			{Method: "GET", Pattern: "/hello/{world}", Handler: h.HelloTo, OpenAPI: Spec.HelloTo},
			{Method: "GET", Pattern: "/complex", Handler: h.Complex, OpenAPI: Spec.Complex},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) Hello(w http.ResponseWriter, r *http.Request) {
	h.respondText(w, r, h.sys.Hello())
}

func (h *Handler) HelloTo(w http.ResponseWriter, r *http.Request) {
	h.respondText(w, r, h.sys.HelloTo(r.PathValue("world")))
}

func (h *Handler) Complex(w http.ResponseWriter, r *http.Request) {
	handlers.RespondNegotiated(w, r, h.logger, http.StatusOK, h.sys.Complex())
}

func (h *Handler) respondText(w http.ResponseWriter, r *http.Request, e Example) {
	w.Header().Add("Vary", "Accept")

	if _, err := handlers.Negotiate(r, openapi.MediaText); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondText(w, http.StatusOK, e.Message())
}
