package examples

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/controller-examples/pkg/handlers"
)

// ErrNotAcceptable is returned when a request's Accept header excludes every
// representation a route can produce.
var ErrNotAcceptable = handlers.ErrNotAcceptable

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotAcceptable) {
		return http.StatusNotAcceptable
	}
	return http.StatusInternalServerError
}
