package api

import "github.com/JaimeStill/controller-examples/internal/examples"

// Domain holds the domain systems that comprise the API.
type Domain struct {
	Examples examples.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	return &Domain{
		Examples: examples.New(runtime.Logger),
	}
}
