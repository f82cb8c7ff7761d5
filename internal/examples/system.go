// Package examples implements the example controllers: a plain text greeting,
// a parameterized greeting, and a structured name pair served as JSON or XML.
package examples

import "log/slog"

// System defines the example operations. Every operation is a pure function
// of its arguments.
type System interface {
	// Hello returns the fixed greeting.
	Hello() Example

	// HelloTo greets world verbatim.
	HelloTo(world string) Example

	// Complex returns the sample name pair.
	Complex() ComplexResult
}

const (
	helloMessage = "Hello World !"
	helloPrefix  = "Hello "
	complexFirst = "Serge"
	complexLast  = "Huber"
)

type system struct {
	logger *slog.Logger
}

// New returns the stateless System implementation.
func New(logger *slog.Logger) System {
	return &system{logger: logger.With("system", "examples")}
}

func (s *system) Hello() Example {
	return NewExample(helloMessage)
}

func (s *system) HelloTo(world string) Example {
	s.logger.Debug("greeting", "world", world)
	return NewExample(helloPrefix + world)
}

func (s *system) Complex() ComplexResult {
	return NewComplexResult(complexFirst, complexLast)
}
