package examples

import "github.com/JaimeStill/controller-examples/pkg/openapi"

type spec struct {
	Hello   *openapi.Operation
	HelloTo *openapi.Operation
	Complex *openapi.Operation
}

var Spec = spec{
	Hello: &openapi.Operation{
		Summary:     "Say hello",
		Description: "Returns a fixed plain text greeting",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseText("Greeting", helloMessage),
			406: openapi.ResponseRef("NotAcceptable"),
		},
	},
	HelloTo: &openapi.Operation{
		Summary:     "Say hello to a world",
		Description: "Returns a plain text greeting addressed to the world path segment, taken verbatim",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("world", "Name to greet"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseText("Greeting", helloPrefix+"Earth"),
			406: openapi.ResponseRef("NotAcceptable"),
		},
	},
	Complex: &openapi.Operation{
		Summary:     "Get complex result",
		Description: "Returns a first/last name pair as JSON by default, or XML when the Accept header prefers it",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseContent("Name pair", "ComplexResult",
				openapi.MediaJSON, openapi.MediaXML, openapi.MediaTextXML),
			406: openapi.ResponseRef("NotAcceptable"),
		},
	},
}

// Schemas returns the example domain schemas for OpenAPI components.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"ComplexResult": {
			Type:     "object",
			Required: []string{"firstName", "lastName"},
			XML:      &openapi.XML{Name: "ComplexResult"},
			Properties: map[string]*openapi.Schema{
				"firstName": {Type: "string", Example: complexFirst},
				"lastName":  {Type: "string", Example: complexLast},
			},
		},
	}
}
