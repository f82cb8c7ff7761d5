package openapi

// NewComponents returns the schemas and responses shared by every route group.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Schema{
					"error": {Type: "string", Description: "Error message"},
				},
			},
		},
		Responses: map[string]*Response{
			"NotFound":         ResponseJSON("Resource not found", "Error"),
			"MethodNotAllowed": {Description: "Method not allowed on this path"},
			"NotAcceptable":    ResponseJSON("No acceptable representation for the Accept header", "Error"),
		},
	}
}

// AddSchemas merges schemas into the components, replacing entries with the same name.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

func (c *Components) AddResponses(responses map[string]*Response) {
	for name, response := range responses {
		c.Responses[name] = response
	}
}
