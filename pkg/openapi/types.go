// Package openapi provides types for building OpenAPI 3.1 documents in code.
// Route groups describe their operations with these types and the document is
// assembled when routes are registered.
package openapi

// Media types used by the helpers in this package.
const (
	MediaJSON    = "application/json"
	MediaXML     = "application/xml"
	MediaTextXML = "text/xml"
	MediaText    = "text/plain"
)

type Spec struct {
	OpenAPI    string               `json:"openapi"`
	Info       *Info                `json:"info"`
	Servers    []*Server            `json:"servers,omitempty"`
	Paths      map[string]*PathItem `json:"paths"`
	Components *Components          `json:"components,omitempty"`
}

// Components holds schemas and responses referenced from operations.
type Components struct {
	Schemas   map[string]*Schema   `json:"schemas,omitempty"`
	Responses map[string]*Response `json:"responses,omitempty"`
}

type Info struct {
	Title       string `json:"title"`
	Version     string `json:"version"`
	Description string `json:"description,omitempty"`
}

type Server struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// PathItem describes the operations available on a single path.
type PathItem struct {
	Get    *Operation `json:"get,omitempty"`
	Post   *Operation `json:"post,omitempty"`
	Put    *Operation `json:"put,omitempty"`
	Patch  *Operation `json:"patch,omitempty"`
	Delete *Operation `json:"delete,omitempty"`
}

type Operation struct {
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
	Parameters  []*Parameter      `json:"parameters,omitempty"`
	RequestBody *RequestBody      `json:"requestBody,omitempty"`
	Responses   map[int]*Response `json:"responses"`
}

type Parameter struct {
	Name        string  `json:"name"`
	In          string  `json:"in"`
	Required    bool    `json:"required,omitempty"`
	Description string  `json:"description,omitempty"`
	Schema      *Schema `json:"schema"`
}

type RequestBody struct {
	Description string                `json:"description,omitempty"`
	Required    bool                  `json:"required,omitempty"`
	Content     map[string]*MediaType `json:"content"`
}

// Response describes a single response. When Ref is set the remaining fields
// are ignored by consumers.
type Response struct {
	Description string                `json:"description,omitempty"`
	Content     map[string]*MediaType `json:"content,omitempty"`
	Ref         string                `json:"$ref,omitempty"`
}

type MediaType struct {
	Schema  *Schema `json:"schema,omitempty"`
	Example any     `json:"example,omitempty"`
}

type Schema struct {
	Type        string             `json:"type,omitempty"`
	Format      string             `json:"format,omitempty"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Example     any                `json:"example,omitempty"`
	XML         *XML               `json:"xml,omitempty"`
	Ref         string             `json:"$ref,omitempty"`
}

// XML adjusts how a schema is represented in XML payloads.
type XML struct {
	Name string `json:"name,omitempty"`
}

func SchemaRef(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

func ResponseRef(name string) *Response {
	return &Response{Ref: "#/components/responses/" + name}
}

// ResponseJSON creates a JSON response referencing a component schema.
func ResponseJSON(description, schemaName string) *Response {
	return ResponseContent(description, schemaName, MediaJSON)
}

// ResponseContent creates a response offering the same component schema under
// each of the given media types.
func ResponseContent(description, schemaName string, mediaTypes ...string) *Response {
	content := make(map[string]*MediaType, len(mediaTypes))
	for _, mt := range mediaTypes {
		content[mt] = &MediaType{Schema: SchemaRef(schemaName)}
	}
	return &Response{
		Description: description,
		Content:     content,
	}
}

// ResponseText creates a text/plain response with an optional example body.
func ResponseText(description string, example string) *Response {
	mt := &MediaType{Schema: &Schema{Type: "string"}}
	if example != "" {
		mt.Example = example
	}
	return &Response{
		Description: description,
		Content:     map[string]*MediaType{MediaText: mt},
	}
}

// PathParam creates a required string path parameter.
func PathParam(name, description string) *Parameter {
	return &Parameter{
		Name:        name,
		In:          "path",
		Required:    true,
		Description: description,
		Schema:      &Schema{Type: "string"},
	}
}
