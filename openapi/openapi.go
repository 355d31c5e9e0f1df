// Package openapi wraps a fieldkit structural description into an OpenAPI 3
// document so external tooling can consume the schema without knowing
// fieldkit types.
package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"

	fieldkit "github.com/reoring/fieldkit"
	js "github.com/reoring/fieldkit/jsonschema"
)

// Document builds an OpenAPI 3 document with the schema registered under
// components/schemas/{name}.
func Document(title, version, name string, s *fieldkit.Schema) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info:    &openapi3.Info{Title: title, Version: version},
		Paths:   openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{name: SchemaRef(s.JSONSchema())},
		},
	}
}

// SchemaRef converts a structural description into a kin-openapi schema
// reference, mirroring nesting depth exactly.
func SchemaRef(s *js.Schema) *openapi3.SchemaRef {
	out := &openapi3.Schema{Description: s.Description}
	if s.Type != "" {
		out.Type = &openapi3.Types{s.Type}
	}
	if s.Properties != nil {
		out.Properties = make(openapi3.Schemas, len(s.Properties))
		for k, p := range s.Properties {
			out.Properties[k] = SchemaRef(p)
		}
	}
	out.Required = s.Required
	if s.Items != nil {
		out.Items = SchemaRef(s.Items)
	}
	return openapi3.NewSchemaRef("", out)
}
