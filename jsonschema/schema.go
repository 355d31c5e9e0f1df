package jsonschema

import (
	gojson "github.com/goccy/go-json"
)

// Schema is a minimal JSON Schema representation derived from a Field tree.
// It covers exactly the vocabulary the engine produces (type, description,
// properties, required, items); extend incrementally if the engine grows.
type Schema struct {
	// Core
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`

	// Object
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`
}

// Encode serializes the schema to compact JSON.
func (s *Schema) Encode() ([]byte, error) {
	return gojson.Marshal(s)
}

// EncodeIndent serializes the schema with two-space indentation for
// human-facing output.
func (s *Schema) EncodeIndent() ([]byte, error) {
	return gojson.MarshalIndent(s, "", "  ")
}
