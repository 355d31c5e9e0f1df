package fieldkit

import (
	"context"
	"fmt"

	js "github.com/reoring/fieldkit/jsonschema"
)

// ScalarField validates that a value's primitive kind matches an expected
// kind. It is the terminal node of the recursion.
type ScalarField struct {
	kind        Kind
	required    bool
	description string
}

// Scalar returns a field expecting the given kind. Prefer the String,
// Number and Boolean shorthands for the common kinds.
func Scalar(kind Kind) *ScalarField {
	return &ScalarField{kind: kind, description: DefaultDescription}
}

// String returns a field expecting a string value.
func String() *ScalarField { return Scalar(KindString) }

// Number returns a field expecting a numeric value.
func Number() *ScalarField { return Scalar(KindNumber) }

// Boolean returns a field expecting a boolean value.
func Boolean() *ScalarField { return Scalar(KindBoolean) }

// Required marks the field as required and returns it for chaining.
func (f *ScalarField) Required() *ScalarField { f.required = true; return f }

// Describe sets the human-readable description and returns the field.
func (f *ScalarField) Describe(d string) *ScalarField { f.description = d; return f }

// Kind returns the expected primitive kind.
func (f *ScalarField) Kind() Kind { return f.kind }

func (f *ScalarField) IsRequired() bool    { return f.required }
func (f *ScalarField) Description() string { return f.description }

func (f *ScalarField) Validate(ctx context.Context, v any) error {
	if !f.required && isFalsy(v) {
		return nil
	}
	if got := KindOf(v); got != f.kind {
		return &Issue{
			Path:    "/",
			Code:    CodeTypeMismatch,
			Message: fmt.Sprintf(msgTypeMismatch, f.kind, got, f.description),
		}
	}
	return nil
}

func (f *ScalarField) JSONSchema() *js.Schema {
	return &js.Schema{Type: string(f.kind), Description: f.description}
}

func (f *ScalarField) sealedField() {}
