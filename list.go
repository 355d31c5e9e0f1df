package fieldkit

import (
	"context"
	"fmt"
	"strconv"

	js "github.com/reoring/fieldkit/jsonschema"
)

// ListField validates that a value is a sequence and that every element
// satisfies the inner item field. The item field is owned exclusively by
// the list and must not be mutated after construction.
type ListField struct {
	item        Field
	required    bool
	description string
}

// List returns a field expecting a sequence whose elements all satisfy item.
func List(item Field) *ListField {
	return &ListField{item: item, description: DefaultDescription}
}

// Required marks the field as required and returns it for chaining.
func (f *ListField) Required() *ListField { f.required = true; return f }

// Describe sets the human-readable description and returns the field.
func (f *ListField) Describe(d string) *ListField { f.description = d; return f }

// Item returns the element validator.
func (f *ListField) Item() Field { return f.item }

func (f *ListField) IsRequired() bool    { return f.required }
func (f *ListField) Description() string { return f.description }

// Validate checks elements in order and stops at the first failing one; it
// never aggregates failures across elements. An empty sequence always
// passes.
func (f *ListField) Validate(ctx context.Context, v any) error {
	if !f.required && isFalsy(v) {
		return nil
	}
	items, ok := asList(v)
	if !ok {
		return &Issue{
			Path:    "/",
			Code:    CodeShapeMismatch,
			Message: fmt.Sprintf(msgListShape, KindOf(v), f.description),
		}
	}
	for i, el := range items {
		if err := f.item.Validate(ctx, el); err != nil {
			child := toIssue(err)
			return wrapIssue(child, strconv.Itoa(i),
				fmt.Sprintf(msgListItem, child.Message, f.description))
		}
	}
	return nil
}

func (f *ListField) JSONSchema() *js.Schema {
	return &js.Schema{Type: "array", Items: f.item.JSONSchema(), Description: f.description}
}

func (f *ListField) sealedField() {}
