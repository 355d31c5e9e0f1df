package fieldkit

import (
	"context"
	"fmt"

	js "github.com/reoring/fieldkit/jsonschema"
)

// memberSet is an ordered name->Field mapping shared by ObjectField and
// Schema. Declaration order is load-bearing: traversal, error blame and the
// derived required list all follow it.
type memberSet struct {
	entries []memberEntry
	index   map[string]int
}

type memberEntry struct {
	name  string
	field Field
}

func (m *memberSet) put(name string, f Field) {
	if m.index == nil {
		m.index = map[string]int{}
	}
	if i, ok := m.index[name]; ok {
		// redeclaration replaces the field but keeps the original position
		m.entries[i].field = f
		return
	}
	m.index[name] = len(m.entries)
	m.entries = append(m.entries, memberEntry{name: name, field: f})
}

func (m *memberSet) declared(name string) bool {
	_, ok := m.index[name]
	return ok
}

// jsonSchema derives the object-shaped structural description. Properties
// and Required are always non-nil so an empty schema still reports
// {type:"object", properties:{}, required:[]}.
func (m *memberSet) jsonSchema(description string) *js.Schema {
	props := make(map[string]*js.Schema, len(m.entries))
	req := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		props[e.name] = e.field.JSONSchema()
		if e.field.IsRequired() {
			req = append(req, e.name)
		}
	}
	return &js.Schema{Type: "object", Properties: props, Required: req, Description: description}
}

// ObjectField validates that a value is a key-value mapping and that each
// declared member satisfies its own field. Members are owned exclusively by
// the object; undeclared keys in the input are ignored, never rejected.
type ObjectField struct {
	members     memberSet
	required    bool
	description string
}

// Object returns an empty object field; declare members with Field.
func Object() *ObjectField {
	return &ObjectField{description: DefaultDescription}
}

// Field declares a member in declaration order and returns the object for
// chaining. Redeclaring a name replaces the member in place.
func (f *ObjectField) Field(name string, member Field) *ObjectField {
	f.members.put(name, member)
	return f
}

// Required marks the field as required and returns it for chaining.
func (f *ObjectField) Required() *ObjectField { f.required = true; return f }

// Describe sets the human-readable description and returns the field.
func (f *ObjectField) Describe(d string) *ObjectField { f.description = d; return f }

func (f *ObjectField) IsRequired() bool    { return f.required }
func (f *ObjectField) Description() string { return f.description }

// Validate walks declared members in declaration order and stops at the
// first failure, so the blamed property is deterministic regardless of the
// input's key order.
func (f *ObjectField) Validate(ctx context.Context, v any) error {
	if !f.required && isFalsy(v) {
		return nil
	}
	m, ok := asObject(v)
	if !ok {
		return &Issue{
			Path:    "/",
			Code:    CodeShapeMismatch,
			Message: fmt.Sprintf(msgObjectShape, KindOf(v), f.description),
		}
	}
	for _, e := range f.members.entries {
		if err := e.field.Validate(ctx, m[e.name]); err != nil {
			child := toIssue(err)
			return wrapIssue(child, e.name,
				fmt.Sprintf(msgObjectMember, e.name, child.Message, f.description))
		}
	}
	return nil
}

func (f *ObjectField) JSONSchema() *js.Schema {
	return f.members.jsonSchema(f.description)
}

func (f *ObjectField) sealedField() {}
