package fieldkit

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"

	js "github.com/reoring/fieldkit/jsonschema"
)

// Schema is the root validation contract for a whole object: an ordered
// mapping of member names to Fields. Unlike ObjectField it is not itself a
// Field (it has no required flag) and it carries result state: the last
// successfully validated payload, readable through Get/FullData/Bind until
// Clear or the next successful Validate.
//
// A Schema instance is not safe for concurrent Validate calls; the stored
// payload has no synchronization. Either serialize access, construct one
// Schema per request, or use the stateless Parse.
type Schema struct {
	members     memberSet
	description string

	// lastValidated reflects exactly the last successful Validate call;
	// a failed Validate leaves it untouched.
	lastValidated map[string]any
}

// NewSchema returns an empty schema; declare members with Field.
func NewSchema() *Schema {
	return &Schema{description: DefaultDescription}
}

// Field declares a member in declaration order and returns the schema for
// chaining. Redeclaring a name replaces the member in place.
func (s *Schema) Field(name string, member Field) *Schema {
	s.members.put(name, member)
	return s
}

// Describe sets the description emitted in the structural derivation.
func (s *Schema) Describe(d string) *Schema { s.description = d; return s }

// Description returns the schema's human-readable description.
func (s *Schema) Description() string { return s.description }

// check runs the walk without touching instance state.
func (s *Schema) check(ctx context.Context, data any) (map[string]any, error) {
	m, ok := asObject(data)
	if !ok {
		return nil, &Issue{
			Path:    "/",
			Code:    CodeShapeMismatch,
			Message: fmt.Sprintf("Expected an key-value object, got %s", KindOf(data)),
		}
	}
	if m == nil {
		m = map[string]any{}
	}
	for _, e := range s.members.entries {
		if err := e.field.Validate(ctx, m[e.name]); err != nil {
			child := toIssue(err)
			return nil, wrapIssue(child, e.name, fmt.Sprintf(msgSchemaMember, e.name, child.Message))
		}
	}
	return m, nil
}

// Validate walks declared members in declaration order over data and stops
// at the first failing property. On success the payload is stored as the
// last validated result and the schema itself is returned for chained
// access; on failure prior result state is left unchanged.
func (s *Schema) Validate(ctx context.Context, data any) (*Schema, error) {
	m, err := s.check(ctx, data)
	if err != nil {
		return s, err
	}
	s.lastValidated = m
	return s, nil
}

// Parse is the stateless companion to Validate: it runs the same walk and
// returns a shallow copy of the accepted payload without storing anything
// on the instance, making it safe for concurrent callers.
func (s *Schema) Parse(ctx context.Context, data any) (map[string]any, error) {
	m, err := s.check(ctx, data)
	if err != nil {
		return nil, err
	}
	return shallowCopy(m), nil
}

// Get returns the named member's value from the last validated payload. It
// fails with an AccessError when the key is not declared or when no
// Validate call has succeeded yet.
func (s *Schema) Get(key string) (any, error) {
	if s.lastValidated == nil {
		return nil, &AccessError{Reason: "no validated data available; call Validate first"}
	}
	if !s.members.declared(key) {
		return nil, &AccessError{Key: key, Reason: "key is not declared in the schema"}
	}
	return s.lastValidated[key], nil
}

// FullData returns a shallow copy of the last validated payload, or an
// AccessError when no Validate call has succeeded yet.
func (s *Schema) FullData() (map[string]any, error) {
	if s.lastValidated == nil {
		return nil, &AccessError{Reason: "no validated data available; call Validate first"}
	}
	return shallowCopy(s.lastValidated), nil
}

// Bind decodes the last validated payload onto dest (a struct pointer)
// using mapstructure field mapping.
func (s *Schema) Bind(dest any) error {
	if s.lastValidated == nil {
		return &AccessError{Reason: "no validated data available; call Validate first"}
	}
	return mapstructure.Decode(s.lastValidated, dest)
}

// Clear discards the stored payload, returning the schema to its
// unvalidated state so the instance can be reused without leaking prior
// data.
func (s *Schema) Clear() { s.lastValidated = nil }

// JSONSchema derives the structural description for the whole object, with
// the same rules as ObjectField.
func (s *Schema) JSONSchema() *js.Schema {
	return s.members.jsonSchema(s.description)
}

func shallowCopy(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
