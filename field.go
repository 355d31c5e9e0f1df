package fieldkit

import (
	"context"

	js "github.com/reoring/fieldkit/jsonschema"
)

// Field is the smallest validation unit: a single typed rule, optionally
// nested. The variant set is closed (ScalarField, ListField, ObjectField);
// the unexported method seals it so dispatch stays a one-level virtual call
// rather than an open hierarchy.
//
// Validate returns nil when the value satisfies the rule. Non-required
// fields pass unconditionally for falsy values (nil, false, "", numeric
// zero) with no further type check; this bypass is documented behavior, not
// "optional but still type-checked when present". The context is accepted
// for signature uniformity across the module; the walk performs no I/O and
// honors no cancellation.
type Field interface {
	Validate(ctx context.Context, v any) error
	// JSONSchema projects the field into a structural description.
	JSONSchema() *js.Schema
	// IsRequired reports whether absence or a falsy value is a failure.
	IsRequired() bool
	// Description returns the human-readable description embedded in
	// failure messages.
	Description() string

	sealedField()
}

var (
	_ Field = (*ScalarField)(nil)
	_ Field = (*ListField)(nil)
	_ Field = (*ObjectField)(nil)
)
