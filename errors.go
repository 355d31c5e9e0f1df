package fieldkit

import (
	"errors"
	"fmt"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeTypeMismatch  = "type_mismatch"  // scalar kind differs from the declared kind
	CodeShapeMismatch = "shape_mismatch" // value is not a list / key-value object where one is required
	CodeNestedFailure = "nested_failure" // a failure inside a list element or object property
)

// DefaultDescription is used for fields constructed without Describe.
const DefaultDescription = "No description available"

// Message templates. The exact wording (including the historical
// "an key-value object" article) is part of the public contract; callers
// match on these strings.
const (
	msgTypeMismatch = "Expected %s, got %s. Field description: %s"
	msgListShape    = "Expected a list, got %s. Field description: %s"
	msgObjectShape  = "Expected an key-value object, got %s. Field description: %s"
	msgListItem     = "In list: %s. List description: %s"
	msgObjectMember = "In property %s: %s. Object description: %s"
	msgSchemaMember = "In property %s: %s"
)

// Issue is a single validation failure. Message carries the full
// human-readable text including the path prefixes accumulated on the way
// out of the recursion; Path carries the same location as a JSON Pointer.
type Issue struct {
	Path    string // JSON Pointer (for example: /profile/street or /items/2)
	Code    string // one of the codes listed above
	Message string
	Cause   error // the inner Issue for nested failures, nil at the leaf
}

// Error returns the composed message, e.g.
// "In property name: Expected string, got number. Field description: The user name".
func (i *Issue) Error() string { return i.Message }

// Unwrap exposes the inner failure of a nested Issue to errors.Is/As.
func (i *Issue) Unwrap() error { return i.Cause }

// AsIssue extracts an *Issue from an error using errors.As internally.
func AsIssue(err error) (*Issue, bool) {
	if err == nil {
		return nil, false
	}
	var iss *Issue
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// wrapIssue rebases a child failure under the given path segment with the
// already-composed enclosing message. segment is a raw JSON Pointer token
// ("name", "2").
func wrapIssue(child *Issue, segment, msg string) *Issue {
	base := "/" + segment
	p := child.Path
	switch {
	case p == "" || p == "/":
		p = base
	case p[0] == '/':
		p = base + p
	default:
		p = base + "/" + p
	}
	return &Issue{Path: p, Code: CodeNestedFailure, Message: msg, Cause: child}
}

// toIssue converts an error into an *Issue, wrapping foreign errors as
// nested failures. Every validation error inside the sealed Field set
// already is an Issue, so the fallback is a safety net.
func toIssue(err error) *Issue {
	if iss, ok := AsIssue(err); ok {
		return iss
	}
	return &Issue{Path: "/", Code: CodeNestedFailure, Message: err.Error(), Cause: err}
}

// AccessError reports an invalid read of validated data: either no validate
// call has succeeded yet, or the requested key is not declared.
type AccessError struct {
	Key    string // empty for whole-payload reads
	Reason string
}

func (e *AccessError) Error() string {
	if e.Key == "" {
		return "fieldkit: " + e.Reason
	}
	return fmt.Sprintf("fieldkit: %s: %q", e.Reason, e.Key)
}

// AsAccessError extracts an *AccessError from an error using errors.As.
func AsAccessError(err error) (*AccessError, bool) {
	if err == nil {
		return nil, false
	}
	var ae *AccessError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
