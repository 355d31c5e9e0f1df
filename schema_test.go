package fieldkit_test

import (
	"context"
	"strings"
	"testing"

	fieldkit "github.com/reoring/fieldkit"
)

func userSchema() *fieldkit.Schema {
	return fieldkit.NewSchema().
		Field("name", fieldkit.String().Required()).
		Field("age", fieldkit.Number())
}

func TestSchema_ValidateSuccessStoresPayload(t *testing.T) {
	s := userSchema()
	payload := map[string]any{"name": "John", "age": float64(30)}
	got, err := s.Validate(context.Background(), payload)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if got != s {
		t.Fatalf("Validate should return the schema instance for chaining")
	}
	data, err := s.FullData()
	if err != nil {
		t.Fatalf("FullData after success: %v", err)
	}
	if data["name"] != "John" || data["age"] != float64(30) {
		t.Fatalf("FullData = %#v, want the validated payload", data)
	}
	// shallow copy: mutating the returned map must not affect stored state
	data["name"] = "mutated"
	again, _ := s.FullData()
	if again["name"] != "John" {
		t.Fatalf("FullData must return a copy, stored payload was mutated")
	}
}

func TestSchema_ValidateFailureMessage(t *testing.T) {
	s := userSchema()
	_, err := s.Validate(context.Background(), map[string]any{"name": float64(123), "age": float64(30)})
	if err == nil {
		t.Fatalf("expected failure")
	}
	if !strings.Contains(err.Error(), "In property name: Expected string, got number") {
		t.Fatalf("message = %q, want the name property blamed", err.Error())
	}
	// schema-level wrapping adds no trailing description
	if strings.Contains(err.Error(), "Object description:") {
		t.Fatalf("schema root must not append an object description: %q", err.Error())
	}
}

func TestSchema_DeclarationOrderBlame(t *testing.T) {
	s := fieldkit.NewSchema().
		Field("first", fieldkit.Number().Required()).
		Field("second", fieldkit.Number().Required())
	_, err := s.Validate(context.Background(), map[string]any{"second": "b", "first": "a"})
	if err == nil {
		t.Fatalf("expected failure")
	}
	if !strings.HasPrefix(err.Error(), "In property first:") {
		t.Fatalf("first declared property must be blamed, got %q", err.Error())
	}
}

func TestSchema_UndeclaredKeysIgnored(t *testing.T) {
	s := userSchema()
	_, err := s.Validate(context.Background(), map[string]any{
		"name":    "John",
		"unknown": map[string]any{"deep": true},
	})
	if err != nil {
		t.Fatalf("undeclared keys must be ignored, got %v", err)
	}
}

func TestSchema_FailedValidateKeepsPriorState(t *testing.T) {
	ctx := context.Background()
	s := userSchema()
	if _, err := s.Validate(ctx, map[string]any{"name": "John"}); err != nil {
		t.Fatalf("seed validate: %v", err)
	}
	if _, err := s.Validate(ctx, map[string]any{"name": float64(1)}); err == nil {
		t.Fatalf("expected second validate to fail")
	}
	data, err := s.FullData()
	if err != nil {
		t.Fatalf("prior result must survive a failed validate: %v", err)
	}
	if data["name"] != "John" {
		t.Fatalf("prior payload lost: %#v", data)
	}
}

func TestSchema_AccessBeforeValidate(t *testing.T) {
	s := userSchema()
	if _, err := s.FullData(); err == nil {
		t.Fatalf("FullData before validate must fail")
	} else if _, ok := fieldkit.AsAccessError(err); !ok {
		t.Fatalf("want AccessError, got %T", err)
	}
	if _, err := s.Get("name"); err == nil {
		t.Fatalf("Get before validate must fail")
	}
}

func TestSchema_GetDeclaredAndUndeclared(t *testing.T) {
	ctx := context.Background()
	s := userSchema()
	if _, err := s.Validate(ctx, map[string]any{"name": "John", "age": float64(30)}); err != nil {
		t.Fatalf("validate: %v", err)
	}
	v, err := s.Get("name")
	if err != nil {
		t.Fatalf("Get(name): %v", err)
	}
	if v != "John" {
		t.Fatalf("Get(name) = %#v", v)
	}
	// age was declared but absent in another payload: declared keys always resolve
	if _, err := s.Get("nope"); err == nil {
		t.Fatalf("Get of undeclared key must fail")
	} else if ae, ok := fieldkit.AsAccessError(err); !ok || ae.Key != "nope" {
		t.Fatalf("want AccessError naming the key, got %v", err)
	}
}

func TestSchema_ClearResetsState(t *testing.T) {
	ctx := context.Background()
	s := userSchema()
	if _, err := s.Validate(ctx, map[string]any{"name": "John"}); err != nil {
		t.Fatalf("validate: %v", err)
	}
	s.Clear()
	if _, err := s.FullData(); err == nil {
		t.Fatalf("FullData after Clear must fail")
	}
	if _, err := s.Validate(ctx, map[string]any{"name": "Jane"}); err != nil {
		t.Fatalf("revalidate after Clear: %v", err)
	}
	data, err := s.FullData()
	if err != nil {
		t.Fatalf("FullData after revalidate: %v", err)
	}
	if data["name"] != "Jane" {
		t.Fatalf("expected the new payload, got %#v", data)
	}
}

func TestSchema_NonObjectRootFails(t *testing.T) {
	s := userSchema()
	_, err := s.Validate(context.Background(), "just a string")
	if err == nil {
		t.Fatalf("expected root shape failure")
	}
	if !strings.Contains(err.Error(), "Expected an key-value object, got string") {
		t.Fatalf("message = %q", err.Error())
	}
}

func TestSchema_EmptySchemaTriviallyPasses(t *testing.T) {
	s := fieldkit.NewSchema()
	if _, err := s.Validate(context.Background(), map[string]any{}); err != nil {
		t.Fatalf("empty schema must accept {}, got %v", err)
	}
	data, err := s.FullData()
	if err != nil {
		t.Fatalf("FullData: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("FullData = %#v, want empty map", data)
	}
}

func TestSchema_ParseIsStateless(t *testing.T) {
	ctx := context.Background()
	s := userSchema()
	if _, err := s.Validate(ctx, map[string]any{"name": "John"}); err != nil {
		t.Fatalf("validate: %v", err)
	}
	out, err := s.Parse(ctx, map[string]any{"name": "Jane", "age": float64(3)})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if out["name"] != "Jane" {
		t.Fatalf("Parse result = %#v", out)
	}
	// stored state must be untouched by Parse
	data, _ := s.FullData()
	if data["name"] != "John" {
		t.Fatalf("Parse must not disturb stored state, got %#v", data)
	}
	if _, err := s.Parse(ctx, map[string]any{"name": float64(1)}); err == nil {
		t.Fatalf("Parse must fail the same way Validate does")
	}
}

func TestSchema_Bind(t *testing.T) {
	ctx := context.Background()
	s := userSchema()
	if _, err := s.Validate(ctx, map[string]any{"name": "John", "age": float64(30)}); err != nil {
		t.Fatalf("validate: %v", err)
	}
	var dest struct {
		Name string
		Age  float64
	}
	if err := s.Bind(&dest); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if dest.Name != "John" || dest.Age != 30 {
		t.Fatalf("Bind result = %+v", dest)
	}
}

func TestSchema_BindBeforeValidateFails(t *testing.T) {
	var dest struct{ Name string }
	if err := userSchema().Bind(&dest); err == nil {
		t.Fatalf("Bind before validate must fail")
	}
}
