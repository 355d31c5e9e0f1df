package fieldkit

// Package fieldkit provides:
//
// - Declarative validation of untyped payloads against a tree of Fields
//   (scalar/list/object) with fail-fast, declaration-ordered traversal
// - A stable error model via Issue (JSON Pointer path, code, message)
//   whose message text pinpoints the first failing path
// - Structural schema derivation (JSON Schema vocabulary) from the same
//   Field tree, see the jsonschema subpackage
//
// Design policy:
// - Keep only public APIs in the root package; the Field variant set is
//   closed (scalar/list/object) and sealed behind an unexported method.
// - Place the definition-file loader under schemafile/, OpenAPI export
//   under openapi/, and the CLI under cmd/fieldkit.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := fieldkit.NewSchema().
//		Field("name", fieldkit.String().Required().Describe("The user name")).
//		Field("age", fieldkit.Number())
//	if _, err := s.Validate(ctx, payload); err != nil {
//		// err.Error() reads "In property name: Expected string, got number. ..."
//	}
//	data, err := s.FullData()
