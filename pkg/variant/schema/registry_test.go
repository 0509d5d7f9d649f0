package schema

import (
	"errors"
	"testing"
)

func TestRegistry_Basic(t *testing.T) {
	registry := NewRegistry()

	if !registry.IsEmpty() {
		t.Error("new registry should be empty")
	}
	if registry.Count() != 0 {
		t.Error("new registry should have count 0")
	}

	set, err := NewTypeSet(StringType(), I64Type())
	if err != nil {
		t.Fatalf("assembly failed: %v", err)
	}
	if err := registry.Register("scalar", set); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	got, exists := registry.Get("scalar")
	if !exists || got.Len() != 2 {
		t.Error("failed to retrieve registered set")
	}
	if !registry.Has("scalar") {
		t.Error("registry should have scalar set")
	}
	if registry.Has("missing") {
		t.Error("registry should not have missing set")
	}
	if registry.Count() != 1 {
		t.Errorf("expected count 1, got %d", registry.Count())
	}
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	registry := NewRegistry()
	set, err := NewTypeSet(BoolType())
	if err != nil {
		t.Fatalf("assembly failed: %v", err)
	}

	if err := registry.Register("flags", set); err != nil {
		t.Fatalf("registration failed: %v", err)
	}
	if err := registry.Register("flags", set); err == nil {
		t.Error("duplicate registration should fail")
	}
	opts := RegistrationOptions{AllowOverwrite: true}
	if err := registry.Register("flags", set, opts); err != nil {
		t.Errorf("overwrite registration should succeed: %v", err)
	}
}

func TestRegistry_LoadYAML(t *testing.T) {
	doc := []byte(`
typesets:
  - name: json-scalar
    types: [string, i64, f64, bool]
  - name: blob
    types: [bytes]
`)
	registry := NewRegistry()
	if err := registry.LoadYAML(doc); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if registry.Count() != 2 {
		t.Fatalf("expected 2 sets, got %d", registry.Count())
	}

	set, ok := registry.Get("json-scalar")
	if !ok {
		t.Fatal("json-scalar not registered")
	}
	if set.Len() != 4 {
		t.Errorf("expected 4 members, got %d", set.Len())
	}
	if set.At(1).Kind() != KindI64 {
		t.Errorf("member 1 should be i64, got %s", set.At(1))
	}

	names := registry.Names()
	if len(names) != 2 || names[0] != "blob" || names[1] != "json-scalar" {
		t.Errorf("unexpected names: %v", names)
	}
}

func TestRegistry_LoadYAML_UnknownKind(t *testing.T) {
	doc := []byte(`
typesets:
  - name: bad
    types: [string, quaternion]
`)
	registry := NewRegistry()
	err := registry.LoadYAML(doc)
	if !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if registry.Has("bad") {
		t.Error("failed set should not be registered")
	}
}

func TestRegistry_LoadYAML_InvalidSet(t *testing.T) {
	doc := []byte(`
typesets:
  - name: dup
    types: [i64, i64]
`)
	registry := NewRegistry()
	if err := registry.LoadYAML(doc); !errors.Is(err, ErrDuplicateType) {
		t.Fatalf("expected ErrDuplicateType, got %v", err)
	}
}
