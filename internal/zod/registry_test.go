package zod_test

import (
	"testing"

	"github.com/p30arena/prisma-to-zod/internal/zod"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := zod.NewRegistry()

	r.Register("Color", "enum_ColorSchema", []string{"RED", "GREEN"})
	r.Register("Role", "enum_RoleSchema", []string{"ADMIN", "USER"})

	if ident, ok := r.Lookup("Color"); !ok || ident != "enum_ColorSchema" {
		t.Errorf("Lookup(Color) = %q, %v", ident, ok)
	}
	if ident, ok := r.Lookup("Role"); !ok || ident != "enum_RoleSchema" {
		t.Errorf("Lookup(Role) = %q, %v", ident, ok)
	}
	if _, ok := r.Lookup("Missing"); ok {
		t.Error("Lookup(Missing) should miss")
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestRegistry_LookupValues(t *testing.T) {
	r := zod.NewRegistry()
	r.Register("Color", "enum_ColorSchema", []string{"RED", "GREEN"})

	if ident, ok := r.LookupValues([]string{"RED", "GREEN"}); !ok || ident != "enum_ColorSchema" {
		t.Errorf("LookupValues(RED, GREEN) = %q, %v", ident, ok)
	}
	// Value matching is order-sensitive.
	if _, ok := r.LookupValues([]string{"GREEN", "RED"}); ok {
		t.Error("LookupValues with reordered values should miss")
	}
	if _, ok := r.LookupValues([]string{"RED"}); ok {
		t.Error("LookupValues with a subset should miss")
	}
}

func TestRegistry_LastWriteWins(t *testing.T) {
	r := zod.NewRegistry()
	r.Register("Color", "enum_ColorSchema", []string{"RED"})
	r.Register("Color", "enum_ColorSchema2", []string{"RED", "GREEN"})

	if ident, _ := r.Lookup("Color"); ident != "enum_ColorSchema2" {
		t.Errorf("expected overwrite, got %q", ident)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
	if names := r.Names(); len(names) != 1 || names[0] != "Color" {
		t.Errorf("Names() = %v", names)
	}
}

func TestRegistry_NamesInRegistrationOrder(t *testing.T) {
	r := zod.NewRegistry()
	r.Register("Zeta", "enum_ZetaSchema", []string{"z"})
	r.Register("Alpha", "enum_AlphaSchema", []string{"a"})
	r.Register("Mid", "enum_MidSchema", []string{"m"})

	names := r.Names()
	want := []string{"Zeta", "Alpha", "Mid"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
