package zod_test

import (
	"strings"
	"testing"

	"github.com/p30arena/prisma-to-zod/internal/zod"
)

func TestEmitEnums_NamespaceEnum(t *testing.T) {
	env := setupGen(t, `
declare namespace $Enums {
  enum Color {
    RED = "RED",
    GREEN = "GREEN",
    BLUE = "BLUE",
  }
}

export interface Pixel {
  color: $Enums.Color;
}
`)
	defer env.close()

	gen, out := env.generate(t)

	assertContains(t, out, `export const enum_ColorSchema = z.enum(["RED", "GREEN", "BLUE"]);`, "namespace enum binding")

	if ident, ok := gen.Registry().Lookup("Color"); !ok || ident != "enum_ColorSchema" {
		t.Errorf("expected Color registered as enum_ColorSchema, got %q (ok=%v)", ident, ok)
	}

	schema := schemaFor(t, gen, "Pixel")
	if got := fieldSchema(t, schema, "color"); got != "enum_ColorSchema" {
		t.Errorf("color: expected enum_ColorSchema, got %q", got)
	}
}

func TestEmitEnums_NamespaceDisabled(t *testing.T) {
	env := setupGen(t, `
declare namespace $Enums {
  enum Color {
    RED = "RED",
  }
}

export interface Pixel {
  x: number;
}
`)
	defer env.close()

	gen, out := env.generateWith(t, zod.Options{NamespaceEnums: false})

	assertNotContains(t, out, "enum_ColorSchema", "disabled namespace pass")
	if gen.EnumCount() != 0 {
		t.Errorf("expected 0 enums, got %d", gen.EnumCount())
	}
}

func TestEmitEnums_TopLevelLiteralUnionAlias(t *testing.T) {
	env := setupGen(t, `
export type Status = "DRAFT" | "PUBLISHED" | "ARCHIVED";
`)
	defer env.close()

	gen, out := env.generate(t)

	assertContains(t, out, `export const enum_StatusSchema = z.enum(["DRAFT", "PUBLISHED", "ARCHIVED"]);`, "literal-union alias binding")

	// The alias is claimed by the enum pass; no StatusSchema shape binding.
	assertNotContains(t, out, "export const StatusSchema", "shape pass must skip enum alias")
	if gen.ShapeCount() != 0 {
		t.Errorf("expected 0 shapes, got %d", gen.ShapeCount())
	}
}

func TestEmitEnums_DeclarationOrderPreserved(t *testing.T) {
	// Values keep source order even when it disagrees with sort order.
	env := setupGen(t, `
export type Priority = "URGENT" | "HIGH" | "LOW" | "MEDIUM";
`)
	defer env.close()

	_, out := env.generate(t)

	idx := strings.Index(out, `z.enum(["URGENT", "HIGH", "LOW", "MEDIUM"])`)
	if idx < 0 {
		t.Errorf("expected declaration-order values, got:\n%s", out)
	}
}

func TestEmitEnums_MixedUnionNotAnEnum(t *testing.T) {
	// A union mixing literals with non-literals is a shape, not an enum.
	env := setupGen(t, `
export type Loose = "a" | "b" | number;
`)
	defer env.close()

	gen, out := env.generate(t)

	assertNotContains(t, out, "enum_LooseSchema", "mixed union must not register as enum")
	if !hasBinding(gen, "Loose") {
		t.Error("expected Loose to fall through to the shape pass")
	}
}

func TestEmitEnums_ClassicTopLevelEnum(t *testing.T) {
	env := setupGen(t, `
declare enum Plan {
  FREE = "FREE",
  PRO = "PRO",
}
export interface Account {
  plan: Plan;
}
`)
	defer env.close()

	gen, out := env.generate(t)

	assertContains(t, out, `export const enum_PlanSchema = z.enum(["FREE", "PRO"]);`, "classic enum binding")

	schema := schemaFor(t, gen, "Account")
	if got := fieldSchema(t, schema, "plan"); got != "enum_PlanSchema" {
		t.Errorf("plan: expected enum_PlanSchema, got %q", got)
	}
}
