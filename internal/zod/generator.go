package zod

import (
	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	"github.com/p30arena/prisma-to-zod/internal/diagnostic"
)

// BindingKind classifies a generated top-level binding.
type BindingKind int

const (
	BindingEnum BindingKind = iota
	BindingShape
)

// Binding records one generated `export const` in the output module.
type Binding struct {
	Kind   BindingKind
	Name   string // declared TypeScript name, e.g. "User" or "Color"
	Ident  string // generated identifier, e.g. "UserSchema" or "enum_ColorSchema"
	Schema string // schema expression the identifier is bound to
}

// Options control which declarations the generator visits.
type Options struct {
	// Exclude lists additional type name patterns to skip, on top of the
	// built-in generator-internal deny policy.
	Exclude []string
	// NamespaceEnums enables walking the $Enums namespace for enum
	// declarations.
	NamespaceEnums bool
}

// Generator drives the two emission passes over a client declaration file:
// enums first (filling the registry), then model shapes (consuming it).
type Generator struct {
	checker    *shimchecker.Checker
	registry   *Registry
	diags      *diagnostic.Collector
	translator *Translator
	opts       Options

	em       *Emitter
	bindings []Binding
}

// NewGenerator creates a generator over the given checker.
func NewGenerator(checker *shimchecker.Checker, diags *diagnostic.Collector, opts Options) *Generator {
	registry := NewRegistry()
	return &Generator{
		checker:    checker,
		registry:   registry,
		diags:      diags,
		translator: NewTranslator(checker, registry, diags),
		opts:       opts,
		em:         NewEmitter(),
	}
}

// Generate produces the complete schema module source for a declaration
// file. The result is valid TypeScript regardless of diagnostics: anything
// that could not be translated faithfully appears as z.any().
func (g *Generator) Generate(sf *ast.SourceFile) string {
	g.em.Line("// Generated by prisma-to-zod. DO NOT EDIT.")
	g.em.Line(`import { z } from "zod";`)
	g.em.Blank()

	g.emitEnums(sf)
	if g.registry.Len() > 0 {
		g.em.Blank()
	}
	g.emitShapes(sf)

	return g.em.String()
}

// Bindings returns the generated bindings in emission order.
func (g *Generator) Bindings() []Binding {
	return g.bindings
}

// Registry returns the enum registry filled by the enum pass.
func (g *Generator) Registry() *Registry {
	return g.registry
}

// EnumCount returns the number of emitted enum bindings.
func (g *Generator) EnumCount() int {
	n := 0
	for _, b := range g.bindings {
		if b.Kind == BindingEnum {
			n++
		}
	}
	return n
}

// ShapeCount returns the number of emitted shape bindings.
func (g *Generator) ShapeCount() int {
	return len(g.bindings) - g.EnumCount()
}
