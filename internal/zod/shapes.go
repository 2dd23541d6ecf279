package zod

import (
	"fmt"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	"github.com/p30arena/prisma-to-zod/internal/prisma"
)

// emitShapes walks top-level interface declarations and type aliases and
// emits one schema binding per model shape. Runs after the enum pass so a
// field typed by an enum resolves to the shared enum schema.
func (g *Generator) emitShapes(sf *ast.SourceFile) {
	for _, stmt := range sf.Statements.Nodes {
		switch stmt.Kind {
		case ast.KindInterfaceDeclaration:
			g.emitInterfaceShape(stmt.AsInterfaceDeclaration())
		case ast.KindTypeAliasDeclaration:
			g.emitAliasShape(stmt.AsTypeAliasDeclaration())
		}
	}
}

// shouldSkipShape applies the deny policy for top-level declarations:
// generator-internal families, opaque JSON payloads, names already claimed by
// the enum pass, and user-configured exclusion patterns.
func (g *Generator) shouldSkipShape(name string) bool {
	if prisma.IsInternalDeclaration(name) {
		return true
	}
	if prisma.IsOpaqueJSONName(name) {
		return true
	}
	if _, isEnum := g.registry.Lookup(name); isEnum {
		return true
	}
	return prisma.MatchesTypeNamePattern(name, g.opts.Exclude)
}

// emitInterfaceShape translates a model interface into a z.object schema.
//
// Fields come from the interface's own declared members rather than the
// checker's flattened property list, so inherited and merged members from
// the client's method surface never leak in.
func (g *Generator) emitInterfaceShape(decl *ast.InterfaceDeclaration) {
	name := decl.Name().Text()
	if g.shouldSkipShape(name) {
		return
	}

	g.translator.ForDecl(name)

	// Seed the seen set with the interface's own type identity, so a field
	// referring back to the model degrades immediately instead of recursing.
	seen := make(Seen)
	if sym := g.checker.GetSymbolAtLocation(decl.Name()); sym != nil {
		if declared := shimchecker.Checker_getDeclaredTypeOfSymbol(g.checker, sym); declared != nil {
			seen[declared.Id()] = true
		}
	}

	var fields []string
	for _, member := range decl.Members.Nodes {
		if member.Kind != ast.KindPropertySignature {
			continue
		}
		nameNode := member.Name()
		if nameNode == nil {
			continue
		}
		propName := nameNode.Text()
		if prisma.IsSpuriousProperty(propName) {
			continue
		}

		propSym := g.checker.GetSymbolAtLocation(nameNode)
		if propSym == nil {
			continue
		}
		propType := shimchecker.Checker_getTypeOfSymbol(g.checker, propSym)

		expr := g.translator.Translate(propType, seen)
		if propSym.Flags&ast.SymbolFlagsOptional != 0 || UnionIncludesUndefined(propType) {
			expr += ".optional()"
		}
		fields = append(fields, fmt.Sprintf("  %s: %s,", propertyKey(propName), expr))
	}

	schema := schemaAny
	if len(fields) > 0 {
		schema = "z.object({\n" + strings.Join(fields, "\n") + "\n})"
	}
	g.emitShapeBinding(name, schema)
}

// emitAliasShape translates a top-level type alias into a schema binding.
// Literal-union aliases were already consumed by the enum pass; everything
// else goes through the general translator.
func (g *Generator) emitAliasShape(decl *ast.TypeAliasDeclaration) {
	name := decl.Name().Text()
	if g.shouldSkipShape(name) {
		return
	}

	g.translator.ForDecl(name)
	t := shimchecker.Checker_getTypeFromTypeNode(g.checker, decl.Type)
	schema := g.translator.Translate(t, make(Seen))
	g.emitShapeBinding(name, schema)
}

func (g *Generator) emitShapeBinding(name, schema string) {
	ident := name + "Schema"
	g.em.Line("export const %s = %s;", ident, schema)
	g.em.Blank()
	g.bindings = append(g.bindings, Binding{Kind: BindingShape, Name: name, Ident: ident, Schema: schema})
}
