package zod

import (
	"github.com/microsoft/typescript-go/shim/ast"
	"github.com/p30arena/prisma-to-zod/internal/prisma"
)

// emitEnums walks the $Enums namespace plus top-level classic enum
// declarations and literal-union type aliases, emitting one schema binding
// per enum and registering it. This pass always runs before shape emission
// so every enum reference inside a shape can resolve.
//
// Member values are collected from the AST in declaration order. The checker
// normalizes unions, and consumers may pattern-match on array position, so
// declared order is part of the contract.
func (g *Generator) emitEnums(sf *ast.SourceFile) {
	for _, stmt := range sf.Statements.Nodes {
		switch stmt.Kind {
		case ast.KindModuleDeclaration:
			if !g.opts.NamespaceEnums {
				continue
			}
			decl := stmt.AsModuleDeclaration()
			if decl.Name() == nil || decl.Name().Text() != prisma.EnumNamespace {
				continue
			}
			body := decl.Body
			if body == nil || body.Kind != ast.KindModuleBlock {
				continue
			}
			for _, inner := range body.AsModuleBlock().Statements.Nodes {
				g.emitEnumStatement(inner)
			}

		default:
			g.emitEnumStatement(stmt)
		}
	}
}

// emitEnumStatement emits an enum binding for a classic enum declaration or
// a literal-union type alias. Other statements are ignored.
func (g *Generator) emitEnumStatement(stmt *ast.Node) {
	switch stmt.Kind {
	case ast.KindEnumDeclaration:
		decl := stmt.AsEnumDeclaration()
		name := decl.Name().Text()
		values := enumMemberValues(decl.Members)
		if len(values) == 0 {
			return
		}
		g.emitEnumBinding(name, values)

	case ast.KindTypeAliasDeclaration:
		decl := stmt.AsTypeAliasDeclaration()
		name := decl.Name().Text()
		values, ok := literalUnionValues(decl.Type)
		if !ok {
			return
		}
		g.emitEnumBinding(name, values)
	}
}

// emitEnumBinding writes the enum schema binding and registers its
// identifier. Registration is last-write-wins: a namespace enum and a
// top-level alias of the same name resolve to whichever was emitted last.
func (g *Generator) emitEnumBinding(name string, values []string) {
	ident := "enum_" + name + "Schema"
	schema := "z.enum([" + joinTSStrings(values) + "])"
	g.em.Line("export const %s = %s;", ident, schema)
	g.registry.Register(name, ident, values)
	g.bindings = append(g.bindings, Binding{Kind: BindingEnum, Name: name, Ident: ident, Schema: schema})
}

// enumMemberValues collects classic enum member values in declaration order.
// A member without a string initializer contributes its own name, matching
// how the client generator emits string enums.
func enumMemberValues(members *ast.NodeList) []string {
	if members == nil {
		return nil
	}
	var values []string
	for _, member := range members.Nodes {
		m := member.AsEnumMember()
		if m.Initializer != nil && m.Initializer.Kind == ast.KindStringLiteral {
			values = append(values, m.Initializer.Text())
			continue
		}
		if m.Name() != nil {
			values = append(values, m.Name().Text())
		}
	}
	return values
}

// literalUnionValues extracts the values of a type alias whose type node is
// a union where every member is a string literal. Returns false for any
// other shape.
func literalUnionValues(typeNode *ast.Node) ([]string, bool) {
	if typeNode == nil || typeNode.Kind != ast.KindUnionType {
		return nil, false
	}
	var values []string
	for _, member := range typeNode.AsUnionTypeNode().Types.Nodes {
		if member.Kind != ast.KindLiteralType {
			return nil, false
		}
		lit := member.AsLiteralTypeNode().Literal
		if lit == nil || lit.Kind != ast.KindStringLiteral {
			return nil, false
		}
		values = append(values, lit.Text())
	}
	return values, len(values) > 0
}
