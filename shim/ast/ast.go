// Re-exports the subset of github.com/microsoft/typescript-go/internal/ast
// consumed by this repository. The shim module lives under the
// typescript-go module path so the internal import is permitted.
package ast

import (
	"github.com/microsoft/typescript-go/internal/ast"
)

type (
	Node        = ast.Node
	NodeList    = ast.NodeList
	SourceFile  = ast.SourceFile
	Symbol      = ast.Symbol
	SymbolFlags = ast.SymbolFlags
	Diagnostic  = ast.Diagnostic
	Kind        = ast.Kind

	InterfaceDeclaration = ast.InterfaceDeclaration
	TypeAliasDeclaration = ast.TypeAliasDeclaration
)

const (
	KindIdentifier           = ast.KindIdentifier
	KindStringLiteral        = ast.KindStringLiteral
	KindTypeAliasDeclaration = ast.KindTypeAliasDeclaration
	KindInterfaceDeclaration = ast.KindInterfaceDeclaration
	KindEnumDeclaration      = ast.KindEnumDeclaration
	KindModuleDeclaration    = ast.KindModuleDeclaration
	KindModuleBlock          = ast.KindModuleBlock
	KindPropertySignature    = ast.KindPropertySignature
	KindUnionType            = ast.KindUnionType
	KindLiteralType          = ast.KindLiteralType
	KindTypeReference        = ast.KindTypeReference
)

const (
	SymbolFlagsOptional = ast.SymbolFlagsOptional
)
