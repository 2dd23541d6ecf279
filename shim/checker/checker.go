// Re-exports the subset of github.com/microsoft/typescript-go/internal/checker
// consumed by this repository. Accessors named Checker_x / Type_x reach
// unexported members via go:linkname, matching the upstream shim convention.
package checker

import (
	"unsafe"

	"github.com/microsoft/typescript-go/internal/ast"
	"github.com/microsoft/typescript-go/internal/checker"
)

type (
	Checker       = checker.Checker
	Type          = checker.Type
	TypeId        = checker.TypeId
	TypeAlias     = checker.TypeAlias
	LiteralType   = checker.LiteralType
	Signature     = checker.Signature
	TypeFlags     = checker.TypeFlags
	SignatureKind = checker.SignatureKind
)

const (
	TypeFlagsAny            = checker.TypeFlagsAny
	TypeFlagsString         = checker.TypeFlagsString
	TypeFlagsNumber         = checker.TypeFlagsNumber
	TypeFlagsBoolean        = checker.TypeFlagsBoolean
	TypeFlagsBigInt         = checker.TypeFlagsBigInt
	TypeFlagsStringLiteral  = checker.TypeFlagsStringLiteral
	TypeFlagsNumberLiteral  = checker.TypeFlagsNumberLiteral
	TypeFlagsBooleanLiteral = checker.TypeFlagsBooleanLiteral
	TypeFlagsEnumLiteral    = checker.TypeFlagsEnumLiteral
	TypeFlagsNull           = checker.TypeFlagsNull
	TypeFlagsUndefined      = checker.TypeFlagsUndefined
	TypeFlagsVoid           = checker.TypeFlagsVoid
	TypeFlagsUnion          = checker.TypeFlagsUnion
	TypeFlagsObject         = checker.TypeFlagsObject
)

const (
	SignatureKindCall = checker.SignatureKindCall
)

//go:linkname Checker_getTypeFromTypeNode github.com/microsoft/typescript-go/internal/checker.(*Checker).getTypeFromTypeNode
func Checker_getTypeFromTypeNode(c *Checker, node *ast.Node) *Type

//go:linkname Checker_getDeclaredTypeOfSymbol github.com/microsoft/typescript-go/internal/checker.(*Checker).getDeclaredTypeOfSymbol
func Checker_getDeclaredTypeOfSymbol(c *Checker, symbol *ast.Symbol) *Type

//go:linkname Checker_getTypeOfSymbol github.com/microsoft/typescript-go/internal/checker.(*Checker).getTypeOfSymbol
func Checker_getTypeOfSymbol(c *Checker, symbol *ast.Symbol) *Type

//go:linkname Checker_getPropertiesOfType github.com/microsoft/typescript-go/internal/checker.(*Checker).getPropertiesOfType
func Checker_getPropertiesOfType(c *Checker, t *Type) []*ast.Symbol

//go:linkname Checker_getTypeArguments github.com/microsoft/typescript-go/internal/checker.(*Checker).getTypeArguments
func Checker_getTypeArguments(c *Checker, t *Type) []*Type

//go:linkname Checker_isArrayType github.com/microsoft/typescript-go/internal/checker.(*Checker).isArrayType
func Checker_isArrayType(c *Checker, t *Type) bool

//go:linkname Checker_getSignaturesOfType github.com/microsoft/typescript-go/internal/checker.(*Checker).getSignaturesOfType
func Checker_getSignaturesOfType(c *Checker, t *Type, kind SignatureKind) []*Signature

// typeMirror mirrors the layout of checker.Type so Type_alias can read the
// unexported alias field; go:linkname cannot target struct fields.
type typeMirror struct {
	flags       checker.TypeFlags
	objectFlags checker.ObjectFlags
	id          checker.TypeId
	symbol      *ast.Symbol
	alias       *checker.TypeAlias
	checker     *checker.Checker
	data        checker.TypeData
}

func Type_alias(t *Type) *TypeAlias {
	return (*typeMirror)(unsafe.Pointer(t)).alias
}
