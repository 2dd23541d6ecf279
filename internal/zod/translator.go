package zod

import (
	"fmt"
	"strings"

	"github.com/microsoft/typescript-go/shim/ast"
	shimchecker "github.com/microsoft/typescript-go/shim/checker"
	"github.com/p30arena/prisma-to-zod/internal/diagnostic"
	"github.com/p30arena/prisma-to-zod/internal/prisma"
)

// schemaAny is the unconstrained pass-through schema, used whenever fidelity
// cannot be preserved (opaque JSON payloads, cycles, unsupported shapes).
const schemaAny = "z.any()"

// Seen tracks the type identities visited during one top-level translation.
// Property-bearing shapes stay recorded for the remainder of that translation
// (never removed), so a named model reached twice degrades both times; unions
// and arrays are recorded only while their own subtree is being translated,
// because those types are interned checker-wide and a sibling field of the
// same type must not trip the guard. Together the two disciplines cover every
// recursion path, so translation always terminates.
type Seen map[shimchecker.TypeId]bool

// Translator converts checker types into Zod schema expressions.
// It only reads the enum registry and records diagnostics; translation
// itself has no other side effects.
type Translator struct {
	checker *shimchecker.Checker
	enums   *Registry
	diags   *diagnostic.Collector

	// decl names the top-level declaration currently being translated,
	// for diagnostics only.
	decl string
}

// NewTranslator creates a translator over the given checker and registry.
func NewTranslator(checker *shimchecker.Checker, enums *Registry, diags *diagnostic.Collector) *Translator {
	return &Translator{checker: checker, enums: enums, diags: diags}
}

// ForDecl records which top-level declaration subsequent translations belong
// to, so diagnostics can point at it.
func (tr *Translator) ForDecl(name string) {
	tr.decl = name
}

// Translate converts a checker type into a Zod schema expression.
//
// The resolution order is a deliberate priority: opaque payload and enum
// identity checks first (an enum union must resolve to its shared schema
// before the union rules would flatten it to an inline enum), then
// primitives, arrays, unions, objects, and finally the pass-through fallback.
// Cycle guards sit on the three structural paths recursion can close
// through: unions, arrays, and property-bearing shapes (see Seen).
func (tr *Translator) Translate(t *shimchecker.Type, seen Seen) string {
	if t == nil {
		return schemaAny
	}

	// Alias identity: opaque JSON payloads and registered enums resolve by
	// name before any structural rule runs.
	if name := typeAliasName(t); name != "" {
		if prisma.IsOpaqueJSONName(name) {
			return schemaAny
		}
		if expr, ok := tr.lookupEnum(t, name); ok {
			return expr
		}
	}
	if sym := t.Symbol(); sym != nil && sym.Name != "" {
		name := sym.Name
		if prisma.IsOpaqueJSONName(name) {
			return schemaAny
		}
		if expr, ok := tr.lookupEnum(t, name); ok {
			return expr
		}
	}

	flags := t.Flags()

	if flags&shimchecker.TypeFlagsUnion != 0 {
		return tr.translateUnion(t, seen)
	}

	// Literals before their widened primitives.
	if flags&shimchecker.TypeFlagsStringLiteral != 0 {
		if lit := t.AsLiteralType(); lit != nil {
			return fmt.Sprintf("z.literal(%s)", tsString(fmt.Sprintf("%v", lit.Value())))
		}
	}
	if flags&shimchecker.TypeFlagsNumberLiteral != 0 {
		if lit := t.AsLiteralType(); lit != nil {
			return fmt.Sprintf("z.literal(%v)", lit.Value())
		}
	}
	if flags&shimchecker.TypeFlagsBooleanLiteral != 0 {
		return "z.boolean()"
	}

	if flags&shimchecker.TypeFlagsString != 0 {
		return "z.string()"
	}
	if flags&shimchecker.TypeFlagsNumber != 0 {
		return "z.number()"
	}
	if flags&shimchecker.TypeFlagsBoolean != 0 {
		return "z.boolean()"
	}
	if flags&shimchecker.TypeFlagsBigInt != 0 {
		return "z.bigint()"
	}

	if flags&shimchecker.TypeFlagsObject != 0 {
		return tr.translateObjectType(t, seen)
	}

	return tr.fallback(t)
}

// lookupEnum resolves a type name against the enum registry. A name that is
// declared inside the enum namespace but missing from the registry warns and
// falls through, so generation degrades instead of aborting.
func (tr *Translator) lookupEnum(t *shimchecker.Type, name string) (string, bool) {
	if ident, ok := tr.enums.Lookup(name); ok {
		return ident, true
	}
	if sym := t.Symbol(); sym != nil && sym.Parent != nil && sym.Parent.Name == prisma.EnumNamespace {
		tr.diags.Warn(diagnostic.CategoryEnumUnresolved, tr.decl,
			fmt.Sprintf("enum %s.%s is not registered; falling back to z.any()", prisma.EnumNamespace, name))
	}
	return "", false
}

// translateUnion handles union types. Null and undefined members are
// stripped first: null marks the result nullable, undefined marks the
// enclosing property optional (see UnionIncludesUndefined).
//
// A recursive alias can close a cycle through a union alone (e.g.
// `type Weird = string | Weird[]`), so the union guards its own subtree. The
// entry is removed on return: unions are interned, and a later sibling field
// of the same union type is not a cycle.
func (tr *Translator) translateUnion(t *shimchecker.Type, seen Seen) string {
	if seen[t.Id()] {
		tr.diags.Warn(diagnostic.CategoryTypeCycle, tr.decl,
			"recursive type reached again; falling back to z.any()")
		return schemaAny
	}
	seen[t.Id()] = true
	defer delete(seen, t.Id())

	members := t.Types()

	var rest []*shimchecker.Type
	nullable := false
	sawBoolean := false
	for _, m := range members {
		f := m.Flags()
		if f&shimchecker.TypeFlagsNull != 0 {
			nullable = true
			continue
		}
		if f&shimchecker.TypeFlagsUndefined != 0 {
			continue
		}
		// boolean appears as the pair of its literal members; collapse.
		if f&shimchecker.TypeFlagsBooleanLiteral != 0 {
			if !sawBoolean {
				sawBoolean = true
				rest = append(rest, m)
			}
			continue
		}
		rest = append(rest, m)
	}

	if len(rest) == 0 {
		expr := schemaAny
		if nullable {
			expr += ".nullable()"
		}
		return expr
	}

	// Enum recovery: `Color | null` arrives flattened to the bare literal
	// members with the alias stripped. If the members map back to a
	// registered enum, reference its shared schema.
	if ident, ok := tr.enumForMembers(rest); ok {
		if nullable {
			ident += ".nullable()"
		}
		return ident
	}

	// Inline literal-union enum: every member a string literal with no
	// registered owner, listed in declared order.
	if !sawBoolean {
		if values, ok := stringLiteralMembers(rest); ok {
			expr := fmt.Sprintf("z.enum([%s])", joinTSStrings(values))
			if nullable {
				expr += ".nullable()"
			}
			return expr
		}
	}

	if len(rest) == 1 {
		expr := tr.Translate(rest[0], seen)
		if nullable {
			expr += ".nullable()"
		}
		return expr
	}

	parts := make([]string, len(rest))
	for i, m := range rest {
		parts[i] = tr.Translate(m, seen)
	}
	expr := fmt.Sprintf("z.union([%s])", strings.Join(parts, ", "))
	if nullable {
		expr += ".nullable()"
	}
	return expr
}

// enumForMembers maps a slice of union members back to a registered enum.
// Classic enum members carry their parent enum symbol; literal-union aliases
// are matched by their ordered value set.
func (tr *Translator) enumForMembers(members []*shimchecker.Type) (string, bool) {
	parent := ""
	for _, m := range members {
		sym := m.Symbol()
		if sym == nil || sym.Parent == nil || sym.Parent.Name == "" {
			parent = ""
			break
		}
		if parent == "" {
			parent = sym.Parent.Name
		} else if parent != sym.Parent.Name {
			parent = ""
			break
		}
	}
	if parent != "" {
		if ident, ok := tr.enums.Lookup(parent); ok {
			return ident, true
		}
	}

	if values, ok := stringLiteralMembers(members); ok {
		if ident, ok := tr.enums.LookupValues(values); ok {
			return ident, true
		}
	}
	return "", false
}

// translateObjectType handles object-flagged types: Date, arrays, function
// types, and property-bearing shapes.
func (tr *Translator) translateObjectType(t *shimchecker.Type, seen Seen) string {
	if sym := t.Symbol(); sym != nil && sym.Name == "Date" {
		return "z.date()"
	}

	if shimchecker.Checker_isArrayType(tr.checker, t) {
		// Same subtree-scoped guard as translateUnion: `type W = W[]` cycles
		// through the array type itself without any property in between.
		if seen[t.Id()] {
			tr.diags.Warn(diagnostic.CategoryTypeCycle, tr.decl,
				"recursive type reached again; falling back to z.any()")
			return schemaAny
		}
		seen[t.Id()] = true
		defer delete(seen, t.Id())

		typeArgs := shimchecker.Checker_getTypeArguments(tr.checker, t)
		if len(typeArgs) > 0 {
			return fmt.Sprintf("z.array(%s)", tr.Translate(typeArgs[0], seen))
		}
		return fmt.Sprintf("z.array(%s)", schemaAny)
	}

	props := shimchecker.Checker_getPropertiesOfType(tr.checker, t)
	callSigs := shimchecker.Checker_getSignaturesOfType(tr.checker, t, shimchecker.SignatureKindCall)
	if len(callSigs) > 0 && len(props) == 0 {
		return tr.fallback(t)
	}

	// Property-bearing shapes stay recorded for the rest of the translation:
	// a model reached a second time anywhere below is treated as a cycle.
	if seen[t.Id()] {
		tr.diags.Warn(diagnostic.CategoryTypeCycle, tr.decl,
			"recursive type reached again; falling back to z.any()")
		return schemaAny
	}
	seen[t.Id()] = true

	if expr, ok := tr.translateProperties(props, seen); ok {
		return expr
	}

	return tr.fallback(t)
}

// translateProperties emits an object-shape schema from checker property
// symbols. Returns false if no real property survives the deny policy.
func (tr *Translator) translateProperties(props []*ast.Symbol, seen Seen) (string, bool) {
	var fields []string
	for _, prop := range props {
		if prisma.IsSpuriousProperty(prop.Name) {
			continue
		}
		propType := shimchecker.Checker_getTypeOfSymbol(tr.checker, prop)
		expr := tr.Translate(propType, seen)
		if prop.Flags&ast.SymbolFlagsOptional != 0 || UnionIncludesUndefined(propType) {
			expr += ".optional()"
		}
		fields = append(fields, fmt.Sprintf("  %s: %s,", propertyKey(prop.Name), expr))
	}
	if len(fields) == 0 {
		return "", false
	}
	return "z.object({\n" + strings.Join(fields, "\n") + "\n})", true
}

// fallback records an unsupported-type diagnostic and degrades to the
// pass-through schema.
func (tr *Translator) fallback(t *shimchecker.Type) string {
	name := ""
	if sym := t.Symbol(); sym != nil {
		name = sym.Name
	}
	msg := "unsupported type shape; falling back to z.any()"
	if name != "" && name != "__type" && name != "__object" {
		msg = fmt.Sprintf("unsupported type %q; falling back to z.any()", name)
	}
	tr.diags.Warn(diagnostic.CategoryTypeUnsupported, tr.decl, msg)
	return schemaAny
}

// UnionIncludesUndefined reports whether a type is a union with an undefined
// member. A property typed `T | undefined` is equivalent to an optional
// property and gets the same optional marker.
func UnionIncludesUndefined(t *shimchecker.Type) bool {
	if t == nil || t.Flags()&shimchecker.TypeFlagsUnion == 0 {
		return false
	}
	for _, m := range t.Types() {
		if m.Flags()&shimchecker.TypeFlagsUndefined != 0 {
			return true
		}
	}
	return false
}

// typeAliasName returns the alias symbol name of a type, filtering out the
// checker's anonymous/structural placeholder names.
func typeAliasName(t *shimchecker.Type) string {
	alias := shimchecker.Type_alias(t)
	if alias == nil {
		return ""
	}
	sym := alias.Symbol()
	if sym == nil {
		return ""
	}
	name := sym.Name
	if name == "" || name == "__type" || name == "__object" || name[0] == '\xfe' {
		return ""
	}
	return name
}

// stringLiteralMembers extracts the literal values of a union slice if every
// member is a string (or string-valued enum) literal.
func stringLiteralMembers(members []*shimchecker.Type) ([]string, bool) {
	var values []string
	for _, m := range members {
		if m.Flags()&shimchecker.TypeFlagsStringLiteral == 0 {
			return nil, false
		}
		lit := m.AsLiteralType()
		if lit == nil {
			return nil, false
		}
		values = append(values, fmt.Sprintf("%v", lit.Value()))
	}
	return values, len(values) > 0
}

// propertyKey renders an object property name, quoting it when it is not a
// plain identifier.
func propertyKey(name string) string {
	if isIdentifier(name) {
		return name
	}
	return tsString(name)
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// tsString renders a double-quoted TypeScript string literal.
func tsString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func joinTSStrings(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = tsString(v)
	}
	return strings.Join(quoted, ", ")
}
