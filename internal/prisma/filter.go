// Package prisma holds the naming policy for the generated Prisma client
// declaration surface: which top-level declarations are real models worth a
// schema, and which properties surfaced by the checker are synthetic noise.
//
// Everything here is driven by fixed naming conventions of the client
// generator, so the policy is deliberately centralized in one place instead
// of scattered through the translator.
package prisma

import (
	"path/filepath"
	"strings"
)

// EnumNamespace is the namespace the client generator emits enum
// declarations into.
const EnumNamespace = "$Enums"

// reservedPrefixes mark declaration families that belong to the client
// runtime rather than the user's data model.
var reservedPrefixes = []string{
	"Prisma",
	"$",
}

// internalSuffixes mark the generator's operation wrapper families
// (create/update inputs, query argument bags, nested payload projections).
var internalSuffixes = []string{
	"Input",
	"Args",
	"Payload",
	"Select",
	"Include",
}

// IsInternalDeclaration reports whether a top-level declaration name belongs
// to a generator-internal family and must be excluded from shape emission.
func IsInternalDeclaration(name string) bool {
	for _, prefix := range reservedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	for _, suffix := range internalSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// MatchesTypeNamePattern checks if a type name matches any of the given
// patterns. Patterns support basic glob: * matches any sequence, ? matches
// one character. For example, "Legacy*" matches "LegacyUser".
func MatchesTypeNamePattern(typeName string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(pattern, typeName); matched {
			return true
		}
	}
	return false
}

// spuriousProperties are built-in sequence methods the checker surfaces as
// members of some mapped object types. They are never data-model fields.
var spuriousProperties = map[string]bool{
	"length":      true,
	"concat":      true,
	"every":       true,
	"filter":      true,
	"find":        true,
	"findIndex":   true,
	"forEach":     true,
	"includes":    true,
	"indexOf":     true,
	"join":        true,
	"lastIndexOf": true,
	"map":         true,
	"pop":         true,
	"push":        true,
	"reduce":      true,
	"reduceRight": true,
	"reverse":     true,
	"shift":       true,
	"slice":       true,
	"some":        true,
	"sort":        true,
	"splice":      true,
	"unshift":     true,
}

// IsSpuriousProperty reports whether a property name must be suppressed from
// object translation: internal-symbol markers and built-in sequence methods.
func IsSpuriousProperty(name string) bool {
	if strings.HasPrefix(name, "__") {
		return true
	}
	// TypeScript internal symbol names carry a \xfe marker byte.
	if len(name) > 0 && name[0] == '\xfe' {
		return true
	}
	return spuriousProperties[name]
}

// opaqueJSONNames are the client's dynamic JSON payload aliases. Their value
// space is untyped by design, so translation degrades them to a pass-through
// schema instead of modeling their structure.
var opaqueJSONNames = map[string]bool{
	"JsonValue":      true,
	"InputJsonValue": true,
	"JsonObject":     true,
	"JsonArray":      true,
}

// IsOpaqueJSONName reports whether a symbol or alias name denotes the
// schema-less JSON payload family.
func IsOpaqueJSONName(name string) bool {
	return opaqueJSONNames[name]
}
