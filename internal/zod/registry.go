package zod

// Registry maps a declared enum name to the identifier of its generated
// schema binding (e.g., "Color" -> "enum_ColorSchema").
//
// It is an explicit context object threaded through the enum pass and the
// translator: written only while enums are emitted, read-only afterwards.
// There is no removal; entries live for the whole generation run.
type Registry struct {
	idents map[string]string
	values map[string]string
	order  []string
}

// NewRegistry creates an empty enum registry.
func NewRegistry() *Registry {
	return &Registry{
		idents: make(map[string]string),
		values: make(map[string]string),
	}
}

// Register records the schema identifier for an enum name along with its
// ordered member values. Registering the same name twice overwrites the
// identifier without conflict detection.
//
// The value set is indexed separately because the checker flattens unions:
// a property typed `Color | null` arrives as the bare literal members with
// the Color alias stripped, and can only be matched back by its values.
func (r *Registry) Register(name, schemaIdent string, values []string) {
	if _, exists := r.idents[name]; !exists {
		r.order = append(r.order, name)
	}
	r.idents[name] = schemaIdent
	r.values[valuesKey(values)] = schemaIdent
}

// Lookup returns the schema identifier registered for an enum name.
func (r *Registry) Lookup(name string) (string, bool) {
	ident, ok := r.idents[name]
	return ident, ok
}

// LookupValues returns the schema identifier of the enum whose ordered member
// values exactly match the given slice.
func (r *Registry) LookupValues(values []string) (string, bool) {
	ident, ok := r.values[valuesKey(values)]
	return ident, ok
}

func valuesKey(values []string) string {
	key := ""
	for _, v := range values {
		key += v + "\x00"
	}
	return key
}

// Names returns the registered enum names in registration order.
func (r *Registry) Names() []string {
	return r.order
}

// Len returns the number of registered enums.
func (r *Registry) Len() int {
	return len(r.order)
}
