package kotlin

// ConstructorProperties returns the properties that mirror a parameter of
// primary and can therefore be declared inline in its parameter list, keyed by
// name. A property qualifies when a parameter has the same name and type and
// the property's initializer is exactly `%N` of that parameter. Properties
// with accessors or a delegate never qualify.
func ConstructorProperties(primary *FunSpec, properties []PropertySpec) map[string]PropertySpec {
	out := make(map[string]PropertySpec)
	if primary == nil {
		return out
	}
	for _, p := range properties {
		param, ok := primary.Parameter(p.Name)
		if !ok || !param.Type.Equal(p.Type) {
			continue
		}
		if p.Delegated || p.hasAccessors() {
			continue
		}
		if !p.Initializer.Equal(Code("%N", param.Name)) {
			continue
		}
		out[p.Name] = p
	}
	return out
}

// ConstructorProperties is the resolver applied to t's own facets.
func (t *TypeSpec) ConstructorProperties() map[string]PropertySpec {
	return ConstructorProperties(t.primaryConstructor, t.properties)
}

// HasNoBody reports whether t renders without a braced block. Annotation
// declarations never have one.
func (t *TypeSpec) HasNoBody() bool {
	return t.hasNoBody(t.ConstructorProperties())
}

func (t *TypeSpec) hasNoBody(elided map[string]PropertySpec) bool {
	if t.kind == KindAnnotation {
		return true
	}
	for _, p := range t.properties {
		if _, ok := elided[p.Name]; !ok {
			return false
		}
	}
	return t.companion == nil &&
		len(t.enumConstants) == 0 &&
		t.initializer.IsEmpty() &&
		(t.primaryConstructor == nil || t.primaryConstructor.Body.IsEmpty()) &&
		len(t.functions) == 0 &&
		len(t.nested) == 0
}
