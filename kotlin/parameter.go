package kotlin

// ParameterSpec is a function or constructor parameter.
type ParameterSpec struct {
	Name        string
	Type        TypeName
	Modifiers   ModifierSet
	Annotations []AnnotationSpec
	// Default is rendered as ` = <default>` when non-empty.
	Default CodeBlock
}

func NewParameter(name string, t TypeName, mods ...Modifier) ParameterSpec {
	return ParameterSpec{Name: name, Type: t, Modifiers: NewModifierSet(mods...)}
}

// WithDefault returns a copy of p with a default value.
func (p ParameterSpec) WithDefault(format string, args ...any) ParameterSpec {
	p.Default = Code(format, args...)
	return p
}

func (p ParameterSpec) emit(w Sink) {
	emitAnnotations(w, p.Annotations, true)
	emitModifiers(w, p.Modifiers, ModifierSet{})
	w.Write(escapeName(p.Name) + ": ")
	p.Type.emit(w)
	p.emitDefault(w)
}

func (p ParameterSpec) emitDefault(w Sink) {
	if p.Default.IsEmpty() {
		return
	}
	w.Write(" = ")
	p.Default.emit(w)
}

func (p ParameterSpec) clone() ParameterSpec {
	p.Annotations = cloneAnnotations(p.Annotations)
	return p
}

func cloneParameters(in []ParameterSpec) []ParameterSpec {
	if in == nil {
		return nil
	}
	out := make([]ParameterSpec, len(in))
	for i, p := range in {
		out[i] = p.clone()
	}
	return out
}
