package kotlin

// PropertySpec is a `val` or `var` declaration.
type PropertySpec struct {
	Name        string
	Type        TypeName
	Doc         CodeBlock
	Annotations []AnnotationSpec
	Modifiers   ModifierSet
	Mutable     bool
	Initializer CodeBlock
	// Delegated renders the initializer as `by <initializer>`.
	Delegated bool
	Getter    *FunSpec
	Setter    *FunSpec
}

func NewProperty(name string, t TypeName, mods ...Modifier) PropertySpec {
	return PropertySpec{Name: name, Type: t, Modifiers: NewModifierSet(mods...)}
}

// WithInitializer returns a copy of p initialized with the given code.
func (p PropertySpec) WithInitializer(format string, args ...any) PropertySpec {
	p.Initializer = Code(format, args...)
	p.Delegated = false
	return p
}

// WithDelegate returns a copy of p delegated to the given code.
func (p PropertySpec) WithDelegate(format string, args ...any) PropertySpec {
	p.Initializer = Code(format, args...)
	p.Delegated = true
	return p
}

func (p PropertySpec) hasAccessors() bool {
	return p.Getter != nil || p.Setter != nil
}

func (p PropertySpec) hasAccessorBodies() bool {
	return (p.Getter != nil && !p.Getter.Body.IsEmpty()) ||
		(p.Setter != nil && !p.Setter.Body.IsEmpty())
}

func (p PropertySpec) emit(w Sink, implicit ModifierSet, withInitializer, inline bool) {
	if !inline {
		emitKdoc(w, p.Doc)
	}
	emitAnnotations(w, p.Annotations, inline)
	emitModifiers(w, p.Modifiers, implicit)
	if p.Mutable {
		w.Write("var ")
	} else {
		w.Write("val ")
	}
	w.Write(escapeName(p.Name) + ": ")
	p.Type.emit(w)
	if withInitializer && !p.Initializer.IsEmpty() {
		if p.Delegated {
			w.Write(" by ")
		} else {
			w.Write(" = ")
		}
		saved := w.StatementLine()
		if saved < 0 {
			w.SetStatementLine(0)
		}
		p.Initializer.emit(w)
		w.SetStatementLine(saved)
	}
	if inline {
		return
	}
	w.Write("\n")

	var accessorImplicit ModifierSet
	if implicit.Has(Expect) {
		accessorImplicit = accessorImplicit.With(Expect)
	}
	if implicit.Has(External) {
		accessorImplicit = accessorImplicit.With(External)
	}
	if p.Getter != nil {
		w.Indent(1)
		p.Getter.emit(w, accessorImplicit)
		w.Unindent(1)
	}
	if p.Setter != nil {
		w.Indent(1)
		p.Setter.emit(w, accessorImplicit)
		w.Unindent(1)
	}
}

func (p PropertySpec) clone() PropertySpec {
	p.Annotations = cloneAnnotations(p.Annotations)
	if p.Getter != nil {
		g := p.Getter.clone()
		p.Getter = &g
	}
	if p.Setter != nil {
		s := p.Setter.clone()
		p.Setter = &s
	}
	return p
}

func cloneProperties(in []PropertySpec) []PropertySpec {
	if in == nil {
		return nil
	}
	out := make([]PropertySpec, len(in))
	for i, p := range in {
		out[i] = p.clone()
	}
	return out
}
