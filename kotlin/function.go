package kotlin

const (
	constructorName = "constructor"
	getterName      = "get"
	setterName      = "set"
)

// FunSpec is a function, a secondary constructor, or a property accessor.
type FunSpec struct {
	Name          string
	Doc           CodeBlock
	Annotations   []AnnotationSpec
	Modifiers     ModifierSet
	TypeVariables []TypeVariable
	Receiver      TypeName
	Parameters    []ParameterSpec
	ReturnType    TypeName
	Body          CodeBlock
	Constructor   bool
	// Delegation is "this" or "super" for constructors that delegate,
	// rendered as `: this(<DelegationArgs>)`.
	Delegation     string
	DelegationArgs []CodeBlock
}

func NewFun(name string, mods ...Modifier) FunSpec {
	return FunSpec{Name: name, Modifiers: NewModifierSet(mods...)}
}

// NewConstructor returns a constructor with the given parameters. Use it both
// for primary and secondary constructors.
func NewConstructor(params ...ParameterSpec) FunSpec {
	return FunSpec{Name: constructorName, Constructor: true, Parameters: params}
}

func NewGetter(body CodeBlock, mods ...Modifier) FunSpec {
	return FunSpec{Name: getterName, Body: body, Modifiers: NewModifierSet(mods...)}
}

// NewSetter returns a setter. A setter without parameter and body renders as a
// bare `set`, which is how visibility of a setter is narrowed.
func NewSetter(param *ParameterSpec, body CodeBlock, mods ...Modifier) FunSpec {
	f := FunSpec{Name: setterName, Body: body, Modifiers: NewModifierSet(mods...)}
	if param != nil {
		f.Parameters = []ParameterSpec{*param}
	}
	return f
}

// Parameter returns the parameter called name.
func (f FunSpec) Parameter(name string) (ParameterSpec, bool) {
	for _, p := range f.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return ParameterSpec{}, false
}

func (f FunSpec) isAccessor() bool {
	return !f.Constructor && (f.Name == getterName || f.Name == setterName)
}

func (f FunSpec) isEmptySetter() bool {
	return f.Name == setterName && len(f.Parameters) == 0 && f.Body.IsEmpty()
}

func (f FunSpec) emit(w Sink, implicit ModifierSet) {
	emitKdoc(w, f.Doc)
	emitAnnotations(w, f.Annotations, false)
	emitModifiers(w, f.Modifiers, implicit)

	switch {
	case f.Constructor:
		w.Write("constructor")
	case f.isAccessor():
		w.Write(f.Name)
	default:
		w.Write("fun ")
		if len(f.TypeVariables) > 0 {
			emitTypeVariables(w, f.TypeVariables)
			w.Write(" ")
		}
		if !f.Receiver.IsZero() {
			f.Receiver.emit(w)
			w.Write(".")
		}
		w.Write(escapeName(f.Name))
	}

	if !f.isEmptySetter() {
		emitParameters(w, f.Parameters, func(p ParameterSpec) { p.emit(w) })
	}
	if !f.Constructor && !f.ReturnType.IsZero() && !f.ReturnType.Equal(Unit) {
		w.Write(": ")
		f.ReturnType.emit(w)
	}
	if f.Constructor && f.Delegation != "" {
		w.Write(" : " + f.Delegation + "(")
		joinCode(w, f.DelegationArgs, ", ")
		w.Write(")")
	}
	emitWhereBlock(w, f.TypeVariables)

	if f.hasNoBody(implicit) {
		w.Write("\n")
		return
	}
	w.Write(" {\n")
	w.Indent(1)
	f.Body.emit(w)
	if !f.Body.IsEmpty() && !f.Body.endsWithNewline() {
		w.Write("\n")
	}
	w.Unindent(1)
	w.Write("}\n")
}

func (f FunSpec) hasNoBody(implicit ModifierSet) bool {
	switch {
	case f.Modifiers.HasAny(Abstract, External, Expect):
		return true
	case implicit.Has(Expect), implicit.Has(External):
		return true
	case implicit.Has(Abstract) && f.Body.IsEmpty() && !f.Constructor:
		return true
	case f.Constructor && f.Body.IsEmpty():
		return true
	case f.isEmptySetter():
		return true
	case f.isAccessor() && f.Body.IsEmpty():
		return true
	}
	return false
}

func (f FunSpec) clone() FunSpec {
	f.Annotations = cloneAnnotations(f.Annotations)
	f.TypeVariables = cloneTypeVariables(f.TypeVariables)
	f.Parameters = cloneParameters(f.Parameters)
	f.DelegationArgs = append([]CodeBlock(nil), f.DelegationArgs...)
	return f
}

func cloneFunctions(in []FunSpec) []FunSpec {
	if in == nil {
		return nil
	}
	out := make([]FunSpec, len(in))
	for i, f := range in {
		out[i] = f.clone()
	}
	return out
}
