package kotlin

// emit writes t. constant names the enum constant when t is that constant's
// body and is empty otherwise.
func (t *TypeSpec) emit(w Sink, constant string) {
	saved := w.StatementLine()
	w.SetStatementLine(-1)
	defer w.SetStatementLine(saved)

	elided := t.ConstructorProperties()
	noBody := t.hasNoBody(elided)

	switch {
	case constant != "":
		emitKdoc(w, t.doc)
		emitAnnotations(w, t.annotations, false)
		w.Write(escapeName(constant))
		if len(t.anonymousArgs) > 0 {
			w.Write("(")
			joinCode(w, t.anonymousArgs, ", ")
			w.Write(")")
		}
		if noBody {
			return
		}
	case t.anonymous:
		w.Write("object")
		t.emitAnonymousSupertypes(w)
		if noBody {
			w.Write(" {\n}")
			return
		}
	default:
		t.emitHeader(w, elided)
		if noBody {
			w.Write("\n")
			return
		}
	}
	w.Write(" {\n")

	w.EnterScope(t.name)
	w.Indent(1)
	t.emitMembers(w, elided)
	w.Unindent(1)
	w.ExitScope()

	w.Write("}")
	if constant == "" && !t.anonymous {
		w.Write("\n")
	}
}

// separator returns a func to call before each item of a list: it writes
// prefix the first time and sep afterwards.
func separator(w Sink, prefix, sep string) func() {
	first := true
	return func() {
		if first {
			w.Write(prefix)
			first = false
			return
		}
		w.Write(sep)
	}
}

func (t *TypeSpec) hasSuperclass() bool {
	return !t.superclass.IsZero() && !t.superclass.Equal(Any)
}

func (t *TypeSpec) hasConstructorFunctions() bool {
	for _, f := range t.functions {
		if f.Constructor {
			return true
		}
	}
	return false
}

func (t *TypeSpec) emitAnonymousSupertypes(w Sink) {
	next := separator(w, " : ", ", ")
	if t.hasSuperclass() {
		next()
		t.superclass.emit(w)
		w.Write("(")
		joinCode(w, t.anonymousArgs, ", ")
		w.Write(")")
	}
	for _, si := range t.superinterfaces {
		next()
		si.Type.emit(w)
	}
}

func (t *TypeSpec) emitHeader(w Sink, elided map[string]PropertySpec) {
	emitKdoc(w, t.doc)
	emitAnnotations(w, t.annotations, false)
	emitModifiers(w, t.modifiers, NewModifierSet(Public))
	w.Write(t.kind.Keyword())
	if t.name != "" {
		w.Write(" " + escapeName(t.name))
	}
	emitTypeVariables(w, t.typeVariables)

	if pc := t.primaryConstructor; pc != nil {
		w.EnterScope(t.name)
		t.emitPrimaryConstructor(w, pc, elided)
		w.ExitScope()
	}

	next := separator(w, " : ", ", ")
	if t.hasSuperclass() {
		next()
		t.superclass.emit(w)
		if t.primaryConstructor != nil || !t.hasConstructorFunctions() {
			w.Write("(")
			joinCode(w, t.superclassArgs, ", ")
			w.Write(")")
		}
	}
	for _, si := range t.superinterfaces {
		next()
		si.Type.emit(w)
		if !si.Delegate.IsEmpty() {
			w.Write(" by ")
			si.Delegate.emit(w)
		}
	}
	emitWhereBlock(w, t.typeVariables)
}

func (t *TypeSpec) emitPrimaryConstructor(w Sink, pc *FunSpec, elided map[string]PropertySpec) {
	if len(pc.Annotations) > 0 || !pc.Modifiers.IsEmpty() {
		w.Write(" ")
		emitAnnotations(w, pc.Annotations, true)
		emitModifiers(w, pc.Modifiers, ModifierSet{})
		w.Write("constructor")
	}
	implicit := t.kind.ImplicitPropertyModifiers(t.modifiers)
	emitParameters(w, pc.Parameters, func(p ParameterSpec) {
		if prop, ok := elided[p.Name]; ok {
			prop.emit(w, implicit, false, true)
			p.emitDefault(w)
			return
		}
		p.emit(w)
	})
}

// hasMembersAfterConstants reports whether anything is rendered after the
// enum constants, which decides whether the last constant ends with `;`.
func (t *TypeSpec) hasMembersAfterConstants(elided map[string]PropertySpec) bool {
	for _, p := range t.properties {
		if _, ok := elided[p.Name]; !ok {
			return true
		}
	}
	return (t.primaryConstructor != nil && !t.primaryConstructor.Body.IsEmpty()) ||
		!t.initializer.IsEmpty() ||
		len(t.functions) > 0 ||
		len(t.nested) > 0 ||
		t.companion != nil
}

func (t *TypeSpec) emitMembers(w Sink, elided map[string]PropertySpec) {
	propertyImplicit := t.kind.ImplicitPropertyModifiers(t.modifiers)
	functionImplicit := t.kind.ImplicitFunctionModifiers(t.modifiers)
	member := separator(w, "", "\n")

	for i, c := range t.enumConstants {
		member()
		c.Body.emit(w, c.Name)
		switch {
		case i < len(t.enumConstants)-1:
			w.Write(",\n")
		case t.hasMembersAfterConstants(elided):
			w.Write(";\n")
		default:
			w.Write("\n")
		}
	}

	for _, p := range t.properties {
		if _, ok := elided[p.Name]; ok {
			continue
		}
		member()
		p.emit(w, propertyImplicit, true, false)
	}

	if pc := t.primaryConstructor; pc != nil && !pc.Body.IsEmpty() {
		member()
		w.Write("init {\n")
		w.Indent(1)
		pc.Body.emit(w)
		if !pc.Body.endsWithNewline() {
			w.Write("\n")
		}
		w.Unindent(1)
		w.Write("}\n")
	}

	if !t.initializer.IsEmpty() {
		member()
		t.initializer.emit(w)
	}

	for _, f := range t.functions {
		if f.Constructor {
			member()
			f.emit(w, functionImplicit)
		}
	}
	for _, f := range t.functions {
		if !f.Constructor {
			member()
			f.emit(w, functionImplicit)
		}
	}

	for _, n := range t.nested {
		member()
		n.emit(w, "")
	}

	if t.companion != nil {
		member()
		t.companion.emit(w, "")
	}
}
