package kotlin

// AnnotationSpec is one use of an annotation, e.g. @JvmName("foo").
type AnnotationSpec struct {
	Type TypeName
	// Members are rendered comma-separated inside parentheses.
	Members []CodeBlock
	// UseSiteTarget such as "get", "field" or "file"; empty for none.
	UseSiteTarget string
}

func NewAnnotation(t TypeName, members ...CodeBlock) AnnotationSpec {
	return AnnotationSpec{Type: t, Members: members}
}

func (a AnnotationSpec) emit(w Sink) {
	w.Write("@")
	if a.UseSiteTarget != "" {
		w.Write(a.UseSiteTarget + ":")
	}
	a.Type.emit(w)
	if len(a.Members) > 0 {
		w.Write("(")
		joinCode(w, a.Members, ", ")
		w.Write(")")
	}
}

func (a AnnotationSpec) clone() AnnotationSpec {
	a.Members = append([]CodeBlock(nil), a.Members...)
	return a
}

func cloneAnnotations(in []AnnotationSpec) []AnnotationSpec {
	if in == nil {
		return nil
	}
	out := make([]AnnotationSpec, len(in))
	for i, a := range in {
		out[i] = a.clone()
	}
	return out
}
