package kotlin

// Variance of a type variable: Covariant renders as `out`, Contravariant as `in`.
type Variance int

const (
	Invariant Variance = iota
	Covariant
	Contravariant
)

// TypeVariable declares a type parameter such as `out T : Comparable<T>`.
type TypeVariable struct {
	Name     string
	Bounds   []TypeName
	Variance Variance
	Reified  bool
}

func NewTypeVariable(name string, bounds ...TypeName) TypeVariable {
	return TypeVariable{Name: name, Bounds: bounds}
}

// Ref returns a reference to the variable for use as a type.
func (v TypeVariable) Ref() TypeName {
	return TypeVariableName(v.Name)
}

func (v TypeVariable) emit(w Sink) {
	if v.Reified {
		w.Write("reified ")
	}
	switch v.Variance {
	case Covariant:
		w.Write("out ")
	case Contravariant:
		w.Write("in ")
	}
	w.Write(escapeName(v.Name))
	if len(v.Bounds) == 1 && !v.Bounds[0].Equal(Any.Nullable()) {
		w.Write(" : ")
		v.Bounds[0].emit(w)
	}
}

func cloneTypeVariables(in []TypeVariable) []TypeVariable {
	if in == nil {
		return nil
	}
	out := make([]TypeVariable, len(in))
	for i, v := range in {
		v.Bounds = append([]TypeName(nil), v.Bounds...)
		out[i] = v
	}
	return out
}
