package kotlin

// Kind is the category of a type declaration.
type Kind int

const (
	KindClass Kind = iota
	KindObject
	KindInterface
	KindEnum
	KindAnnotation
)

type kindInfo struct {
	keyword            string
	propertyModifiers  ModifierSet
	functionModifiers  ModifierSet
	primaryConstructor bool
	superclass         bool
	delegation         bool
	companion          bool
	initializerBlocks  bool
}

// kinds is the per-kind legality table consulted by the Builder.
var kinds = [...]kindInfo{
	KindClass: {
		keyword:            "class",
		propertyModifiers:  NewModifierSet(Public),
		functionModifiers:  NewModifierSet(Public),
		primaryConstructor: true,
		superclass:         true,
		delegation:         true,
		companion:          true,
		initializerBlocks:  true,
	},
	KindObject: {
		keyword:           "object",
		propertyModifiers: NewModifierSet(Public),
		functionModifiers: NewModifierSet(Public),
		superclass:        true,
		initializerBlocks: true,
	},
	KindInterface: {
		keyword:           "interface",
		propertyModifiers: NewModifierSet(Public, Abstract),
		functionModifiers: NewModifierSet(Public, Abstract),
		companion:         true,
	},
	KindEnum: {
		keyword:            "enum class",
		propertyModifiers:  NewModifierSet(Public),
		functionModifiers:  NewModifierSet(Public),
		primaryConstructor: true,
		initializerBlocks:  true,
	},
	KindAnnotation: {
		keyword:            "annotation class",
		functionModifiers:  NewModifierSet(Public, Abstract),
		primaryConstructor: true,
	},
}

func (k Kind) info() kindInfo {
	return kinds[k]
}

// Keyword is the text that introduces a declaration of this kind.
func (k Kind) Keyword() string {
	return k.info().keyword
}

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindObject:
		return "object"
	case KindInterface:
		return "interface"
	case KindEnum:
		return "enum"
	case KindAnnotation:
		return "annotation"
	}
	return "kind(?)"
}

// ParseKind maps the names returned by String back to a Kind.
func ParseKind(s string) (Kind, bool) {
	for k := KindClass; k <= KindAnnotation; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// ImplicitPropertyModifiers returns the modifiers a property declared inside a
// container of this kind carries without writing them. containerModifiers are
// the container's own modifiers.
func (k Kind) ImplicitPropertyModifiers(containerModifiers ModifierSet) ModifierSet {
	return k.info().propertyModifiers.Union(k.inherited(containerModifiers))
}

// ImplicitFunctionModifiers is the function counterpart of
// ImplicitPropertyModifiers.
func (k Kind) ImplicitFunctionModifiers(containerModifiers ModifierSet) ModifierSet {
	return k.info().functionModifiers.Union(k.inherited(containerModifiers))
}

// inherited is the part of the implicit set that comes from the container's
// own modifiers rather than from its kind.
func (k Kind) inherited(containerModifiers ModifierSet) ModifierSet {
	switch {
	case k == KindAnnotation:
		return ModifierSet{}
	case containerModifiers.Has(Expect):
		return NewModifierSet(Expect)
	case containerModifiers.Has(External):
		return NewModifierSet(External)
	}
	return ModifierSet{}
}
