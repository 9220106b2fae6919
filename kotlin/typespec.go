package kotlin

import (
	"github.com/cespare/xxhash/v2"

	"github.com/dhamidi/kpoet/layout"
)

// Superinterface is one implemented interface. A non-empty Delegate renders
// as `Type by <Delegate>`.
type Superinterface struct {
	Type     TypeName
	Delegate CodeBlock
}

// EnumConstant is a named constant of an enum declaration together with its
// body, an anonymous TypeSpec carrying the constant's arguments and members.
type EnumConstant struct {
	Name string
	Body *TypeSpec
}

// TypeSpec is a built, immutable type declaration. Obtain one from
// Builder.Build; derive a modified copy through ToBuilder.
type TypeSpec struct {
	kind               Kind
	name               string
	anonymous          bool
	anonymousArgs      []CodeBlock
	doc                CodeBlock
	annotations        []AnnotationSpec
	modifiers          ModifierSet
	typeVariables      []TypeVariable
	companion          *TypeSpec
	primaryConstructor *FunSpec
	superclass         TypeName
	superclassArgs     []CodeBlock
	superinterfaces    []Superinterface
	enumConstants      []EnumConstant
	properties         []PropertySpec
	initializer        CodeBlock
	functions          []FunSpec
	nested             []*TypeSpec
}

func (t *TypeSpec) Kind() Kind { return t.kind }

// Name is empty for anonymous objects and unnamed companions.
func (t *TypeSpec) Name() string { return t.name }

func (t *TypeSpec) IsAnonymous() bool { return t.anonymous }

func (t *TypeSpec) AnonymousArgs() []CodeBlock {
	return append([]CodeBlock(nil), t.anonymousArgs...)
}

func (t *TypeSpec) Doc() CodeBlock { return t.doc }

func (t *TypeSpec) Annotations() []AnnotationSpec { return cloneAnnotations(t.annotations) }

func (t *TypeSpec) Modifiers() ModifierSet { return t.modifiers }

func (t *TypeSpec) TypeVariables() []TypeVariable { return cloneTypeVariables(t.typeVariables) }

// Companion returns the companion object, or nil.
func (t *TypeSpec) Companion() *TypeSpec { return t.companion }

// PrimaryConstructor returns the primary constructor and whether one is set.
func (t *TypeSpec) PrimaryConstructor() (FunSpec, bool) {
	if t.primaryConstructor == nil {
		return FunSpec{}, false
	}
	return t.primaryConstructor.clone(), true
}

// Superclass is the zero TypeName when none was set.
func (t *TypeSpec) Superclass() TypeName { return t.superclass }

func (t *TypeSpec) SuperclassArgs() []CodeBlock {
	return append([]CodeBlock(nil), t.superclassArgs...)
}

func (t *TypeSpec) Superinterfaces() []Superinterface {
	return append([]Superinterface(nil), t.superinterfaces...)
}

func (t *TypeSpec) EnumConstants() []EnumConstant {
	return append([]EnumConstant(nil), t.enumConstants...)
}

func (t *TypeSpec) Properties() []PropertySpec { return cloneProperties(t.properties) }

func (t *TypeSpec) Initializer() CodeBlock { return t.initializer }

func (t *TypeSpec) Functions() []FunSpec { return cloneFunctions(t.functions) }

func (t *TypeSpec) NestedTypes() []*TypeSpec {
	return append([]*TypeSpec(nil), t.nested...)
}

// ToBuilder returns a new Builder holding a copy of t.
func (t *TypeSpec) ToBuilder() *Builder {
	return &Builder{spec: t.clone()}
}

// Render writes t to w as a top-level declaration, or as an object expression
// when t is anonymous.
func (t *TypeSpec) Render(w Sink) {
	t.emit(w, "")
}

// String renders t into a fresh writer with no package and no imports.
func (t *TypeSpec) String() string {
	w := layout.NewWriter()
	t.Render(w)
	return w.String()
}

// Equal reports whether t and o render to identical text.
func (t *TypeSpec) Equal(o *TypeSpec) bool {
	if t == nil || o == nil {
		return t == o
	}
	return t.String() == o.String()
}

// Hash is consistent with Equal.
func (t *TypeSpec) Hash() uint64 {
	return xxhash.Sum64String(t.String())
}

func (t *TypeSpec) clone() TypeSpec {
	c := *t
	c.anonymousArgs = append([]CodeBlock(nil), t.anonymousArgs...)
	c.annotations = cloneAnnotations(t.annotations)
	c.typeVariables = cloneTypeVariables(t.typeVariables)
	if t.primaryConstructor != nil {
		pc := t.primaryConstructor.clone()
		c.primaryConstructor = &pc
	}
	c.superclassArgs = append([]CodeBlock(nil), t.superclassArgs...)
	c.superinterfaces = append([]Superinterface(nil), t.superinterfaces...)
	c.enumConstants = append([]EnumConstant(nil), t.enumConstants...)
	c.properties = cloneProperties(t.properties)
	c.functions = cloneFunctions(t.functions)
	c.nested = append([]*TypeSpec(nil), t.nested...)
	return c
}
