package kotlin

import (
	"github.com/cockroachdb/errors"
)

// Builder accumulates the facets of a type declaration. Every method checks
// the facet against the declaration's kind and returns a *ConfigError (wrapped
// with a stack) without modifying the builder when it is illegal. A Builder
// must not be shared between goroutines.
type Builder struct {
	spec TypeSpec
}

// NewBuilder starts a named declaration of the given kind.
func NewBuilder(kind Kind, name string) (*Builder, error) {
	if kind < KindClass || kind > KindAnnotation {
		return nil, configErrorf(RuleKindFeature, "unknown declaration kind %d", kind)
	}
	if err := checkName(kind.String(), name); err != nil {
		return nil, err
	}
	return &Builder{spec: TypeSpec{kind: kind, name: name}}, nil
}

func ClassBuilder(name string) (*Builder, error) { return NewBuilder(KindClass, name) }

func ObjectBuilder(name string) (*Builder, error) { return NewBuilder(KindObject, name) }

func InterfaceBuilder(name string) (*Builder, error) { return NewBuilder(KindInterface, name) }

func EnumBuilder(name string) (*Builder, error) { return NewBuilder(KindEnum, name) }

func AnnotationBuilder(name string) (*Builder, error) { return NewBuilder(KindAnnotation, name) }

// CompanionBuilder starts a companion object. An empty name declares the
// default `companion object`.
func CompanionBuilder(name string) (*Builder, error) {
	if name != "" {
		if err := checkName("companion", name); err != nil {
			return nil, err
		}
	}
	return &Builder{spec: TypeSpec{
		kind:      KindObject,
		name:      name,
		modifiers: NewModifierSet(Companion),
	}}, nil
}

// AnonymousBuilder starts an object expression, also used as the body of an
// enum constant. Its constructor arguments are set with AddAnonymousArgument.
func AnonymousBuilder() *Builder {
	return &Builder{spec: TypeSpec{kind: KindClass, anonymous: true}}
}

func (b *Builder) Kind() Kind { return b.spec.kind }

func (b *Builder) info() kindInfo { return b.spec.kind.info() }

func (b *Builder) isExpect() bool { return b.spec.modifiers.Has(Expect) }

func (b *Builder) AddDoc(format string, args ...any) error {
	doc, err := NewCodeBlockBuilder().AddCode(b.spec.doc).Add(format, args...).Build()
	if err != nil {
		return errors.Wrap(err, "doc")
	}
	b.spec.doc = doc
	return nil
}

func (b *Builder) AddAnnotation(a AnnotationSpec) error {
	if a.Type.IsZero() {
		return configErrorf(RuleIdentifier, "annotation without a type")
	}
	b.spec.annotations = append(b.spec.annotations, a.clone())
	return nil
}

func (b *Builder) AddModifiers(mods ...Modifier) error {
	for _, m := range mods {
		switch m {
		case Enum, Annotation:
			return configErrorf(RuleKindFeature, "%s is implied by the declaration kind, use %s", m, b.spec.kind)
		case Companion:
			if b.spec.kind != KindObject || b.spec.anonymous {
				return configErrorf(RuleCompanion, "only an object can be a companion")
			}
		case Expect:
			if err := b.checkExpectMembers(); err != nil {
				return err
			}
		}
	}
	b.spec.modifiers = b.spec.modifiers.With(mods...)
	return nil
}

// checkExpectMembers verifies that the members already added could live in an
// expect declaration.
func (b *Builder) checkExpectMembers() error {
	for _, p := range b.spec.properties {
		if err := checkExpectProperty(p); err != nil {
			return err
		}
	}
	for _, f := range b.spec.functions {
		if err := checkExpectFunction(f); err != nil {
			return err
		}
	}
	if pc := b.spec.primaryConstructor; pc != nil && !pc.Body.IsEmpty() {
		return configErrorf(RuleExpect, "expect declaration cannot have a constructor body")
	}
	if !b.spec.initializer.IsEmpty() {
		return configErrorf(RuleExpect, "expect declaration cannot have initializer blocks")
	}
	return nil
}

func checkExpectProperty(p PropertySpec) error {
	if !p.Initializer.IsEmpty() {
		return configErrorf(RuleExpect, "property %s in an expect declaration cannot have an initializer", p.Name)
	}
	if p.hasAccessorBodies() {
		return configErrorf(RuleExpect, "property %s in an expect declaration cannot have accessor bodies", p.Name)
	}
	return nil
}

func checkExpectFunction(f FunSpec) error {
	if !f.Body.IsEmpty() {
		return configErrorf(RuleExpect, "function %s in an expect declaration cannot have a body", f.Name)
	}
	return nil
}

func (b *Builder) AddTypeVariable(v TypeVariable) error {
	if b.spec.anonymous {
		return configErrorf(RuleAnonymous, "object expressions cannot declare type variables")
	}
	if err := checkName("type variable", v.Name); err != nil {
		return err
	}
	b.spec.typeVariables = append(b.spec.typeVariables, cloneTypeVariables([]TypeVariable{v})...)
	return nil
}

func (b *Builder) SetCompanion(c *TypeSpec) error {
	switch {
	case !b.info().companion || b.spec.anonymous:
		return configErrorf(RuleCompanion, "%s cannot have a companion object", b.spec.kind)
	case c == nil:
		return configErrorf(RuleCompanion, "companion is nil")
	case c.kind != KindObject || !c.modifiers.Has(Companion):
		return configErrorf(RuleCompanion, "companion must be an object with the companion modifier")
	case b.spec.companion != nil:
		return configErrorf(RuleCompanion, "%s already has a companion object", b.spec.name)
	}
	b.spec.companion = c
	return nil
}

func (b *Builder) SetPrimaryConstructor(f FunSpec) error {
	switch {
	case b.spec.anonymous:
		return configErrorf(RuleAnonymous, "object expressions cannot declare constructors")
	case !b.info().primaryConstructor:
		return configErrorf(RulePrimaryConstructor, "%s cannot have a primary constructor", b.spec.kind)
	case !f.Constructor:
		return configErrorf(RulePrimaryConstructor, "primary constructor %s is not a constructor", f.Name)
	case b.spec.kind == KindAnnotation && !f.Body.IsEmpty():
		return configErrorf(RuleAnnotationBody, "annotation constructor cannot have a body")
	case b.isExpect() && !f.Body.IsEmpty():
		return configErrorf(RuleExpect, "expect declaration cannot have a constructor body")
	}
	for _, p := range f.Parameters {
		if err := checkName("parameter", p.Name); err != nil {
			return err
		}
	}
	pc := f.clone()
	b.spec.primaryConstructor = &pc
	return nil
}

func (b *Builder) SetSuperclass(t TypeName) error {
	switch {
	case !b.info().superclass:
		return configErrorf(RuleSuperclass, "%s cannot extend a class", b.spec.kind)
	case t.IsZero():
		return configErrorf(RuleSuperclass, "superclass is empty")
	case !b.spec.superclass.IsZero():
		return configErrorf(RuleSuperclass, "superclass already set to %s", b.spec.superclass)
	}
	b.spec.superclass = t.clone()
	return nil
}

func (b *Builder) AddSuperclassConstructorParameter(format string, args ...any) error {
	if !b.info().superclass {
		return configErrorf(RuleSuperclass, "%s cannot pass superclass constructor arguments", b.spec.kind)
	}
	if b.spec.anonymous {
		return configErrorf(RuleAnonymous, "object expressions take their arguments through AddAnonymousArgument")
	}
	c, err := ParseCode(format, args...)
	if err != nil {
		return errors.Wrap(err, "superclass constructor parameter")
	}
	b.spec.superclassArgs = append(b.spec.superclassArgs, c)
	return nil
}

// AddAnonymousArgument appends a constructor argument of an object expression
// or enum constant body.
func (b *Builder) AddAnonymousArgument(format string, args ...any) error {
	if !b.spec.anonymous {
		return configErrorf(RuleAnonymous, "%s is not an object expression", b.spec.name)
	}
	c, err := ParseCode(format, args...)
	if err != nil {
		return errors.Wrap(err, "anonymous argument")
	}
	b.spec.anonymousArgs = append(b.spec.anonymousArgs, c)
	return nil
}

func (b *Builder) indexOfSuperinterface(t TypeName) int {
	for i, si := range b.spec.superinterfaces {
		if si.Type.Equal(t) {
			return i
		}
	}
	return -1
}

// AddSuperinterface implements t. Adding the same interface twice is a no-op.
func (b *Builder) AddSuperinterface(t TypeName) error {
	if t.IsZero() {
		return configErrorf(RuleDelegation, "superinterface is empty")
	}
	if b.indexOfSuperinterface(t) >= 0 {
		return nil
	}
	b.spec.superinterfaces = append(b.spec.superinterfaces, Superinterface{Type: t.clone()})
	return nil
}

// AddSuperinterfaceDelegate implements t by delegating to the given
// expression.
func (b *Builder) AddSuperinterfaceDelegate(t TypeName, format string, args ...any) error {
	switch {
	case !b.info().delegation:
		return configErrorf(RuleDelegation, "delegation is only allowed for classes, not %s", b.spec.kind)
	case b.spec.anonymous:
		return configErrorf(RuleAnonymous, "object expressions cannot delegate interfaces")
	case t.IsZero():
		return configErrorf(RuleDelegation, "superinterface is empty")
	case t.IsNullable():
		return configErrorf(RuleDelegation, "cannot delegate to nullable interface %s", t)
	}
	c, err := ParseCode(format, args...)
	if err != nil {
		return errors.Wrap(err, "delegate")
	}
	if c.IsEmpty() {
		return configErrorf(RuleDelegation, "empty delegate for %s", t)
	}
	i := b.indexOfSuperinterface(t)
	if i < 0 {
		b.spec.superinterfaces = append(b.spec.superinterfaces, Superinterface{Type: t.clone(), Delegate: c})
		return nil
	}
	if !b.spec.superinterfaces[i].Delegate.IsEmpty() {
		return configErrorf(RuleDelegation, "%s already has a delegate", t)
	}
	b.spec.superinterfaces[i].Delegate = c
	return nil
}

// AddSuperinterfaceByParameter delegates t to the primary constructor
// parameter called param, which must already exist.
func (b *Builder) AddSuperinterfaceByParameter(t TypeName, param string) error {
	pc := b.spec.primaryConstructor
	if pc == nil {
		return configErrorf(RuleDelegation, "delegating %s to parameter %s requires a primary constructor", t, param)
	}
	if _, ok := pc.Parameter(param); !ok {
		return configErrorf(RuleDelegation, "primary constructor has no parameter %s", param)
	}
	return b.AddSuperinterfaceDelegate(t, "%N", param)
}

// AddEnumConstant appends a constant. body may be nil; otherwise it must be
// built from AnonymousBuilder.
func (b *Builder) AddEnumConstant(name string, body *TypeSpec) error {
	if b.spec.kind != KindEnum {
		return configErrorf(RuleEnumConstants, "%s cannot have enum constants", b.spec.kind)
	}
	if err := checkName("enum constant", name); err != nil {
		return err
	}
	if name == "name" || name == "ordinal" {
		return configErrorf(RuleEnumConstants, "constant name %s clashes with a member of kotlin.Enum", name)
	}
	for _, c := range b.spec.enumConstants {
		if c.Name == name {
			return configErrorf(RuleEnumConstants, "duplicate enum constant %s", name)
		}
	}
	if body == nil {
		body = &TypeSpec{kind: KindClass, anonymous: true}
	} else if !body.anonymous {
		return configErrorf(RuleEnumConstants, "body of %s must be an object expression", name)
	} else if !body.superclass.IsZero() || len(body.superinterfaces) > 0 {
		return configErrorf(RuleEnumConstants, "body of %s cannot declare supertypes", name)
	}
	b.spec.enumConstants = append(b.spec.enumConstants, EnumConstant{Name: name, Body: body})
	return nil
}

func (b *Builder) AddProperty(p PropertySpec) error {
	if err := checkName("property", p.Name); err != nil {
		return err
	}
	if p.Type.IsZero() {
		return configErrorf(RuleIdentifier, "property %s has no type", p.Name)
	}
	if b.spec.kind == KindAnnotation && p.hasAccessors() {
		return configErrorf(RuleAnnotationBody, "annotation property %s cannot have accessors", p.Name)
	}
	if b.isExpect() || p.Modifiers.Has(Expect) {
		if err := checkExpectProperty(p); err != nil {
			return err
		}
	}
	b.spec.properties = append(b.spec.properties, p.clone())
	return nil
}

func (b *Builder) AddProperties(ps ...PropertySpec) error {
	return b.staged(func(staged *Builder) error {
		for _, p := range ps {
			if err := staged.AddProperty(p); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddInitializerBlock appends `init { block }`.
func (b *Builder) AddInitializerBlock(block CodeBlock) error {
	if b.spec.kind == KindAnnotation {
		return configErrorf(RuleAnnotationBody, "annotation cannot have initializer blocks")
	}
	if !b.info().initializerBlocks {
		return configErrorf(RuleKindFeature, "%s cannot have initializer blocks", b.spec.kind)
	}
	if b.isExpect() {
		return configErrorf(RuleExpect, "expect declaration cannot have initializer blocks")
	}
	cb := NewCodeBlockBuilder().AddCode(b.spec.initializer).Add("init {\n").Indent().AddCode(block)
	if !block.endsWithNewline() {
		cb.Add("\n")
	}
	initializer, err := cb.Unindent().Add("}\n").Build()
	if err != nil {
		return errors.Wrap(err, "initializer block")
	}
	b.spec.initializer = initializer
	return nil
}

func (b *Builder) AddFunction(f FunSpec) error {
	if f.Constructor {
		if b.spec.anonymous || (b.spec.kind != KindClass && b.spec.kind != KindEnum) {
			return configErrorf(RuleKindFeature, "%s cannot have secondary constructors", b.describe())
		}
	} else if err := checkName("function", f.Name); err != nil {
		return err
	}
	for _, p := range f.Parameters {
		if err := checkName("parameter", p.Name); err != nil {
			return err
		}
	}

	switch b.spec.kind {
	case KindAnnotation:
		implicit := b.info().functionModifiers
		if !f.Modifiers.Without(implicit).IsEmpty() {
			return configErrorf(RuleAnnotationBody, "annotation function %s cannot have modifiers %s", f.Name, f.Modifiers.Without(implicit))
		}
		if !f.Body.IsEmpty() {
			return configErrorf(RuleAnnotationBody, "annotation function %s cannot have a body", f.Name)
		}
		f.Modifiers = f.Modifiers.Union(implicit)
	case KindInterface:
		if f.Modifiers.HasAny(Internal, Protected) {
			return configErrorf(RuleInterfaceFunction, "interface function %s cannot be internal or protected", f.Name)
		}
		if f.Modifiers.Count(Abstract, Private) > 1 {
			return configErrorf(RuleInterfaceFunction, "interface function %s cannot be both abstract and private", f.Name)
		}
	}
	if b.isExpect() || f.Modifiers.Has(Expect) {
		if err := checkExpectFunction(f); err != nil {
			return err
		}
	}
	b.spec.functions = append(b.spec.functions, f.clone())
	return nil
}

func (b *Builder) AddFunctions(fs ...FunSpec) error {
	return b.staged(func(staged *Builder) error {
		for _, f := range fs {
			if err := staged.AddFunction(f); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddType nests t. A companion object is routed to SetCompanion.
func (b *Builder) AddType(t *TypeSpec) error {
	switch {
	case t == nil:
		return configErrorf(RuleKindFeature, "nested type is nil")
	case t.anonymous:
		return configErrorf(RuleAnonymous, "object expressions cannot be nested types")
	case t.modifiers.Has(Companion):
		return b.SetCompanion(t)
	}
	b.spec.nested = append(b.spec.nested, t)
	return nil
}

func (b *Builder) AddTypes(ts ...*TypeSpec) error {
	return b.staged(func(staged *Builder) error {
		for _, t := range ts {
			if err := staged.AddType(t); err != nil {
				return err
			}
		}
		return nil
	})
}

// staged applies fn to a copy of b and keeps the result only if fn succeeds,
// so a batch either lands whole or not at all.
func (b *Builder) staged(fn func(*Builder) error) error {
	staged := &Builder{spec: b.spec.clone()}
	if err := fn(staged); err != nil {
		return err
	}
	b.spec = staged.spec
	return nil
}

func (b *Builder) describe() string {
	if b.spec.anonymous {
		return "object expression"
	}
	return b.spec.kind.String() + " " + b.spec.name
}

// Build checks the whole-declaration rules and returns an immutable copy of
// the builder's state. The builder stays usable.
func (b *Builder) Build() (*TypeSpec, error) {
	s := &b.spec
	if s.kind == KindEnum && len(s.enumConstants) == 0 {
		return nil, validationErrorf(RuleEnumConstants, "enum %s has no constants", s.name)
	}
	if s.kind == KindClass && !s.modifiers.HasAny(Abstract, Sealed) {
		for _, f := range s.functions {
			if f.Modifiers.Has(Abstract) {
				return nil, validationErrorf(RuleAbstractFunction, "non-abstract %s declares abstract function %s", b.describe(), f.Name)
			}
		}
	}
	if s.kind == KindAnnotation {
		elided := s.ConstructorProperties()
		for _, p := range s.properties {
			if _, ok := elided[p.Name]; !ok {
				return nil, validationErrorf(RuleAnnotationBody,
					"annotation property %s must be declared by a constructor parameter", p.Name)
			}
		}
	}
	if s.primaryConstructor == nil && len(s.superclassArgs) > 0 && s.hasConstructorFunctions() {
		return nil, validationErrorf(RuleConstructorConflict,
			"%s has secondary constructors and superclass constructor arguments but no primary constructor", b.describe())
	}
	out := b.spec.clone()
	return &out, nil
}
