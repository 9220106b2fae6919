package kotlin

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestBuilderRules(t *testing.T) {
	nullableStore := ClassName("", "Store").Nullable()

	tests := []struct {
		name string
		run  func() error
		rule Rule
	}{
		{
			name: "invalid name",
			run: func() error {
				_, err := ClassBuilder("1st")
				return err
			},
			rule: RuleIdentifier,
		},
		{
			name: "interface init block",
			run: func() error {
				b, _ := InterfaceBuilder("I")
				return b.AddInitializerBlock(Code("x()\n"))
			},
			rule: RuleKindFeature,
		},
		{
			name: "constructor in object",
			run: func() error {
				b, _ := ObjectBuilder("O")
				return b.AddFunction(NewConstructor())
			},
			rule: RuleKindFeature,
		},
		{
			name: "enum constant on class",
			run: func() error {
				b, _ := ClassBuilder("C")
				return b.AddEnumConstant("A", nil)
			},
			rule: RuleEnumConstants,
		},
		{
			name: "reserved enum constant",
			run: func() error {
				b, _ := EnumBuilder("E")
				return b.AddEnumConstant("ordinal", nil)
			},
			rule: RuleEnumConstants,
		},
		{
			name: "named enum constant body",
			run: func() error {
				b, _ := EnumBuilder("E")
				body, _ := ClassBuilder("Body")
				spec, _ := body.Build()
				return b.AddEnumConstant("A", spec)
			},
			rule: RuleEnumConstants,
		},
		{
			name: "enum constant body with superclass",
			run: func() error {
				b, _ := EnumBuilder("E")
				body := AnonymousBuilder()
				if err := body.SetSuperclass(ClassName("", "Base")); err != nil {
					return err
				}
				spec, _ := body.Build()
				return b.AddEnumConstant("A", spec)
			},
			rule: RuleEnumConstants,
		},
		{
			name: "enum constant body with superinterface",
			run: func() error {
				b, _ := EnumBuilder("E")
				body := AnonymousBuilder()
				if err := body.AddSuperinterface(ClassName("java.lang", "Runnable")); err != nil {
					return err
				}
				spec, _ := body.Build()
				return b.AddEnumConstant("A", spec)
			},
			rule: RuleEnumConstants,
		},
		{
			name: "annotation function body",
			run: func() error {
				b, _ := AnnotationBuilder("A")
				f := NewFun("value")
				f.Body = Code("return 1\n")
				return b.AddFunction(f)
			},
			rule: RuleAnnotationBody,
		},
		{
			name: "annotation function modifiers",
			run: func() error {
				b, _ := AnnotationBuilder("A")
				return b.AddFunction(NewFun("value", Open))
			},
			rule: RuleAnnotationBody,
		},
		{
			name: "annotation init block",
			run: func() error {
				b, _ := AnnotationBuilder("A")
				return b.AddInitializerBlock(Code("x()\n"))
			},
			rule: RuleAnnotationBody,
		},
		{
			name: "interface superclass",
			run: func() error {
				b, _ := InterfaceBuilder("I")
				return b.SetSuperclass(ClassName("", "Base"))
			},
			rule: RuleSuperclass,
		},
		{
			name: "enum superclass arguments",
			run: func() error {
				b, _ := EnumBuilder("E")
				return b.AddSuperclassConstructorParameter("%L", 1)
			},
			rule: RuleSuperclass,
		},
		{
			name: "superclass set twice",
			run: func() error {
				b, _ := ClassBuilder("C")
				_ = b.SetSuperclass(ClassName("", "A"))
				return b.SetSuperclass(ClassName("", "B"))
			},
			rule: RuleSuperclass,
		},
		{
			name: "object delegation",
			run: func() error {
				b, _ := ObjectBuilder("O")
				return b.AddSuperinterfaceDelegate(ClassName("", "Store"), "%L", "impl")
			},
			rule: RuleDelegation,
		},
		{
			name: "nullable delegation",
			run: func() error {
				b, _ := ClassBuilder("C")
				return b.AddSuperinterfaceDelegate(nullableStore, "%L", "impl")
			},
			rule: RuleDelegation,
		},
		{
			name: "second delegate",
			run: func() error {
				b, _ := ClassBuilder("C")
				_ = b.AddSuperinterfaceDelegate(ClassName("", "Store"), "%L", "a")
				return b.AddSuperinterfaceDelegate(ClassName("", "Store"), "%L", "b")
			},
			rule: RuleDelegation,
		},
		{
			name: "delegate to missing parameter",
			run: func() error {
				b, _ := ClassBuilder("C")
				_ = b.SetPrimaryConstructor(NewConstructor(NewParameter("a", Int)))
				return b.AddSuperinterfaceByParameter(ClassName("", "Store"), "store")
			},
			rule: RuleDelegation,
		},
		{
			name: "delegate without constructor",
			run: func() error {
				b, _ := ClassBuilder("C")
				return b.AddSuperinterfaceByParameter(ClassName("", "Store"), "store")
			},
			rule: RuleDelegation,
		},
		{
			name: "companion on enum",
			run: func() error {
				b, _ := EnumBuilder("E")
				c, _ := CompanionBuilder("")
				spec, _ := c.Build()
				return b.SetCompanion(spec)
			},
			rule: RuleCompanion,
		},
		{
			name: "companion without modifier",
			run: func() error {
				b, _ := ClassBuilder("C")
				o, _ := ObjectBuilder("O")
				spec, _ := o.Build()
				return b.SetCompanion(spec)
			},
			rule: RuleCompanion,
		},
		{
			name: "companion modifier on class",
			run: func() error {
				b, _ := ClassBuilder("C")
				return b.AddModifiers(Companion)
			},
			rule: RuleCompanion,
		},
		{
			name: "primary constructor on object",
			run: func() error {
				b, _ := ObjectBuilder("O")
				return b.SetPrimaryConstructor(NewConstructor())
			},
			rule: RulePrimaryConstructor,
		},
		{
			name: "primary constructor not a constructor",
			run: func() error {
				b, _ := ClassBuilder("C")
				return b.SetPrimaryConstructor(NewFun("create"))
			},
			rule: RulePrimaryConstructor,
		},
		{
			name: "internal interface function",
			run: func() error {
				b, _ := InterfaceBuilder("I")
				return b.AddFunction(NewFun("f", Internal))
			},
			rule: RuleInterfaceFunction,
		},
		{
			name: "abstract private interface function",
			run: func() error {
				b, _ := InterfaceBuilder("I")
				return b.AddFunction(NewFun("f", Abstract, Private))
			},
			rule: RuleInterfaceFunction,
		},
		{
			name: "expect function body",
			run: func() error {
				b, _ := ClassBuilder("C")
				_ = b.AddModifiers(Expect)
				f := NewFun("f")
				f.Body = Code("x()\n")
				return b.AddFunction(f)
			},
			rule: RuleExpect,
		},
		{
			name: "expect after property initializer",
			run: func() error {
				b, _ := ClassBuilder("C")
				_ = b.AddProperty(NewProperty("p", Int).WithInitializer("%L", 1))
				return b.AddModifiers(Expect)
			},
			rule: RuleExpect,
		},
		{
			name: "expect property",
			run: func() error {
				b, _ := ClassBuilder("C")
				return b.AddProperty(NewProperty("p", Int, Expect).WithInitializer("%L", 1))
			},
			rule: RuleExpect,
		},
		{
			name: "anonymous type variable",
			run: func() error {
				return AnonymousBuilder().AddTypeVariable(NewTypeVariable("T"))
			},
			rule: RuleAnonymous,
		},
		{
			name: "anonymous nested type",
			run: func() error {
				b, _ := ClassBuilder("C")
				spec, _ := AnonymousBuilder().Build()
				return b.AddType(spec)
			},
			rule: RuleAnonymous,
		},
		{
			name: "anonymous argument on named type",
			run: func() error {
				b, _ := ClassBuilder("C")
				return b.AddAnonymousArgument("%L", 1)
			},
			rule: RuleAnonymous,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			if err == nil {
				t.Fatalf("expected %s error, got nil", tt.rule)
			}
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Errorf("error %v is not a *ConfigError", err)
			}
			if rule, _ := RuleOf(err); rule != tt.rule {
				t.Errorf("RuleOf() = %q, want %q (error: %v)", rule, tt.rule, err)
			}
		})
	}
}

func TestBuildRules(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) *Builder
		rule  Rule
	}{
		{
			name: "empty enum",
			setup: func(t *testing.T) *Builder {
				return newBuilder(t, KindEnum, "Empty")
			},
			rule: RuleEnumConstants,
		},
		{
			name: "abstract function in final class",
			setup: func(t *testing.T) *Builder {
				b := newBuilder(t, KindClass, "C")
				check(t, b.AddFunction(NewFun("f", Abstract)))
				return b
			},
			rule: RuleAbstractFunction,
		},
		{
			name: "secondary constructor with superclass arguments",
			setup: func(t *testing.T) *Builder {
				b := newBuilder(t, KindClass, "C")
				check(t, b.SetSuperclass(ClassName("", "Base")))
				check(t, b.AddSuperclassConstructorParameter("%L", 1))
				check(t, b.AddFunction(NewConstructor()))
				return b
			},
			rule: RuleConstructorConflict,
		},
		{
			name: "annotation property outside the constructor",
			setup: func(t *testing.T) *Builder {
				b := newBuilder(t, KindAnnotation, "Tag")
				check(t, b.AddProperty(NewProperty("x", Int).WithInitializer("%L", 1)))
				return b
			},
			rule: RuleAnnotationBody,
		},
		{
			name: "annotation property with a derived initializer",
			setup: func(t *testing.T) *Builder {
				b := newBuilder(t, KindAnnotation, "Tag")
				check(t, b.SetPrimaryConstructor(NewConstructor(NewParameter("x", Int))))
				check(t, b.AddProperty(NewProperty("x", Int).WithInitializer("%N + 1", "x")))
				return b
			},
			rule: RuleAnnotationBody,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := tt.setup(t).Build()
			if err == nil {
				t.Fatalf("Build() = %q, want %s error", spec, tt.rule)
			}
			if spec != nil {
				t.Errorf("Build() returned a value alongside error %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("error %v is not a *ValidationError", err)
			}
			if rule, _ := RuleOf(err); rule != tt.rule {
				t.Errorf("RuleOf() = %q, want %q", rule, tt.rule)
			}
		})
	}
}

func TestBuildAbstractAndSealedAllowAbstractFunctions(t *testing.T) {
	for _, m := range []Modifier{Abstract, Sealed} {
		b := newBuilder(t, KindClass, "Shape")
		check(t, b.AddModifiers(m))
		f := NewFun("area", Abstract)
		f.ReturnType = Double
		check(t, b.AddFunction(f))
		spec := build(t, b)
		want := m.String() + " class Shape {\n  abstract fun area(): Double\n}\n"
		if got := spec.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestEnumWithOneConstantBuilds(t *testing.T) {
	b := newBuilder(t, KindEnum, "Single")
	check(t, b.AddEnumConstant("ONLY", nil))
	if got, want := build(t, b).String(), "enum class Single {\n  ONLY\n}\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFailedCallLeavesBuilderUnchanged(t *testing.T) {
	b := newBuilder(t, KindInterface, "I")
	before := build(t, b).String()
	if err := b.AddFunction(NewFun("f", Protected)); err == nil {
		t.Fatalf("AddFunction() accepted a protected interface function")
	}
	if after := build(t, b).String(); after != before {
		t.Errorf("String() after failed call = %q, want %q", after, before)
	}
}

func TestFailedBatchLeavesBuilderUnchanged(t *testing.T) {
	tests := []struct {
		name string
		add  func(b *Builder) error
	}{
		{"properties", func(b *Builder) error {
			return b.AddProperties(NewProperty("a", Int), NewProperty("1bad", Int))
		}},
		{"functions", func(b *Builder) error {
			return b.AddFunctions(NewFun("run"), NewFun("1bad"))
		}},
		{"types", func(b *Builder) error {
			return b.AddTypes(build(t, newBuilder(t, KindClass, "Inner")), nil)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newBuilder(t, KindClass, "C")
			before := build(t, b).String()
			if err := tt.add(b); err == nil {
				t.Fatalf("batch with an illegal element succeeded")
			}
			if after := build(t, b).String(); after != before {
				t.Errorf("String() after failed batch = %q, want %q", after, before)
			}
		})
	}
}

func TestObjectExpressionArgumentsNeedSuperclass(t *testing.T) {
	b := AnonymousBuilder()
	check(t, b.AddSuperinterface(ClassName("java.lang", "Runnable")))
	check(t, b.AddAnonymousArgument("%L", 42))
	expr := build(t, b)
	if _, err := ParseCode("val r = %L", expr); err == nil {
		t.Errorf("ParseCode() accepted an object expression whose arguments cannot render")
	}

	check(t, b.SetSuperclass(ClassName("com.example", "Base")))
	c, err := ParseCode("%L", build(t, b))
	if err != nil {
		t.Fatalf("ParseCode() error: %v", err)
	}
	want := "object : com.example.Base(42), java.lang.Runnable {\n}"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestToBuilderRoundTrip(t *testing.T) {
	specs := map[string]*TypeSpec{
		"point":     pointSpec(t),
		"direction": directionSpec(t),
	}
	outer := newBuilder(t, KindClass, "Outer")
	companion, err := CompanionBuilder("")
	check(t, err)
	check(t, outer.SetCompanion(build(t, companion)))
	check(t, outer.AddType(pointSpec(t)))
	check(t, outer.AddInitializerBlock(Code("start()\n")))
	specs["outer"] = build(t, outer)

	for name, spec := range specs {
		t.Run(name, func(t *testing.T) {
			rebuilt, err := spec.ToBuilder().Build()
			if err != nil {
				t.Fatalf("ToBuilder().Build() error: %v", err)
			}
			if got, want := rebuilt.String(), spec.String(); got != want {
				t.Errorf("rebuilt String() = %q, want %q", got, want)
			}
			if !rebuilt.Equal(spec) || rebuilt.Hash() != spec.Hash() {
				t.Errorf("rebuilt node is not equal to the original")
			}
		})
	}
}

func TestToBuilderIsIndependent(t *testing.T) {
	original := pointSpec(t)
	want := original.String()

	b := original.ToBuilder()
	check(t, b.AddProperty(NewProperty("z", Int).WithInitializer("%L", 0)))
	derived := build(t, b)

	if got := original.String(); got != want {
		t.Errorf("original changed to %q", got)
	}
	if derived.Equal(original) {
		t.Errorf("derived node equals original")
	}
	if len(original.Properties()) != 2 {
		t.Errorf("original has %d properties, want 2", len(original.Properties()))
	}
}

func TestEqualAndHash(t *testing.T) {
	a, b := pointSpec(t), pointSpec(t)
	if !a.Equal(b) {
		t.Errorf("identically built nodes are not equal")
	}
	if a.Hash() != b.Hash() {
		t.Errorf("Hash() = %d and %d for equal nodes", a.Hash(), b.Hash())
	}

	c := a.ToBuilder()
	check(t, c.AddModifiers(Data))
	other := build(t, c)
	if a.Equal(other) {
		t.Errorf("nodes with different text are equal")
	}
	if a.Hash() == other.Hash() {
		t.Errorf("Hash() collides for %q and %q", a, other)
	}

	var nilSpec *TypeSpec
	if a.Equal(nilSpec) {
		t.Errorf("Equal(nil) = true")
	}
}

func TestBuilderAccessorsReturnCopies(t *testing.T) {
	spec := pointSpec(t)
	props := spec.Properties()
	props[0].Name = "changed"
	if spec.Properties()[0].Name != "x" {
		t.Errorf("Properties() exposes internal state")
	}
	pc, ok := spec.PrimaryConstructor()
	if !ok {
		t.Fatalf("PrimaryConstructor() not set")
	}
	pc.Parameters[0].Name = "changed"
	if got, _ := spec.PrimaryConstructor(); got.Parameters[0].Name != "x" {
		t.Errorf("PrimaryConstructor() exposes internal state")
	}
}

func TestConstructorProperties(t *testing.T) {
	pc := NewConstructor(NewParameter("a", Int), NewParameter("b", String))
	props := []PropertySpec{
		NewProperty("a", Int).WithInitializer("%N", "a"),
		NewProperty("b", String).WithDelegate("%N", "b"),
		NewProperty("c", Int).WithInitializer("%N", "a"),
	}
	got := ConstructorProperties(&pc, props)
	if len(got) != 1 {
		t.Fatalf("ConstructorProperties() = %v, want only a", got)
	}
	if _, ok := got["a"]; !ok {
		t.Errorf("ConstructorProperties() is missing a")
	}
	if got := ConstructorProperties(nil, props); len(got) != 0 {
		t.Errorf("ConstructorProperties(nil) = %v, want empty", got)
	}
}

func TestSuperinterfaceDelegateUpgradesPlainEntry(t *testing.T) {
	store := ClassName("", "Store")
	b := newBuilder(t, KindClass, "Repo")
	check(t, b.AddSuperinterface(store))
	check(t, b.AddSuperinterface(store))
	check(t, b.AddSuperinterfaceDelegate(store, "%L", "Memory()"))
	spec := build(t, b)
	if n := len(spec.Superinterfaces()); n != 1 {
		t.Fatalf("Superinterfaces() has %d entries, want 1", n)
	}
	if got, want := spec.String(), "class Repo : Store by Memory()\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
