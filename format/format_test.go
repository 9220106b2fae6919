package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dhamidi/kpoet/kotlin"
)

func mustBuild(t *testing.T, b *kotlin.Builder, err error) *kotlin.TypeSpec {
	t.Helper()
	if err != nil {
		t.Fatalf("builder error: %v", err)
	}
	spec, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return spec
}

func check(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func sampleSpec(t *testing.T) *kotlin.TypeSpec {
	t.Helper()
	b, err := kotlin.ClassBuilder("Point")
	check(t, err)
	check(t, b.AddModifiers(kotlin.Data))
	check(t, b.SetPrimaryConstructor(kotlin.NewConstructor(
		kotlin.NewParameter("x", kotlin.Int),
		kotlin.NewParameter("y", kotlin.Int),
	)))
	check(t, b.AddProperty(kotlin.NewProperty("x", kotlin.Int).WithInitializer("%N", "x")))
	check(t, b.AddProperty(kotlin.NewProperty("y", kotlin.Int).WithInitializer("%N", "y")))
	check(t, b.AddSuperinterface(kotlin.ClassName("java.io", "Serializable")))

	length := kotlin.NewFun("length")
	length.ReturnType = kotlin.Double
	length.Body = kotlin.Code("return 0.0\n")
	check(t, b.AddFunction(length))

	c, err := kotlin.CompanionBuilder("")
	check(t, err)
	origin := kotlin.NewProperty("ORIGIN", kotlin.ClassName("", "Point")).WithInitializer("Point(0, 0)")
	check(t, c.AddProperty(origin))
	check(t, b.SetCompanion(mustBuild(t, c, nil)))

	inner, err := kotlin.EnumBuilder("Axis")
	check(t, err)
	check(t, inner.AddEnumConstant("X", nil))
	check(t, inner.AddEnumConstant("Y", nil))
	check(t, b.AddType(mustBuild(t, inner, nil)))
	return mustBuild(t, b, nil)
}

func TestLineEncoder(t *testing.T) {
	var buf bytes.Buffer
	if err := NewLineEncoder(&buf).Encode(sampleSpec(t)); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	want := "class\tPoint\tdata\tjava.io.Serializable\n" +
		"property\tPoint.x\tkotlin.Int\t-\tval,constructor\n" +
		"property\tPoint.y\tkotlin.Int\t-\tval,constructor\n" +
		"function\tPoint.length\tkotlin.Double\t-\t-\n" +
		"enum\tPoint.Axis\t-\t-\n" +
		"constant\tPoint.Axis.X\n" +
		"constant\tPoint.Axis.Y\n" +
		"object\tPoint.Companion\tcompanion\t-\n" +
		"property\tPoint.Companion.ORIGIN\tPoint\t-\tval\n"
	if got := buf.String(); got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestJSONEncoder(t *testing.T) {
	enc := NewJSONEncoder(nil)
	enc.spec = sampleSpec(t)
	text, err := enc.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error: %v", err)
	}

	var decoded jsonType
	if err := json.Unmarshal(text, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Name != "Point" || decoded.Kind != "class" {
		t.Errorf("decoded name/kind = %q/%q", decoded.Name, decoded.Kind)
	}
	if len(decoded.Constructor) != 2 || decoded.Constructor[1].Type != "kotlin.Int" {
		t.Errorf("constructor = %+v", decoded.Constructor)
	}
	if len(decoded.Properties) != 2 || !decoded.Properties[0].Constructor {
		t.Errorf("properties = %+v", decoded.Properties)
	}
	if decoded.Companion == nil || decoded.Companion.Name != "Companion" {
		t.Errorf("companion = %+v", decoded.Companion)
	}
	if len(decoded.Types) != 1 || len(decoded.Types[0].EnumConstants) != 2 {
		t.Errorf("nested types = %+v", decoded.Types)
	}
	if decoded.Types[0].EnumConstants[0].Body != nil {
		t.Errorf("empty enum constant body was encoded")
	}
}

func TestEncodersImplementEncoder(t *testing.T) {
	var _ Encoder = NewJSONEncoder(nil)
	var _ Encoder = NewLineEncoder(nil)
}
