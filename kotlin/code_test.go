package kotlin

import (
	"testing"
)

type namedThing struct{ name string }

func (n namedThing) Name() string { return n.name }

func TestCodeFormats(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"literal", "x = %L", []any{42}, "x = 42"},
		{"nil literal", "x = %L", []any{nil}, "x = null"},
		{"string", "println(%S)", []any{"a \"b\" $c\n"}, `println("a \"b\" \$c\n")`},
		{"nil string", "%S", []any{nil}, "null"},
		{"type", "val l: %T", []any{List.Parameterized(String)}, "val l: List<String>"},
		{"qualified type", "%T()", []any{ClassName("com.example", "Thing")}, "com.example.Thing()"},
		{"name", "%N()", []any{"run"}, "run()"},
		{"keyword name", "%N", []any{"object"}, "`object`"},
		{"named value", "%N", []any{namedThing{"thing"}}, "thing"},
		{"percent", "100%%", nil, "100%"},
		{"nested code", "f(%L)", []any{Code("%S", "x")}, `f("x")`},
		{"indent markers", "a {\n⇥b\n⇤}\n", nil, "a {\n  b\n}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseCode(tt.format, tt.args...)
			if err != nil {
				t.Fatalf("ParseCode(%q) error: %v", tt.format, err)
			}
			if got := c.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeFormatErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
	}{
		{"dangling percent", "50%", nil},
		{"missing argument", "%L and %L", []any{1}},
		{"unused argument", "%L", []any{1, 2}},
		{"type not a TypeName", "%T", []any{"String"}},
		{"name not a string", "%N", []any{3}},
		{"unknown verb", "%Q", []any{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseCode(tt.format, tt.args...); err == nil {
				t.Errorf("ParseCode(%q) succeeded, want error", tt.format)
			}
		})
	}
}

func TestCodePanicsOnInvalidFormat(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Code() did not panic")
		}
	}()
	Code("%T", 1)
}

func TestCodeLiteralPercentIsNotAPlaceholder(t *testing.T) {
	c := Code("%L", "%L")
	if got := c.String(); got != "%L" {
		t.Errorf("String() = %q, want %q", got, "%L")
	}
}

func TestCodeEqual(t *testing.T) {
	if !Code("%N", "x").Equal(Code("%N", namedThing{"x"})) {
		t.Errorf("names normalized at construction should be equal")
	}
	if Code("%N", "x").Equal(Code("x")) {
		t.Errorf("a name reference equals plain text with the same rendering")
	}
	if Code("%L", 1).Equal(Code("%L", 2)) {
		t.Errorf("different literals are equal")
	}
	if !Code("%T", Int).Equal(Code("%T", ClassName("kotlin", "Int"))) {
		t.Errorf("equal types are not equal")
	}
}

func TestCodeBlockBuilderControlFlow(t *testing.T) {
	c, err := NewCodeBlockBuilder().
		BeginControlFlow("if (%N > 0)", "x").
		AddStatement("return %L", 1).
		NextControlFlow("else").
		AddStatement("return %L", 0).
		EndControlFlow().
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want := "if (x > 0) {\n  return 1\n} else {\n  return 0\n}\n"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCodeBlockBuilderKeepsFirstError(t *testing.T) {
	_, err := NewCodeBlockBuilder().
		Add("%T", "not a type").
		AddStatement("fine()").
		Build()
	if err == nil {
		t.Errorf("Build() succeeded after a bad Add")
	}
}

func TestStatementContinuation(t *testing.T) {
	c := NewCodeBlockBuilder().
		AddStatement("val total = first +\nsecond").
		AddStatement("done()")
	block, err := c.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	want := "val total = first +\n    second\ndone()\n"
	if got := block.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
