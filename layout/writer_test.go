package layout

import "testing"

func TestWriterIndentation(t *testing.T) {
	w := NewWriter()
	w.Write("class A {\n")
	w.Indent(1)
	w.Write("val x = 1\n\nval y = 2\n")
	w.Unindent(1)
	w.Write("}\n")

	want := "class A {\n  val x = 1\n\n  val y = 2\n}\n"
	if got := w.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWriterCustomIndent(t *testing.T) {
	w := NewWriter(WithIndent("    "))
	w.Indent(1)
	w.Write("a\n")
	if got := w.String(); got != "    a\n" {
		t.Errorf("String() = %q, want %q", got, "    a\n")
	}
}

func TestWriterStatementContinuation(t *testing.T) {
	w := NewWriter()
	w.Indent(1)
	w.SetStatementLine(0)
	w.Write("val x = foo(\nbar)\n")
	w.SetStatementLine(-1)
	w.Write("done\n")

	want := "  val x = foo(\n      bar)\n  done\n"
	if got := w.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWriterStatementLineCounts(t *testing.T) {
	w := NewWriter()
	if got := w.StatementLine(); got != -1 {
		t.Fatalf("StatementLine() = %d, want -1", got)
	}
	w.SetStatementLine(0)
	w.Write("a\nb\n")
	if got := w.StatementLine(); got != 2 {
		t.Errorf("StatementLine() = %d, want 2", got)
	}
}

func TestWriterColumn(t *testing.T) {
	w := NewWriter()
	w.Indent(2)
	w.Write("abc")
	if got := w.Column(); got != 7 {
		t.Errorf("Column() = %d, want 7", got)
	}
	w.Write("\n")
	if got := w.Column(); got != 0 {
		t.Errorf("Column() = %d, want 0", got)
	}
}

func TestWriterQualify(t *testing.T) {
	w := NewWriter(WithPackage("com.example"), WithImports("java.util.UUID"))

	tests := []struct {
		name  string
		pkg   string
		names []string
		want  string
	}{
		{"default import", "kotlin", []string{"String"}, "String"},
		{"default collections", "kotlin.collections", []string{"List"}, "List"},
		{"same package", "com.example", []string{"Point"}, "Point"},
		{"nested same package", "com.example", []string{"Outer", "Inner"}, "Outer.Inner"},
		{"explicit import", "java.util", []string{"UUID"}, "UUID"},
		{"foreign", "java.time", []string{"Instant"}, "java.time.Instant"},
		{"no package", "", []string{"T"}, "T"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Qualify(tt.pkg, tt.names...); got != tt.want {
				t.Errorf("Qualify(%q, %v) = %q, want %q", tt.pkg, tt.names, got, tt.want)
			}
		})
	}
}

func TestWriterScopeShadowsDefaultImport(t *testing.T) {
	w := NewWriter(WithPackage("com.example"))
	w.EnterScope("String")
	if got := w.Qualify("kotlin", "String"); got != "kotlin.String" {
		t.Errorf("Qualify() = %q, want %q", got, "kotlin.String")
	}
	w.ExitScope()
	if got := w.Qualify("kotlin", "String"); got != "String" {
		t.Errorf("Qualify() = %q, want %q", got, "String")
	}
}

func TestWriterImportsSorted(t *testing.T) {
	w := NewWriter(WithImports("java.util.UUID", "java.time.Instant"))
	got := w.Imports()
	if len(got) != 2 || got[0] != "java.time.Instant" || got[1] != "java.util.UUID" {
		t.Errorf("Imports() = %v", got)
	}
}

func TestWriterPanicsOnMisuse(t *testing.T) {
	t.Run("unindent", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		NewWriter().Unindent(1)
	})
	t.Run("exit scope", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic")
			}
		}()
		NewWriter().ExitScope()
	})
}
