package kotlin

import (
	"io"
	"sort"
	"strings"

	"github.com/dhamidi/kpoet/layout"
)

// File is a Kotlin source file: a package directive, explicit imports and a
// sequence of top-level declarations.
type File struct {
	Package string
	// Imports are fully qualified type names. References to them are written
	// with their simple name.
	Imports []string
	Types   []*TypeSpec
	// Indent is the per-level indentation; empty means two spaces.
	Indent string
}

// Name is the conventional file name: the first declaration's name plus ".kt".
func (f *File) Name() string {
	for _, t := range f.Types {
		if t.Name() != "" {
			return t.Name() + ".kt"
		}
	}
	return "File.kt"
}

func (f *File) sortedImports() []string {
	seen := make(map[string]bool)
	var out []string
	for _, imp := range f.Imports {
		if imp == "" || seen[imp] {
			continue
		}
		seen[imp] = true
		out = append(out, imp)
	}
	sort.Strings(out)
	return out
}

func (f *File) String() string {
	opts := []layout.Option{
		layout.WithPackage(f.Package),
		layout.WithImports(f.Imports...),
	}
	if f.Indent != "" {
		opts = append(opts, layout.WithIndent(f.Indent))
	}
	w := layout.NewWriter(opts...)
	for i, t := range f.Types {
		if i > 0 {
			w.Write("\n")
		}
		t.Render(w)
		if t.IsAnonymous() {
			w.Write("\n")
		}
	}

	var sb strings.Builder
	if f.Package != "" {
		sb.WriteString("package " + f.Package + "\n\n")
	}
	imports := f.sortedImports()
	for _, imp := range imports {
		sb.WriteString("import " + imp + "\n")
	}
	if len(imports) > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(w.String())
	return sb.String()
}

// WriteTo writes the rendered file to out.
func (f *File) WriteTo(out io.Writer) (int64, error) {
	n, err := io.WriteString(out, f.String())
	return int64(n), err
}
