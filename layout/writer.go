// Package layout is the text sink that generated Kotlin source is written to.
// It owns indentation, statement continuation and reference shortening so
// that the declaration renderer only has to decide what text goes where.
package layout

import (
	"sort"
	"strings"
)

// DefaultImports are the packages Kotlin imports into every file.
var DefaultImports = []string{
	"kotlin",
	"kotlin.annotation",
	"kotlin.collections",
	"kotlin.io",
	"kotlin.ranges",
	"kotlin.sequences",
	"kotlin.text",
}

type Writer struct {
	sb            strings.Builder
	indent        int
	indentStr     string
	atLineStart   bool
	column        int
	statementLine int
	pkg           string
	imports       map[string]string // simple name -> package
	scopes        []string
}

type Option func(*Writer)

// WithIndent sets the string written once per indentation level.
func WithIndent(s string) Option {
	return func(w *Writer) { w.indentStr = s }
}

// WithPackage sets the package the output belongs to. References into this
// package are written with their simple name.
func WithPackage(pkg string) Option {
	return func(w *Writer) { w.pkg = pkg }
}

// WithImports registers explicit imports as fully qualified names.
func WithImports(qualified ...string) Option {
	return func(w *Writer) {
		for _, q := range qualified {
			w.AddImport(q)
		}
	}
}

func NewWriter(opts ...Option) *Writer {
	w := &Writer{
		indentStr:     "  ",
		atLineStart:   true,
		statementLine: -1,
		imports:       make(map[string]string),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// AddImport registers pkg.Name so that references to it are shortened.
func (w *Writer) AddImport(qualified string) {
	idx := strings.LastIndex(qualified, ".")
	if idx <= 0 {
		return
	}
	w.imports[qualified[idx+1:]] = qualified[:idx]
}

// Imports returns the registered imports, sorted.
func (w *Writer) Imports() []string {
	var out []string
	for name, pkg := range w.imports {
		out = append(out, pkg+"."+name)
	}
	sort.Strings(out)
	return out
}

func (w *Writer) Package() string { return w.pkg }

// Write emits text. Newlines end the current line; indentation for the next
// line is written lazily so that blank lines stay empty.
func (w *Writer) Write(s string) {
	for len(s) > 0 {
		idx := strings.IndexByte(s, '\n')
		if idx < 0 {
			w.writeSegment(s)
			return
		}
		w.writeSegment(s[:idx])
		w.newline()
		s = s[idx+1:]
	}
}

func (w *Writer) writeSegment(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	w.sb.WriteString(s)
	w.column += len(s)
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	levels := w.indent
	if w.statementLine > 0 {
		levels += 2
	}
	for i := 0; i < levels; i++ {
		w.sb.WriteString(w.indentStr)
	}
	w.column = levels * len(w.indentStr)
	w.atLineStart = false
}

func (w *Writer) newline() {
	w.sb.WriteByte('\n')
	w.atLineStart = true
	w.column = 0
	if w.statementLine >= 0 {
		w.statementLine++
	}
}

func (w *Writer) Indent(levels int) {
	w.indent += levels
}

func (w *Writer) Unindent(levels int) {
	if w.indent-levels < 0 {
		panic("layout: cannot unindent below zero")
	}
	w.indent -= levels
}

// Column reports the current column, 0-indexed.
func (w *Writer) Column() int { return w.column }

// StatementLine is -1 outside a statement, otherwise the number of lines the
// current statement has spanned so far.
func (w *Writer) StatementLine() int { return w.statementLine }

func (w *Writer) SetStatementLine(n int) { w.statementLine = n }

// EnterScope pushes the simple name of a type whose members are being written.
func (w *Writer) EnterScope(name string) {
	w.scopes = append(w.scopes, name)
}

func (w *Writer) ExitScope() {
	if len(w.scopes) == 0 {
		panic("layout: scope stack is empty")
	}
	w.scopes = w.scopes[:len(w.scopes)-1]
}

// Depth reports how many scopes are currently open.
func (w *Writer) Depth() int { return len(w.scopes) }

// Qualify returns the text used to refer to the type pkg.names[0].names[1]...
func (w *Writer) Qualify(pkg string, names ...string) string {
	simple := strings.Join(names, ".")
	if pkg == "" || len(names) == 0 {
		return simple
	}
	if w.shortens(pkg, names[0]) {
		return simple
	}
	return pkg + "." + simple
}

func (w *Writer) shortens(pkg, top string) bool {
	if pkg == w.pkg {
		return true
	}
	if imported, ok := w.imports[top]; ok {
		return imported == pkg
	}
	for _, s := range w.scopes {
		if s == top {
			return false
		}
	}
	for _, d := range DefaultImports {
		if d == pkg {
			return true
		}
	}
	return false
}

func (w *Writer) String() string {
	return w.sb.String()
}
