package kotlin

import (
	"strings"

	"github.com/dhamidi/kpoet/layout"
)

// captureSink records text while deferring reference shortening to a parent
// sink. KDoc uses it so that comment lines can be prefixed after rendering.
type captureSink struct {
	parent Sink
	w      *layout.Writer
}

func newCaptureSink(parent Sink) *captureSink {
	return &captureSink{parent: parent, w: layout.NewWriter()}
}

func (c *captureSink) Write(text string) { c.w.Write(text) }
func (c *captureSink) Indent(levels int) { c.w.Indent(levels) }
func (c *captureSink) Unindent(levels int) { c.w.Unindent(levels) }
func (c *captureSink) EnterScope(name string) { c.w.EnterScope(name) }
func (c *captureSink) ExitScope() { c.w.ExitScope() }
func (c *captureSink) StatementLine() int { return c.w.StatementLine() }
func (c *captureSink) SetStatementLine(n int) { c.w.SetStatementLine(n) }
func (c *captureSink) Qualify(pkg string, names ...string) string {
	return c.parent.Qualify(pkg, names...)
}

func emitKdoc(w Sink, doc CodeBlock) {
	if doc.IsEmpty() {
		return
	}
	capture := newCaptureSink(w)
	doc.emit(capture)
	text := strings.TrimRight(capture.w.String(), "\n")
	w.Write("/**\n")
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			w.Write(" *\n")
			continue
		}
		w.Write(" * " + line + "\n")
	}
	w.Write(" */\n")
}

func emitAnnotations(w Sink, annotations []AnnotationSpec, inline bool) {
	for _, a := range annotations {
		a.emit(w)
		if inline {
			w.Write(" ")
		} else {
			w.Write("\n")
		}
	}
}

// emitModifiers writes every modifier of mods that is not implied by the
// container, in canonical order, each followed by a space.
func emitModifiers(w Sink, mods ModifierSet, implicit ModifierSet) {
	for _, m := range mods.Sorted() {
		if implicit.Has(m) {
			continue
		}
		w.Write(m.String())
		w.Write(" ")
	}
}

func emitTypeVariables(w Sink, vars []TypeVariable) {
	if len(vars) == 0 {
		return
	}
	w.Write("<")
	for i, v := range vars {
		if i > 0 {
			w.Write(", ")
		}
		v.emit(w)
	}
	w.Write(">")
}

func emitWhereBlock(w Sink, vars []TypeVariable) {
	first := true
	for _, v := range vars {
		if len(v.Bounds) < 2 {
			continue
		}
		for _, b := range v.Bounds {
			if first {
				w.Write(" where ")
				first = false
			} else {
				w.Write(", ")
			}
			w.Write(escapeName(v.Name) + " : ")
			b.emit(w)
		}
	}
}

func emitParameters(w Sink, params []ParameterSpec, each func(ParameterSpec)) {
	w.Write("(")
	for i, p := range params {
		if i > 0 {
			w.Write(", ")
		}
		each(p)
	}
	w.Write(")")
}

func joinCode(w Sink, blocks []CodeBlock, sep string) {
	for i, c := range blocks {
		if i > 0 {
			w.Write(sep)
		}
		c.emit(w)
	}
}
