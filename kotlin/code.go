package kotlin

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/dhamidi/kpoet/layout"
)

// Sink is the text destination declarations render into. *layout.Writer
// implements it.
type Sink interface {
	Write(text string)
	Indent(levels int)
	Unindent(levels int)
	EnterScope(name string)
	ExitScope()
	StatementLine() int
	SetStatementLine(n int)
	Qualify(pkg string, names ...string) string
}

var _ Sink = (*layout.Writer)(nil)

const (
	argLiteral = "\x00L"
	argString  = "\x00S"
	argType    = "\x00T"
	argName    = "\x00N"
)

// Layout markers understood inside code formats.
const (
	MarkIndent         = "⇥"
	MarkUnindent       = "⇤"
	MarkStatementBegin = "«"
	MarkStatementEnd   = "»"
)

// CodeBlock is a fragment of Kotlin code built from a format string.
//
//	%L  literal: a CodeBlock, a TypeName, a *TypeSpec (rendered as an object
//	    expression when anonymous, which then needs a superclass to carry
//	    constructor arguments), or any value formatted with fmt
//	%S  string literal, quoted and escaped; nil renders as null
//	%T  type reference (TypeName)
//	%N  name: a string or anything with a Name() string method
//	%%  a percent sign
type CodeBlock struct {
	parts []string
	args  []any
}

type named interface {
	Name() string
}

// ParseCode builds a CodeBlock, reporting malformed formats and mismatched
// arguments.
func ParseCode(format string, args ...any) (CodeBlock, error) {
	var b CodeBlockBuilder
	b.Add(format, args...)
	return b.Build()
}

// Code is ParseCode for formats known to be valid. It panics on error.
func Code(format string, args ...any) CodeBlock {
	c, err := ParseCode(format, args...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c CodeBlock) IsEmpty() bool { return len(c.parts) == 0 }

// Equal reports structural equality: same format parts and same arguments.
// Two blocks that render identically but were built differently are not equal.
func (c CodeBlock) Equal(o CodeBlock) bool {
	if len(c.parts) != len(o.parts) || len(c.args) != len(o.args) {
		return false
	}
	for i := range c.parts {
		if c.parts[i] != o.parts[i] {
			return false
		}
	}
	for i := range c.args {
		if !argEqual(c.args[i], o.args[i]) {
			return false
		}
	}
	return true
}

func argEqual(a, b any) bool {
	switch x := a.(type) {
	case CodeBlock:
		y, ok := b.(CodeBlock)
		return ok && x.Equal(y)
	case TypeName:
		y, ok := b.(TypeName)
		return ok && x.Equal(y)
	case *TypeSpec:
		y, ok := b.(*TypeSpec)
		return ok && x.Equal(y)
	case nil:
		return b == nil
	case string:
		y, ok := b.(string)
		return ok && x == y
	}
	return false
}

func (c CodeBlock) String() string {
	w := layout.NewWriter()
	c.emit(w)
	return w.String()
}

func (c CodeBlock) emit(w Sink) {
	arg := 0
	next := func() any {
		a := c.args[arg]
		arg++
		return a
	}
	for _, p := range c.parts {
		switch p {
		case argLiteral:
			switch a := next().(type) {
			case CodeBlock:
				a.emit(w)
			case TypeName:
				a.emit(w)
			case *TypeSpec:
				a.emit(w, "")
			case string:
				w.Write(a)
			}
		case argString:
			if s, ok := next().(string); ok {
				w.Write(stringLiteral(s))
			} else {
				w.Write("null")
			}
		case argType:
			next().(TypeName).emit(w)
		case argName:
			w.Write(escapeName(next().(string)))
		case MarkIndent:
			w.Indent(1)
		case MarkUnindent:
			w.Unindent(1)
		case MarkStatementBegin:
			if w.StatementLine() < 0 {
				w.SetStatementLine(0)
			}
		case MarkStatementEnd:
			w.SetStatementLine(-1)
		default:
			w.Write(p)
		}
	}
}

// endsWithNewline reports whether the last text this block emits is a newline.
func (c CodeBlock) endsWithNewline() bool {
	arg := len(c.args)
	for i := len(c.parts) - 1; i >= 0; i-- {
		p := c.parts[i]
		switch p {
		case MarkIndent, MarkUnindent, MarkStatementBegin, MarkStatementEnd:
			continue
		case argLiteral, argString, argType, argName:
			arg--
			if p == argLiteral {
				switch nested := c.args[arg].(type) {
				case CodeBlock:
					if nested.IsEmpty() {
						continue
					}
					return nested.endsWithNewline()
				case *TypeSpec:
					return !nested.anonymous
				}
			}
			return false
		}
		return strings.HasSuffix(p, "\n")
	}
	return false
}

func stringLiteral(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '$':
			sb.WriteString(`\$`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// CodeBlockBuilder accumulates code. The first error encountered is kept and
// returned by Build; later calls are ignored.
type CodeBlockBuilder struct {
	parts []string
	args  []any
	err   error
}

func NewCodeBlockBuilder() *CodeBlockBuilder {
	return &CodeBlockBuilder{}
}

func (b *CodeBlockBuilder) Add(format string, args ...any) *CodeBlockBuilder {
	if b.err != nil {
		return b
	}
	parts, normalized, err := parseFormat(format, args)
	if err != nil {
		b.err = err
		return b
	}
	b.parts = append(b.parts, parts...)
	b.args = append(b.args, normalized...)
	return b
}

// AddStatement adds one statement terminated by a newline.
func (b *CodeBlockBuilder) AddStatement(format string, args ...any) *CodeBlockBuilder {
	b.appendPart(MarkStatementBegin)
	b.Add(format, args...)
	b.appendPart("\n")
	b.appendPart(MarkStatementEnd)
	return b
}

// AddCode appends a previously built block.
func (b *CodeBlockBuilder) AddCode(c CodeBlock) *CodeBlockBuilder {
	if b.err != nil {
		return b
	}
	b.parts = append(b.parts, c.parts...)
	b.args = append(b.args, c.args...)
	return b
}

// BeginControlFlow opens a braced construct such as `if (x) {`.
func (b *CodeBlockBuilder) BeginControlFlow(controlFlow string, args ...any) *CodeBlockBuilder {
	b.Add(controlFlow+" {\n", args...)
	return b.Indent()
}

// NextControlFlow continues a construct, e.g. `} else {`.
func (b *CodeBlockBuilder) NextControlFlow(controlFlow string, args ...any) *CodeBlockBuilder {
	b.Unindent()
	b.Add("} "+controlFlow+" {\n", args...)
	return b.Indent()
}

func (b *CodeBlockBuilder) EndControlFlow() *CodeBlockBuilder {
	b.Unindent()
	b.appendPart("}\n")
	return b
}

func (b *CodeBlockBuilder) Indent() *CodeBlockBuilder {
	b.appendPart(MarkIndent)
	return b
}

func (b *CodeBlockBuilder) Unindent() *CodeBlockBuilder {
	b.appendPart(MarkUnindent)
	return b
}

func (b *CodeBlockBuilder) appendPart(p string) {
	if b.err == nil {
		b.parts = append(b.parts, p)
	}
}

func (b *CodeBlockBuilder) Build() (CodeBlock, error) {
	if b.err != nil {
		return CodeBlock{}, b.err
	}
	return CodeBlock{
		parts: append([]string(nil), b.parts...),
		args:  append([]any(nil), b.args...),
	}, nil
}

func parseFormat(format string, args []any) ([]string, []any, error) {
	var parts []string
	var out []any
	var text strings.Builder
	flush := func() {
		if text.Len() > 0 {
			parts = append(parts, text.String())
			text.Reset()
		}
	}
	used := 0
	for i := 0; i < len(format); {
		r, size := utf8.DecodeRuneInString(format[i:])
		switch {
		case r == '%':
			if i+1 >= len(format) {
				return nil, nil, errors.Newf("dangling %% at end of format %q", format)
			}
			verb := format[i+1]
			if verb == '%' {
				text.WriteByte('%')
				i += 2
				continue
			}
			if used >= len(args) {
				return nil, nil, errors.Newf("format %q: missing argument for %%%c", format, verb)
			}
			a, err := normalizeArg(verb, args[used])
			if err != nil {
				return nil, nil, errors.Wrapf(err, "format %q argument %d", format, used)
			}
			flush()
			parts = append(parts, "\x00"+string(verb))
			out = append(out, a)
			used++
			i += 2
		case r == '⇥' || r == '⇤' || r == '«' || r == '»':
			flush()
			parts = append(parts, string(r))
			i += size
		default:
			text.WriteString(format[i : i+size])
			i += size
		}
	}
	flush()
	if used != len(args) {
		return nil, nil, errors.Newf("format %q: %d unused arguments", format, len(args)-used)
	}
	return parts, out, nil
}

func normalizeArg(verb byte, a any) (any, error) {
	switch verb {
	case 'L':
		switch v := a.(type) {
		case CodeBlock, TypeName:
			return v, nil
		case *TypeSpec:
			if v == nil {
				return "null", nil
			}
			if v.anonymous && len(v.anonymousArgs) > 0 && !v.hasSuperclass() {
				return nil, errors.Newf("object expression has constructor arguments but no superclass")
			}
			return v, nil
		case nil:
			return "null", nil
		}
		return fmt.Sprint(a), nil
	case 'S':
		switch v := a.(type) {
		case nil:
			return nil, nil
		case string:
			return v, nil
		case CodeBlock:
			return v.String(), nil
		}
		return fmt.Sprint(a), nil
	case 'T':
		t, ok := a.(TypeName)
		if !ok {
			return nil, errors.Newf("%%T expects a TypeName, got %T", a)
		}
		return t, nil
	case 'N':
		switch v := a.(type) {
		case string:
			return v, nil
		case named:
			return v.Name(), nil
		}
		return nil, errors.Newf("%%N expects a name, got %T", a)
	}
	return nil, errors.Newf("unknown verb %%%c", verb)
}
