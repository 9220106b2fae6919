package kotlin

import (
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// TypeName is a reference to a type: a class name with optional type
// arguments, or a type variable. The zero value is "no type".
type TypeName struct {
	pkg      string
	names    []string
	args     []TypeName
	nullable bool
	star     bool
}

var (
	Any     = ClassName("kotlin", "Any")
	Unit    = ClassName("kotlin", "Unit")
	Nothing = ClassName("kotlin", "Nothing")
	String  = ClassName("kotlin", "String")
	Int     = ClassName("kotlin", "Int")
	Long    = ClassName("kotlin", "Long")
	Short   = ClassName("kotlin", "Short")
	Byte    = ClassName("kotlin", "Byte")
	Char    = ClassName("kotlin", "Char")
	Boolean = ClassName("kotlin", "Boolean")
	Double  = ClassName("kotlin", "Double")
	Float   = ClassName("kotlin", "Float")
	List    = ClassName("kotlin.collections", "List")
	Set     = ClassName("kotlin.collections", "Set")
	Map     = ClassName("kotlin.collections", "Map")

	// Star is the `*` projection used as a type argument.
	Star = TypeName{star: true}
)

// ClassName references a (possibly nested) class in pkg.
func ClassName(pkg string, simpleNames ...string) TypeName {
	return TypeName{pkg: pkg, names: append([]string(nil), simpleNames...)}
}

// TypeVariableName references a type variable such as T.
func TypeVariableName(name string) TypeName {
	return TypeName{names: []string{name}}
}

// Parameterized returns t with the given type arguments.
func (t TypeName) Parameterized(args ...TypeName) TypeName {
	out := t.clone()
	out.args = append([]TypeName(nil), args...)
	return out
}

// Nested returns a reference to the class name nested inside t.
func (t TypeName) Nested(name string) TypeName {
	out := TypeName{pkg: t.pkg, names: append(append([]string(nil), t.names...), name)}
	return out
}

func (t TypeName) Nullable() TypeName {
	out := t.clone()
	out.nullable = true
	return out
}

func (t TypeName) NonNull() TypeName {
	out := t.clone()
	out.nullable = false
	return out
}

func (t TypeName) clone() TypeName {
	return TypeName{
		pkg:      t.pkg,
		names:    append([]string(nil), t.names...),
		args:     append([]TypeName(nil), t.args...),
		nullable: t.nullable,
		star:     t.star,
	}
}

func (t TypeName) IsZero() bool {
	return len(t.names) == 0 && !t.star
}

func (t TypeName) IsNullable() bool { return t.nullable }

func (t TypeName) Package() string { return t.pkg }

// SimpleName is the innermost simple name, e.g. "Entry" for Map.Entry.
func (t TypeName) SimpleName() string {
	if len(t.names) == 0 {
		return ""
	}
	return t.names[len(t.names)-1]
}

func (t TypeName) SimpleNames() []string {
	return append([]string(nil), t.names...)
}

func (t TypeName) TypeArguments() []TypeName {
	return append([]TypeName(nil), t.args...)
}

func (t TypeName) Equal(o TypeName) bool {
	if t.pkg != o.pkg || t.nullable != o.nullable || t.star != o.star {
		return false
	}
	if len(t.names) != len(o.names) || len(t.args) != len(o.args) {
		return false
	}
	for i := range t.names {
		if t.names[i] != o.names[i] {
			return false
		}
	}
	for i := range t.args {
		if !t.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return true
}

// String is the fully qualified form, e.g. kotlin.collections.List<kotlin.String>?
func (t TypeName) String() string {
	var sb strings.Builder
	t.write(&sb, func(pkg string, names []string) string {
		if pkg == "" {
			return strings.Join(names, ".")
		}
		return pkg + "." + strings.Join(names, ".")
	})
	return sb.String()
}

func (t TypeName) emit(w Sink) {
	var sb strings.Builder
	t.write(&sb, func(pkg string, names []string) string {
		return w.Qualify(pkg, names...)
	})
	w.Write(sb.String())
}

func (t TypeName) write(sb *strings.Builder, qualify func(string, []string) string) {
	if t.star {
		sb.WriteString("*")
		return
	}
	sb.WriteString(qualify(t.pkg, t.names))
	if len(t.args) > 0 {
		sb.WriteString("<")
		for i, a := range t.args {
			if i > 0 {
				sb.WriteString(", ")
			}
			a.write(sb, qualify)
		}
		sb.WriteString(">")
	}
	if t.nullable {
		sb.WriteString("?")
	}
}

// ParseTypeName parses the qualified form produced by String. Leading
// lower-case segments are taken as the package; the first segment that starts
// with an upper-case letter begins the class names. A single segment with no
// package is a type variable.
func ParseTypeName(s string) (TypeName, error) {
	p := &typeParser{src: s}
	t, err := p.parse()
	if err != nil {
		return TypeName{}, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return TypeName{}, errors.Newf("unexpected %q at offset %d in type %q", p.src[p.pos:], p.pos, s)
	}
	return t, nil
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeParser) parse() (TypeName, error) {
	p.skipSpace()
	if strings.HasPrefix(p.src[p.pos:], "*") {
		p.pos++
		return Star, nil
	}
	start := p.pos
	for p.pos < len(p.src) && strings.IndexByte("<>,? ", p.src[p.pos]) < 0 {
		p.pos++
	}
	dotted := p.src[start:p.pos]
	if dotted == "" {
		return TypeName{}, errors.Newf("expected type name at offset %d in %q", start, p.src)
	}
	segments := strings.Split(dotted, ".")
	split := len(segments) - 1
	for i, seg := range segments {
		if !isIdentifier(seg) {
			return TypeName{}, errors.Newf("invalid segment %q in type %q", seg, p.src)
		}
		r := []rune(seg)[0]
		if unicode.IsUpper(r) {
			split = i
			break
		}
	}
	t := TypeName{
		pkg:   strings.Join(segments[:split], "."),
		names: segments[split:],
	}
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '<' {
		p.pos++
		for {
			arg, err := p.parse()
			if err != nil {
				return TypeName{}, err
			}
			t.args = append(t.args, arg)
			p.skipSpace()
			if p.pos >= len(p.src) {
				return TypeName{}, errors.Newf("unterminated type arguments in %q", p.src)
			}
			if p.src[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.src[p.pos] == '>' {
				p.pos++
				break
			}
			return TypeName{}, errors.Newf("unexpected %q in type arguments of %q", p.src[p.pos], p.src)
		}
	}
	p.skipSpace()
	if p.pos < len(p.src) && p.src[p.pos] == '?' {
		p.pos++
		t.nullable = true
	}
	return t, nil
}
