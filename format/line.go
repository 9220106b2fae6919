package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/kpoet/kotlin"
)

// LineEncoder writes one tab-separated line per declaration and member.
// Nested declarations are qualified by their enclosing declaration's path.
type LineEncoder struct {
	w    io.Writer
	spec *kotlin.TypeSpec
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(spec *kotlin.TypeSpec) error {
	e.spec = spec
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	writeLines(&sb, e.spec, declarationName(e.spec))
	return []byte(sb.String()), nil
}

func writeLines(sb *strings.Builder, spec *kotlin.TypeSpec, path string) {
	fmt.Fprintf(sb, "%s\t%s\t%s\t%s\n",
		spec.Kind(),
		path,
		joinOrDash(modifierStrings(spec.Modifiers())),
		supertypesStr(spec),
	)

	for _, c := range spec.EnumConstants() {
		fmt.Fprintf(sb, "constant\t%s.%s\n", path, c.Name)
	}

	elided := spec.ConstructorProperties()
	for _, p := range spec.Properties() {
		flags := []string{"val"}
		if p.Mutable {
			flags[0] = "var"
		}
		if _, ok := elided[p.Name]; ok {
			flags = append(flags, "constructor")
		}
		fmt.Fprintf(sb, "property\t%s.%s\t%s\t%s\t%s\n",
			path,
			p.Name,
			p.Type,
			joinOrDash(modifierStrings(p.Modifiers)),
			strings.Join(flags, ","),
		)
	}

	for _, f := range spec.Functions() {
		kind := "function"
		if f.Constructor {
			kind = "constructor"
		}
		fmt.Fprintf(sb, "%s\t%s.%s\t%s\t%s\t%s\n",
			kind,
			path,
			f.Name,
			returnTypeStr(f),
			parametersStr(f.Parameters),
			joinOrDash(modifierStrings(f.Modifiers)),
		)
	}

	for _, n := range spec.NestedTypes() {
		writeLines(sb, n, path+"."+declarationName(n))
	}
	if c := spec.Companion(); c != nil {
		writeLines(sb, c, path+"."+declarationName(c))
	}
}

func supertypesStr(spec *kotlin.TypeSpec) string {
	var parts []string
	if sc := spec.Superclass(); !sc.IsZero() {
		parts = append(parts, sc.String())
	}
	for _, si := range spec.Superinterfaces() {
		parts = append(parts, si.Type.String())
	}
	return joinOrDash(parts)
}

func returnTypeStr(f kotlin.FunSpec) string {
	if f.ReturnType.IsZero() {
		return kotlin.Unit.String()
	}
	return f.ReturnType.String()
}

func parametersStr(params []kotlin.ParameterSpec) string {
	var parts []string
	for _, p := range params {
		parts = append(parts, p.Type.String())
	}
	return joinOrDash(parts)
}

func joinOrDash(parts []string) string {
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}
