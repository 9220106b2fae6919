// Package format encodes built declarations as outlines for inspection.
package format

import (
	"encoding"

	"github.com/dhamidi/kpoet/kotlin"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(spec *kotlin.TypeSpec) error
}

// declarationName is the name shown for spec in outlines.
func declarationName(spec *kotlin.TypeSpec) string {
	switch {
	case spec.IsAnonymous():
		return "<anonymous>"
	case spec.Name() == "" && spec.Modifiers().Has(kotlin.Companion):
		return "Companion"
	}
	return spec.Name()
}

func modifierStrings(mods kotlin.ModifierSet) []string {
	var out []string
	for _, m := range mods.Sorted() {
		out = append(out, m.String())
	}
	return out
}
