package kotlin

import (
	"sort"
	"strconv"
	"strings"
)

// Modifier is a Kotlin modifier keyword. The declaration order of the
// constants is the order modifiers are rendered in.
type Modifier int

const (
	Public Modifier = iota
	Protected
	Private
	Internal
	Expect
	Actual
	Final
	Open
	Abstract
	Sealed
	Const
	External
	Override
	Lateinit
	Tailrec
	Vararg
	Suspend
	Inner
	Enum
	Annotation
	Value
	Fun
	Companion
	Inline
	Noinline
	Crossinline
	Reified
	Infix
	Operator
	Data
	In
	Out
)

var modifierKeywords = [...]string{
	Public:      "public",
	Protected:   "protected",
	Private:     "private",
	Internal:    "internal",
	Expect:      "expect",
	Actual:      "actual",
	Final:       "final",
	Open:        "open",
	Abstract:    "abstract",
	Sealed:      "sealed",
	Const:       "const",
	External:    "external",
	Override:    "override",
	Lateinit:    "lateinit",
	Tailrec:     "tailrec",
	Vararg:      "vararg",
	Suspend:     "suspend",
	Inner:       "inner",
	Enum:        "enum",
	Annotation:  "annotation",
	Value:       "value",
	Fun:         "fun",
	Companion:   "companion",
	Inline:      "inline",
	Noinline:    "noinline",
	Crossinline: "crossinline",
	Reified:     "reified",
	Infix:       "infix",
	Operator:    "operator",
	Data:        "data",
	In:          "in",
	Out:         "out",
}

func (m Modifier) String() string {
	if m < 0 || int(m) >= len(modifierKeywords) {
		return "modifier(" + strconv.Itoa(int(m)) + ")"
	}
	return modifierKeywords[m]
}

// ParseModifier returns the modifier spelled by keyword.
func ParseModifier(keyword string) (Modifier, bool) {
	for i, k := range modifierKeywords {
		if k == keyword {
			return Modifier(i), true
		}
	}
	return 0, false
}

// ModifierSet is an insertion-ordered set of modifiers. The zero value is an
// empty set. Methods never mutate the receiver.
type ModifierSet struct {
	items []Modifier
}

func NewModifierSet(mods ...Modifier) ModifierSet {
	return ModifierSet{}.With(mods...)
}

// With returns a copy of s with mods appended, skipping duplicates.
func (s ModifierSet) With(mods ...Modifier) ModifierSet {
	out := ModifierSet{items: make([]Modifier, len(s.items), len(s.items)+len(mods))}
	copy(out.items, s.items)
	for _, m := range mods {
		if !out.Has(m) {
			out.items = append(out.items, m)
		}
	}
	return out
}

// Union returns a copy of s extended with every modifier of other.
func (s ModifierSet) Union(other ModifierSet) ModifierSet {
	return s.With(other.items...)
}

// Without returns a copy of s with every modifier of other removed.
func (s ModifierSet) Without(other ModifierSet) ModifierSet {
	var out ModifierSet
	for _, m := range s.items {
		if !other.Has(m) {
			out.items = append(out.items, m)
		}
	}
	return out
}

func (s ModifierSet) Has(m Modifier) bool {
	for _, x := range s.items {
		if x == m {
			return true
		}
	}
	return false
}

// HasAny reports whether s contains at least one of mods.
func (s ModifierSet) HasAny(mods ...Modifier) bool {
	for _, m := range mods {
		if s.Has(m) {
			return true
		}
	}
	return false
}

// Count reports how many of mods are present in s.
func (s ModifierSet) Count(mods ...Modifier) int {
	n := 0
	for _, m := range mods {
		if s.Has(m) {
			n++
		}
	}
	return n
}

func (s ModifierSet) Len() int { return len(s.items) }

func (s ModifierSet) IsEmpty() bool { return len(s.items) == 0 }

// Slice returns the modifiers in insertion order.
func (s ModifierSet) Slice() []Modifier {
	out := make([]Modifier, len(s.items))
	copy(out, s.items)
	return out
}

// Sorted returns the modifiers in rendering order.
func (s ModifierSet) Sorted() []Modifier {
	out := s.Slice()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal reports set equality, ignoring insertion order.
func (s ModifierSet) Equal(other ModifierSet) bool {
	if len(s.items) != len(other.items) {
		return false
	}
	for _, m := range s.items {
		if !other.Has(m) {
			return false
		}
	}
	return true
}

func (s ModifierSet) String() string {
	parts := make([]string, 0, len(s.items))
	for _, m := range s.Sorted() {
		parts = append(parts, m.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}
