package kotlin

import (
	"strings"
	"unicode"
)

var hardKeywords = map[string]bool{
	"as": true, "break": true, "class": true, "continue": true, "do": true,
	"else": true, "false": true, "for": true, "fun": true, "if": true,
	"in": true, "interface": true, "is": true, "null": true, "object": true,
	"package": true, "return": true, "super": true, "this": true, "throw": true,
	"true": true, "try": true, "typealias": true, "typeof": true, "val": true,
	"var": true, "when": true, "while": true,
}

// IsName reports whether s can name a declaration: either a plain identifier
// or a backtick-quoted name.
func IsName(s string) bool {
	if len(s) >= 3 && strings.HasPrefix(s, "`") && strings.HasSuffix(s, "`") {
		inner := s[1 : len(s)-1]
		return !strings.ContainsAny(inner, "`\r\n.;[]/<>:\\")
	}
	return isIdentifier(s)
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

// IsKeyword reports whether s is a hard keyword that must be escaped when
// used as a name.
func IsKeyword(s string) bool {
	return hardKeywords[s]
}

// escapeName quotes a hard keyword with backticks so it can be used as a name.
func escapeName(s string) string {
	if IsKeyword(s) {
		return "`" + s + "`"
	}
	return s
}

func checkName(what, s string) error {
	if !IsName(s) {
		return configErrorf(RuleIdentifier, "not a valid %s name: %q", what, s)
	}
	return nil
}
