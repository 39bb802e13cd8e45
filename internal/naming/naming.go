// Package naming holds the name heuristics shared by the XML emitter and the
// type-interface generator.
package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
)

// Style selects how declaration names are derived from keys.
type Style string

const (
	// StyleCapitalize upper-cases the first letter and keeps the rest.
	StyleCapitalize Style = "capitalize"
	// StylePascal converts snake, kebab and space separated keys to PascalCase.
	StylePascal Style = "pascal"
)

// ValidStyle reports whether s names a known style.
func ValidStyle(s Style) bool {
	return s == StyleCapitalize || s == StylePascal
}

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	invalidTagChars   = regexp.MustCompile(`[^A-Za-z0-9_-]`)
)

// Singularize strips a plural suffix: "ies" becomes "y", otherwise a
// trailing "es" or "s" is dropped. It is a best-effort heuristic, not an
// English inflector ("statuses" gives "status" but "names" gives "nam").
func Singularize(plural string) string {
	switch {
	case strings.HasSuffix(plural, "ies"):
		return strings.TrimSuffix(plural, "ies") + "y"
	case strings.HasSuffix(plural, "es"):
		return strings.TrimSuffix(plural, "es")
	case strings.HasSuffix(plural, "s"):
		return strings.TrimSuffix(plural, "s")
	default:
		return plural
	}
}

// Capitalize upper-cases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Pascal converts s to PascalCase.
func Pascal(s string) string {
	return strcase.ToCamel(s)
}

// TypeName derives a declaration name from a key in the given style.
func TypeName(key string, style Style) string {
	if style == StylePascal {
		if name := Pascal(key); name != "" {
			return name
		}
	}
	return Capitalize(key)
}

// IsIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9_]*.
func IsIdentifier(s string) bool {
	return identifierPattern.MatchString(s)
}

// SanitizeTag turns s into a valid XML element name: characters outside
// [A-Za-z0-9_-] become '_', and a '_' is prefixed unless the result starts
// with a letter or underscore.
func SanitizeTag(s string) string {
	tag := invalidTagChars.ReplaceAllString(s, "_")
	if tag == "" {
		return "_"
	}
	c := tag[0]
	if c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
		return tag
	}
	return "_" + tag
}
