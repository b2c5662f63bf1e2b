package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultNamespaces are namespace prefixes stripped from every path ("usa.color.x" -> "color.x")
var DefaultNamespaces = []string{"usa"}

// prefixMarkers are legacy/negation markers, stray separators and reference
// braces trimmed from the front of a path: "!-usa.color", "--color", "#{theme"
const prefixMarkers = "!#-./_{"

// Normalize canonicalizes a token path using DefaultNamespaces.
//
//	Normalize("Usa.Color.Gray.5")    == "color.gray.5"
//	Normalize("--usa/color/gray/5")  == "color.gray.5"
//	Normalize("{!-usa.color.gray.5}") == "color.gray.5"
func Normalize(raw string) string {
	return NormalizeWith(raw, DefaultNamespaces)
}

// NormalizeWith canonicalizes a token path: prefixes stripped, lowercase,
// separators (slash, underscore, whitespace, dot, brace) collapsed to single dots.
// It is idempotent and never fails.
func NormalizeWith(raw string, namespaces []string) string {
	s := strings.ToLower(StripPrefixes(raw, namespaces))
	parts := strings.FieldsFunc(s, isPathSeparator)
	return strings.Join(parts, ".")
}

// StripPrefixes removes reference braces, leading markers and namespace
// prefixes while preserving the casing of what remains. Nested braces
// ("{{color}}") are removed as well.
func StripPrefixes(raw string, namespaces []string) string {
	s := strings.TrimSpace(raw)

	for {
		trimmed := strings.TrimRight(strings.TrimLeftFunc(s, isPrefixMarker), "} \t")
		for _, ns := range namespaces {
			if hasNamespace(trimmed, ns) {
				trimmed = trimmed[len(ns)+1:]
				break
			}
		}
		if trimmed == s {
			return s
		}
		s = trimmed
	}
}

// hasNamespace reports whether s starts with ns followed by a separator
func hasNamespace(s, ns string) bool {
	if ns == "" || len(s) <= len(ns) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[len(ns):])
	return strings.EqualFold(s[:len(ns)], ns) && isPathSeparator(r)
}

func isPrefixMarker(r rune) bool {
	return strings.ContainsRune(prefixMarkers, r) || unicode.IsSpace(r)
}

func isPathSeparator(r rune) bool {
	switch r {
	case '.', '/', '_', '{', '}':
		return true
	}
	return unicode.IsSpace(r)
}

// Segments splits a normalized path into its dot-separated parts
func Segments(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}
