// Package normalize provides utilities for normalizing and sanitizing data.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips combining marks after canonical decomposition, so
// "Café" and "Cafe" compare equal in search.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SearchText lowercases, trims, and removes diacritics from text destined for
// the search index or substring matching.
func SearchText(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Fall back to the raw string; a failed fold only degrades matching.
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Category canonicalizes a category or subcategory token: lowercase,
// spaces and underscores collapsed to single hyphens.
func Category(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	})
	return strings.Join(fields, "-")
}
