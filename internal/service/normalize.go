package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent decomposes text and discards combining marks, so "Café"
// normalizes to the same bytes as "cafe"
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes free text for case/accent-insensitive comparison:
// accents stripped, lowercased, surrounding whitespace trimmed. It is total
// over arbitrary input; a transform failure falls back to the raw text.
func Normalize(s string) string {
	out, _, err := transform.String(deaccent, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// NormalizeList normalizes each element, dropping entries that are empty
// after normalization. The result is never nil and preserves input order.
func NormalizeList(items []string) []string {
	normalized := make([]string, 0, len(items))
	for _, item := range items {
		if n := Normalize(item); n != "" {
			normalized = append(normalized, n)
		}
	}
	return normalized
}
