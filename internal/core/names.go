package core

import (
	"strings"
	"unicode"
)

// NormalizeName prepares a free-text party name for storage and matching:
// surrounding whitespace is trimmed and each word is title-cased, so
// "  ali khan " becomes "Ali Khan". Urdu and other uncased scripts pass
// through unchanged apart from the trim.
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			if !inWord {
				r = unicode.ToUpper(r)
			}
			inWord = true
		} else {
			inWord = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// TrimName is the lighter normalization used for catalog names (clients,
// cylinder types, vegetable names): trim only, original casing kept.
// Matching is still case-insensitive.
func TrimName(s string) string {
	return strings.TrimSpace(s)
}

// SameName reports whether two names refer to the same entity under the
// trim + case-insensitive matching contract.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
