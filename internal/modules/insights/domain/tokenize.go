package domain

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text, turns every rune outside a-z and whitespace into a
// space, and splits on whitespace. Punctuation never glues two words together.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, lower)
	return strings.Fields(cleaned)
}
