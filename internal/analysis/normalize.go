package analysis

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Normalize case-folds text and strips every rune that is not a letter,
// digit, underscore, or whitespace. Whitespace runs are preserved as-is so
// the tokenizer sees the original word boundaries. Total function: empty or
// non-text input yields an empty or whitespace-only string.
func Normalize(text string) string {
	folded := cases.Fold().String(text)
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_', unicode.IsSpace(r):
			return r
		default:
			return -1
		}
	}, folded)
}
