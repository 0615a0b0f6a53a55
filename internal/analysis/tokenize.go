package analysis

import (
	"strings"
	"unicode/utf8"
)

// TokenizeAndCount splits normalized text on runs of whitespace, keeps tokens
// whose rune count is at least minLength, and counts occurrences. The order
// slice records each distinct token in first-encounter order; Go maps do not
// preserve insertion order and the ranking tie-break needs it. total is the
// number of retained tokens including repeats.
//
// An input with no surviving tokens returns an empty map, nil order, and
// total 0: the caller must treat that as the no-result condition.
func TokenizeAndCount(normalized string, minLength int) (counts map[string]int, order []string, total int) {
	counts = make(map[string]int)
	for _, token := range strings.Fields(normalized) {
		if utf8.RuneCountInString(token) < minLength {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
		total++
	}
	return counts, order, total
}
