package analysis

import (
	"sort"
	"unicode"
)

// Entry is one ranked word with its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Rank orders the counted words by count descending, ties broken by
// first-encounter order, and returns at most topN entries.
//
// Words that are not purely alphabetic (tokens like "python3" or "a_b" that
// the broader tokenizer character class admits) are excluded before the topN
// cut, so every returned entry satisfies the WordFrequency invariant and the
// remaining slots go to the next alphabetic candidates.
func Rank(counts map[string]int, order []string, topN int) []Entry {
	entries := make([]Entry, 0, len(order))
	for _, word := range order {
		if !isAlphabetic(word) {
			continue
		}
		entries = append(entries, Entry{Word: word, Count: counts[word]})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if topN >= 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}

func isAlphabetic(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
