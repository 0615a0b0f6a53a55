package analysis

import (
	"fmt"
	"math"
)

// WordFrequency is one ranked word with its occurrence statistics. Instances
// come from NewWordFrequency and are immutable snapshots owned by a Result.
type WordFrequency struct {
	Word       string  `json:"word"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// NewWordFrequency validates and constructs a single ranked-word record.
// The word must be non-empty, lowercase alphabetic; the percentage is the
// word's share of all counted tokens.
func NewWordFrequency(word string, count int, percentage float64) (WordFrequency, error) {
	if !isAlphabetic(word) {
		return WordFrequency{}, fmt.Errorf("%w: word %q must contain only alphabetic characters", ErrValidation, word)
	}
	if count < 1 {
		return WordFrequency{}, fmt.Errorf("%w: count for %q must be at least 1, got %d", ErrValidation, word, count)
	}
	if percentage < 0 || percentage > 100 {
		return WordFrequency{}, fmt.Errorf("%w: percentage for %q must be within [0,100], got %g", ErrValidation, word, percentage)
	}
	return WordFrequency{Word: word, Count: count, Percentage: percentage}, nil
}

// Result is the validated snapshot of one analysis run.
type Result struct {
	Filepath        string          `json:"filepath"`
	TotalWords      int             `json:"total_words"`
	UniqueWords     int             `json:"unique_words"`
	WordFrequencies []WordFrequency `json:"word_frequencies"`
	Config          Config          `json:"config"`
}

// NewResult validates the aggregate invariants and assembles the snapshot.
func NewResult(filepath string, totalWords, uniqueWords int, frequencies []WordFrequency, cfg Config) (*Result, error) {
	if totalWords < 0 {
		return nil, fmt.Errorf("%w: total_words must be non-negative, got %d", ErrValidation, totalWords)
	}
	if uniqueWords < 0 {
		return nil, fmt.Errorf("%w: unique_words must be non-negative, got %d", ErrValidation, uniqueWords)
	}
	if len(frequencies) > uniqueWords {
		return nil, fmt.Errorf("%w: %d ranked words exceed %d unique words", ErrValidation, len(frequencies), uniqueWords)
	}
	return &Result{
		Filepath:        filepath,
		TotalWords:      totalWords,
		UniqueWords:     uniqueWords,
		WordFrequencies: frequencies,
		Config:          cfg,
	}, nil
}

// roundPercentage keeps stored percentages at two decimal places.
func roundPercentage(value float64) float64 {
	return math.Round(value*100) / 100
}
