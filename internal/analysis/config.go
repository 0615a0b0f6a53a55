package analysis

import (
	"fmt"
	"strings"

	"wordfreq/internal/config"
)

// Config carries the validated parameters for one analysis run. Construct it
// with New; treat the value as immutable afterwards.
type Config struct {
	Filepath  string `json:"filepath"`
	TopN      int    `json:"top_n"`
	MinLength int    `json:"min_length"`
}

// New validates the analysis parameters and returns the assembled Config.
func New(filepath string, topN, minLength int) (Config, error) {
	if strings.TrimSpace(filepath) == "" {
		return Config{}, fmt.Errorf("%w: filepath must not be empty", ErrValidation)
	}
	if topN < config.MinTopN || topN > config.MaxTopN {
		return Config{}, fmt.Errorf("%w: top_n must be between %d and %d, got %d",
			ErrValidation, config.MinTopN, config.MaxTopN, topN)
	}
	if minLength < config.MinMinLength || minLength > config.MaxMinLength {
		return Config{}, fmt.Errorf("%w: min_length must be between %d and %d, got %d",
			ErrValidation, config.MinMinLength, config.MaxMinLength, minLength)
	}
	return Config{Filepath: filepath, TopN: topN, MinLength: minLength}, nil
}
