package config

import "fmt"

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateAnalysis(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateAnalysis() error {
	if c.Analysis.TopN < MinTopN || c.Analysis.TopN > MaxTopN {
		return fmt.Errorf("analysis.top_n must be between %d and %d, got %d", MinTopN, MaxTopN, c.Analysis.TopN)
	}
	if c.Analysis.MinLength < MinMinLength || c.Analysis.MinLength > MaxMinLength {
		return fmt.Errorf("analysis.min_length must be between %d and %d, got %d", MinMinLength, MaxMinLength, c.Analysis.MinLength)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
