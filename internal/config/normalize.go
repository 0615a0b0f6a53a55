package config

import "strings"

// normalize canonicalizes string fields and backfills empty values with the
// repository defaults so a sparse config file stays valid.
func (c *Config) normalize() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Analysis.TopN == 0 {
		c.Analysis.TopN = defaultTopN
	}
	if c.Analysis.MinLength == 0 {
		c.Analysis.MinLength = defaultMinLength
	}
}
