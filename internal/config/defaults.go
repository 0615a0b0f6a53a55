package config

const (
	defaultTopN      = 10
	defaultMinLength = 3
	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	// Bounds enforced on the analysis options wherever they originate.
	MinTopN      = 1
	MaxTopN      = 100
	MinMinLength = 1
	MaxMinLength = 20
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Analysis: Analysis{
			TopN:      defaultTopN,
			MinLength: defaultMinLength,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
