// Package config loads, normalizes, and validates wordfreq configuration data.
//
// The configuration file is optional: it supplies persistent defaults for the
// analysis options (result-set size, minimum word length) and the logging
// setup. CLI flags always take precedence over file values. Files are TOML,
// resolved from an explicit path, ~/.config/wordfreq/config.toml, or
// wordfreq.toml in the working directory.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical log formats, and clear validation errors.
package config
