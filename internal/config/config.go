// Package config provides centralized configuration for the fecstream CLI.
// It loads settings from environment variables with sensible defaults and
// validates everything up front to fail fast on misconfiguration.
package config

// Config holds all application configuration.
// All settings can be set via environment variables; CLI flags override.
type Config struct {
	Parse   ParseConfig
	Export  ExportConfig
	Logging LoggingConfig
}

// ParseConfig holds decode engine settings.
type ParseConfig struct {
	// MaxBatchSize is the maximum rows per emitted batch (default: 1024)
	MaxBatchSize int `env:"FEC_MAX_BATCH_SIZE" default:"1024"`

	// Strict aborts a filing on the first per-line decode failure instead
	// of skipping and reporting it (default: false)
	Strict bool `env:"FEC_STRICT" default:"false"`

	// MaxLineBytes bounds how far the reader looks for a line terminator
	// before declaring the line malformed (default: 1MiB)
	MaxLineBytes int `env:"FEC_MAX_LINE_BYTES" default:"1048576"`
}

// ExportConfig holds CSV export settings.
type ExportConfig struct {
	// OutDir is the directory CSV files are written to (default: out)
	// Supports both FEC_OUT_DIR and OUT_DIR for compatibility
	OutDir string `env:"FEC_OUT_DIR" envAlt:"OUT_DIR" default:"out"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}
