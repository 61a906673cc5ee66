package app

import "fmt"

// Config holds the validated runtime configuration of the CLI.
type Config struct {
	// ManifestPath optionally points at a directory of node-kind
	// manifests. Empty selects the embedded standard catalog.
	ManifestPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a config assembled by the CLI parser.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q", cfg.LogLevel)
	}
	return &cfg, nil
}
