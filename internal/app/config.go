package app

import (
	"github.com/Metaform/assemblr/internal/config"
)

// Config holds the application configuration.
type Config struct {
	// Debug forces debug-level logging regardless of the configured level.
	Debug bool

	// Silent suppresses all log output.
	Silent bool

	// ConfigPath is an optional custom configuration directory. When empty
	// the per-user default location is used.
	ConfigPath string

	// AssemblrConfig is populated during bootstrap.
	AssemblrConfig *config.AssemblrConfig
}

// NewConfig creates a new application configuration.
func NewConfig(debug, silent bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		Silent:     silent,
		ConfigPath: configPath,
	}
}
