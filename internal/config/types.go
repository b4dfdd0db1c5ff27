package config

// AssemblrConfig is the runtime configuration for an assembled process.
type AssemblrConfig struct {
	// Mode is the runtime mode string, resolved by system.ParseRuntimeMode
	// ("debug", "development"/"dev", "production"/"prod").
	Mode string `yaml:"mode"`

	// LogLevel is the minimum log level ("debug", "info", "warn", "error").
	LogLevel string `yaml:"logLevel"`

	// Silent suppresses all log output when set.
	Silent bool `yaml:"silent"`
}

// Default returns the configuration used when no config file is present.
func Default() AssemblrConfig {
	return AssemblrConfig{
		Mode:     "development",
		LogLevel: "info",
	}
}
