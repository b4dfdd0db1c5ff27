// Package config loads the runtime configuration for an assembled process
// from a config.yaml file, falling back to sensible defaults when the file
// is absent.
package config
