package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Metaform/assemblr/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/assemblr"
	configFileName = "config.yaml"
)

// DefaultConfigPath returns the per-user configuration directory.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// Load reads config.yaml from the given directory. A missing file is not an
// error: defaults are returned. A malformed file is.
func Load(configPath string) (AssemblrConfig, error) {
	configFilePath := filepath.Join(configPath, configFileName)
	config := Default()

	data, err := os.ReadFile(configFilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("ConfigLoader", "No config.yaml found at %s, using defaults", configFilePath)
			return config, nil
		}
		return AssemblrConfig{}, err
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return AssemblrConfig{}, fmt.Errorf("error loading config from %s: %w", configFilePath, err)
	}

	logging.Info("ConfigLoader", "Loaded configuration from %s", configFilePath)
	return config, nil
}
