package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/kolibri/clippy/internal/fileops"
	"github.com/kolibri/clippy/internal/logger"
	"github.com/kolibri/clippy/internal/types"
	"gopkg.in/yaml.v3"
)

const (
	configFilename = "clippy.yaml"
)

// LoadConfig reads the config file. It returns nil, nil when no file exists.
func LoadConfig() (*types.Config, error) {
	fileOps, err := fileops.NewDefaultFileOps()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file operations: %w", err)
	}

	data, err := fileOps.LoadConfig(configFilename)
	if err != nil {
		if errors.Is(err, fileops.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config types.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// LoadOrDefault returns the stored config or the defaults when none exists
func LoadOrDefault() (*types.Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		logger.Debug("config: no config file, using defaults")
		return types.DefaultConfig(), nil
	}
	return cfg, nil
}

// SaveConfig merges config into the stored one (if any) and writes it back
func SaveConfig(config *types.Config) error {
	fileOps, err := fileops.NewDefaultFileOps()
	if err != nil {
		return fmt.Errorf("failed to initialize file operations: %w", err)
	}

	if err := fileOps.EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	existingConfig, err := LoadConfig()
	if err != nil {
		logger.Warnf("Failed to load existing config: %v", err)
	} else if existingConfig != nil {
		mergeConfigs(existingConfig, config)
		config = existingConfig
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := fileOps.SaveConfig(configFilename, data); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}

// Path returns the location of the config file
func Path() (string, error) {
	fileOps, err := fileops.NewDefaultFileOps()
	if err != nil {
		return "", err
	}
	return filepath.Join(fileOps.GetConfigDir(), configFilename), nil
}

// mergeConfigs copies the fields set in sourceConfig over targetConfig.
// Quiet is a plain bool, so the source value always wins.
func mergeConfigs(targetConfig, sourceConfig *types.Config) {
	if sourceConfig.LogLevel != "" {
		targetConfig.LogLevel = sourceConfig.LogLevel
	}
	if sourceConfig.LogFile != "" {
		targetConfig.LogFile = sourceConfig.LogFile
	}
	if sourceConfig.Retry.Attempts != 0 {
		targetConfig.Retry.Attempts = sourceConfig.Retry.Attempts
	}
	if sourceConfig.Retry.Delay != 0 {
		targetConfig.Retry.Delay = sourceConfig.Retry.Delay
	}
	targetConfig.Quiet = sourceConfig.Quiet
}
