package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// AppName names the per-user config folder
const AppName = "input-collector"

// Replace policies for duplicate file names in the CLI
const (
	ReplaceAsk    = "ask"
	ReplaceAlways = "always"
	ReplaceNever  = "never"
)

// FileConfig holds the CLI settings read from config.toml.
// Pointer fields distinguish "not set" from false.
type FileConfig struct {
	WorkingDir     string `toml:"working_dir"`
	Overwrite      *bool  `toml:"overwrite"`
	Replace        string `toml:"replace"`
	IncludeFolders *bool  `toml:"include_folders"`
	LogLevel       string `toml:"log_level"`
}

// DefaultFileConfig returns the settings used when no file exists
func DefaultFileConfig() FileConfig {
	overwrite := false
	includeFolders := false
	return FileConfig{
		Overwrite:      &overwrite,
		Replace:        ReplaceAsk,
		IncludeFolders: &includeFolders,
		LogLevel:       "warn",
	}
}

// DefaultConfigPath returns <user config dir>/input-collector/config.toml
func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(configDir, AppName, "config.toml"), nil
}

// LoadFile reads path over the defaults. A missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	cfg := DefaultFileConfig()

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	loaded := DefaultFileConfig()
	if _, err := toml.Decode(string(content), &loaded); err != nil {
		return cfg, fmt.Errorf("error decoding TOML from %s: %w", path, err)
	}

	// Keys present but empty fall back to defaults
	if loaded.Overwrite == nil {
		loaded.Overwrite = cfg.Overwrite
	}
	if loaded.IncludeFolders == nil {
		loaded.IncludeFolders = cfg.IncludeFolders
	}
	if loaded.Replace == "" {
		loaded.Replace = cfg.Replace
	}
	if loaded.LogLevel == "" {
		loaded.LogLevel = cfg.LogLevel
	}

	if err := ValidateReplace(loaded.Replace); err != nil {
		return cfg, fmt.Errorf("config file %s: %w", path, err)
	}
	return loaded, nil
}

// ValidateReplace checks a replace policy name
func ValidateReplace(policy string) error {
	switch policy {
	case ReplaceAsk, ReplaceAlways, ReplaceNever:
		return nil
	default:
		return fmt.Errorf("invalid replace policy %q (want ask, always or never)", policy)
	}
}
