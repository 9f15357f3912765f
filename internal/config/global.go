// Package config handles the global cite configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// GlobalConfig represents configuration stored in ~/.config/cite/config.yml.
type GlobalConfig struct {
	DefaultStyle string `yaml:"default_style,omitempty"`
	OutputFormat string `yaml:"output_format,omitempty"`
	DataDir      string `yaml:"data_dir,omitempty"`
	ImportToken  string `yaml:"import_token,omitempty"`
}

const (
	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "cite"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
	// StylesDBFile is the user style database file name under the data dir.
	StylesDBFile = "styles.db"
)

// globalConfigCache caches the loaded global config.
var globalConfigCache *GlobalConfig

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/cite/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// LoadGlobalConfig loads the global configuration file.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig() (*GlobalConfig, error) {
	if globalConfigCache != nil {
		return globalConfigCache, nil
	}

	path := GlobalConfigPath()
	if path == "" {
		return &GlobalConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &GlobalConfig{}, nil
		}
		return nil, fmt.Errorf("reading global config: %w", err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing global config: %w", err)
	}

	if cfg.DataDir != "" {
		cfg.DataDir = ExpandTilde(cfg.DataDir)
	}

	globalConfigCache = &cfg
	return &cfg, nil
}

// SaveGlobalConfig writes the global configuration file, creating the
// config directory if needed.
func SaveGlobalConfig(cfg *GlobalConfig) error {
	path := GlobalConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config path")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding global config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing global config: %w", err)
	}

	globalConfigCache = cfg
	return nil
}

// ResetGlobalConfigCache clears the cached global config.
// Useful for testing.
func ResetGlobalConfigCache() {
	globalConfigCache = nil
}

// GetDefaultStyle returns the configured default style id, or "" if unset.
func GetDefaultStyle() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.DefaultStyle
}

// GetOutputFormat returns the configured default output format, or "" if unset.
func GetOutputFormat() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.OutputFormat
}

// GetImportToken returns the configured style import token, or "" if unset.
func GetImportToken() string {
	cfg, _ := LoadGlobalConfig()
	return cfg.ImportToken
}

// DataDir returns the directory for user data such as the style database.
// Uses data_dir from config when set, otherwise XDG_DATA_HOME, defaulting
// to ~/.local/share/cite.
func DataDir() string {
	cfg, _ := LoadGlobalConfig()
	if cfg.DataDir != "" {
		return cfg.DataDir
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, GlobalConfigDir)
}

// StylesDBPath returns the path to the user style database.
func StylesDBPath() string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, StylesDBFile)
}

// ExpandTilde expands a leading ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
