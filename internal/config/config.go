// ABOUTME: Grata configuration management with XDG paths.
// ABOUTME: Handles data directory, target days, and storage factory functions.

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/TanmayDabhade/grata/internal/kv"
	"github.com/TanmayDabhade/grata/internal/progress"
	"github.com/TanmayDabhade/grata/internal/storage"
)

// Config stores grata tool configuration.
type Config struct {
	// DataDir is the root directory for data storage: grata.db plus the
	// progress/ ledger directory live here. Supports ~ expansion for home
	// directory. Defaults to ~/.local/share/grata.
	DataDir string `json:"data_dir,omitempty"`

	// TargetDays is the completion target applied to every goal.
	// Defaults to 30.
	TargetDays int `json:"target_days,omitempty"`
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetTargetDays returns the configured completion target, defaulting to 30.
func (c *Config) GetTargetDays() int {
	if c.TargetDays <= 0 {
		return progress.DefaultTargetDays
	}
	return c.TargetDays
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage opens the goal repository in the configured data directory.
func (c *Config) OpenStorage() (storage.Repository, error) {
	return storage.Open(filepath.Join(c.GetDataDir(), "grata.db"))
}

// OpenProgressStore opens the progress ledger's KV store in the configured
// data directory.
func (c *Config) OpenProgressStore() (*kv.Store, error) {
	return kv.Open(filepath.Join(c.GetDataDir(), "progress"))
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "grata", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
