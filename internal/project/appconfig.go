// Package project persists user-level application data under
// ~/.spritepack.
package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/SpritePack/internal/model"
)

// DefaultConfigPath returns the default file path for the app config.
// This is located at ~/.spritepack/config.json.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".spritepack", "config.json"), nil
}

// SaveAppConfig writes the config to the specified JSON file, creating
// parent directories if they do not exist.
func SaveAppConfig(path string, cfg model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads the config from the specified JSON file. If the
// file does not exist, it returns the defaults and saves them.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := model.DefaultAppConfig()
			if saveErr := SaveAppConfig(path, cfg); saveErr != nil {
				return cfg, saveErr
			}
			return cfg, nil
		}
		return model.AppConfig{}, err
	}
	var cfg model.AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.AppConfig{}, err
	}
	// Ensure RecentOutputs is never nil
	if cfg.RecentOutputs == nil {
		cfg.RecentOutputs = []string{}
	}
	return cfg, nil
}

// LoadOrCreateAppConfig loads the config from the default path, creating
// it with defaults if missing.
func LoadOrCreateAppConfig() (model.AppConfig, string, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return model.DefaultAppConfig(), "", err
	}
	cfg, err := LoadAppConfig(path)
	return cfg, path, err
}
