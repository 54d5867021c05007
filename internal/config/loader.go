package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the session configuration.
// Search order: customPath -> ~/.pusher/config.yaml -> ./configs/pusher.yaml -> embedded default
// Files are overlaid on the defaults, so a partial file only changes the keys it sets.
func Load(customPath string) (GameConfig, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports which file supplied the values.
func LoadWithSource(customPath string) (GameConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Default(), "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, userCfgPath, cfg.Validate()
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "pusher.yaml")
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, local, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPusherYAML)
	if err != nil {
		return Default(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", cfg.Validate()
}

// parse overlays data on the hard-coded defaults.
func parse(data []byte) (GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pusher", filename)
}
