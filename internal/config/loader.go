package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadInvaders loads the invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
//
// Files only need to name the fields they change; everything else keeps
// its default value.
func LoadInvaders(customPath string) (InvadersConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseInvaders(data)
		if err != nil {
			return InvadersConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("invaders.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseInvaders(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "invaders.yaml")); err == nil {
		if cfg, err := parseInvaders(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg InvadersConfig
	if err := yaml.Unmarshal(defaultInvadersYAML, &cfg); err != nil {
		return DefaultInvadersConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseInvaders decodes data over the hardcoded defaults. A level list in
// data replaces the default list rather than merging with it.
func parseInvaders(data []byte) (InvadersConfig, error) {
	cfg := DefaultInvadersConfig()
	cfg.Levels = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvadersConfig{}, err
	}
	if len(cfg.Levels) == 0 {
		cfg.Levels = DefaultInvadersConfig().Levels
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
