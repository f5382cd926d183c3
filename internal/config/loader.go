package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the environment configuration.
// Search order: customPath -> ~/.flappygym/config.yaml -> ./configs/flappygym.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.validate()
	}

	// Try user config directory
	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, cfg.validate()
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/flappygym.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, cfg.validate()
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.validate()
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappygym", filename)
}

// validate rejects configurations the simulation cannot run with.
func (c Config) validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.Screen.FPS)
	}
	if c.Pipe.MinHeight >= c.Pipe.MaxHeight {
		return fmt.Errorf("config: pipe height range [%d, %d) is empty", c.Pipe.MinHeight, c.Pipe.MaxHeight)
	}
	if c.Pipe.Speed <= 0 || c.Base.Speed <= 0 {
		return fmt.Errorf("config: scroll speeds must be positive")
	}
	if c.Reward.DistanceScale <= 0 {
		return fmt.Errorf("config: distance_scale must be positive, got %v", c.Reward.DistanceScale)
	}
	return nil
}
