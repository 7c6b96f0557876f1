package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the arena configuration.
// Search order: customPath -> ~/.nbol/configs/nbol.yaml -> ./configs/nbol.yaml -> embedded default.
// Files are decoded on top of the defaults, so a file only needs the keys it changes.
func Load(customPath string) (NbolConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (NbolConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultNbolConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("nbol.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "nbol.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultNbolYAML)
	if err != nil {
		return DefaultNbolConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the default configuration.
func Parse(data []byte) (NbolConfig, error) {
	cfg := DefaultNbolConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultNbolConfig(), err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg NbolConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".nbol", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *NbolConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust base stats based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Health *= 1.5
		cfg.Enemy.Count = max(1, cfg.Enemy.Count-4)
		cfg.Enemy.Damage *= 0.5
	case DifficultyHard:
		cfg.Enemy.Count += 4
		cfg.Enemy.Speed *= 1.25
		cfg.Enemy.Damage *= 1.5
		cfg.Enemy.AggroRange *= 1.2
	}
}
