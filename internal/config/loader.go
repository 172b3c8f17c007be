package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brickfall/internal/core"
)

const brickfallFile = "brickfall.yaml"

// LoadBrickfall loads brickfall configuration.
// Search order: customPath -> ~/.brickfall/configs/brickfall.yaml -> ./configs/brickfall.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. A custom path that fails to read, parse or validate is an
// error; the other locations are skipped silently when unusable.
func LoadBrickfall(customPath string) (BrickfallConfig, error) {
	// Try custom path first
	if customPath != "" {
		path, err := core.ExpandHome(customPath)
		if err != nil {
			return DefaultBrickfallConfig(), fmt.Errorf("failed to expand config path %s: %w", customPath, err)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return DefaultBrickfallConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseBrickfall(data)
		if err != nil {
			return DefaultBrickfallConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(brickfallFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBrickfall(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", brickfallFile)); err == nil {
		if cfg, err := parseBrickfall(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBrickfall(defaultBrickfallYAML)
	if err != nil {
		return DefaultBrickfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBrickfall decodes YAML over the hardcoded defaults and validates it.
func parseBrickfall(data []byte) (BrickfallConfig, error) {
	cfg := DefaultBrickfallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file.
func userConfigPath(filename string) string {
	path, err := core.DataPath("configs", filename)
	if err != nil {
		return ""
	}
	return path
}

// ApplyBrickfallPreset modifies the config based on a difficulty preset.
// Besides the difficulty curve, easy and hard shift paddle width and the
// formation period.
func ApplyBrickfallPreset(cfg *BrickfallConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width *= 1.25
		cfg.Blocks.DescentPeriod = cfg.Blocks.DescentPeriod * 3 / 2
	case DifficultyHard:
		cfg.Paddle.Width *= 0.8
		cfg.Blocks.Health++
	}
	if cfg.Paddle.EnlargedWidth < cfg.Paddle.Width {
		cfg.Paddle.EnlargedWidth = cfg.Paddle.Width
	}
}
