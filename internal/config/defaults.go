package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/brickfall.yaml
var defaultBrickfallYAML []byte

// DefaultBrickfallConfig returns the default brickfall configuration.
func DefaultBrickfallConfig() BrickfallConfig {
	return BrickfallConfig{
		Playfield: BrickfallPlayfield{
			Width:         1200,
			Height:        600,
			WallThickness: 30,
		},
		Ball: BrickfallBall{
			Size:            30,
			EnlargedSize:    60,
			Speed:           400,
			Direction:       Vec{X: 0.5, Y: -0.5},
			Start:           Vec{X: -70, Y: 1},
			Attack:          1,
			EnlargeDuration: 10 * time.Second,
		},
		Paddle: BrickfallPaddle{
			Width:           120,
			Height:          20,
			EnlargedWidth:   240,
			Start:           Vec{X: 0, Y: -250},
			Speed:           500,
			EnlargeDuration: 10 * time.Second,
		},
		Blocks: BrickfallBlocks{
			Columns:       12,
			Rows:          5,
			RowStride:     2,
			Padding:       5,
			Height:        25,
			Health:        1,
			DescentPeriod: 10 * time.Second,
			RespawnEvery:  2,
		},
		Powerups: BrickfallPowerups{
			Size:                15,
			FallSpeed:           50,
			DuplicateBallChance: 0.2,
			EnlargeBallChance:   0.2,
			EnlargePaddleChance: 0.2,
		},
		Progression: BrickfallProgression{
			BaseCap:  50,
			Growth:   1.5,
			MaxLevel: 99,
		},
		Gameplay: BrickfallGameplay{
			PauseOnLevelUp:  true,
			DamageTextSpeed: 40,
			DamageTextFade:  time.Second,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressionScore,
				MaxAt: 120,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.5,
				DescentReduction: 0.5,
			},
		},
	}
}

// ApplyRush turns a config into the rush variant: every descent adds a row
// and the formation moves twice as often.
func ApplyRush(cfg *BrickfallConfig) {
	cfg.Blocks.RespawnEvery = 1
	cfg.Blocks.DescentPeriod /= 2
	cfg.Gameplay.PauseOnLevelUp = false
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "brickfall", "brickfall_rush":
		return defaultBrickfallYAML
	default:
		return nil
	}
}
