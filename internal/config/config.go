// Package config provides YAML-based game configuration loading and
// difficulty management for brickfall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BrickfallConfig contains all configuration for brickfall.
type BrickfallConfig struct {
	Playfield   BrickfallPlayfield   `yaml:"playfield"`
	Ball        BrickfallBall        `yaml:"ball"`
	Paddle      BrickfallPaddle      `yaml:"paddle"`
	Blocks      BrickfallBlocks      `yaml:"blocks"`
	Powerups    BrickfallPowerups    `yaml:"powerups"`
	Progression BrickfallProgression `yaml:"progression"`
	Gameplay    BrickfallGameplay    `yaml:"gameplay"`
	Difficulty  DifficultyConfig     `yaml:"difficulty"`
}

// Vec is a pair of world-space coordinates.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// BrickfallPlayfield defines the walled arena. World units, origin at center.
type BrickfallPlayfield struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// BrickfallBall defines the ball.
type BrickfallBall struct {
	Size            float64       `yaml:"size"`
	EnlargedSize    float64       `yaml:"enlarged_size"`
	Speed           float64       `yaml:"speed"`
	Direction       Vec           `yaml:"direction"`
	Start           Vec           `yaml:"start"`
	Attack          int           `yaml:"attack"`
	EnlargeDuration time.Duration `yaml:"enlarge_duration"`
}

// BrickfallPaddle defines the paddle.
type BrickfallPaddle struct {
	Width           float64       `yaml:"width"`
	Height          float64       `yaml:"height"`
	EnlargedWidth   float64       `yaml:"enlarged_width"`
	Start           Vec           `yaml:"start"`
	Speed           float64       `yaml:"speed"`
	EnlargeDuration time.Duration `yaml:"enlarge_duration"`
}

// BrickfallBlocks defines the block formation and its descent.
type BrickfallBlocks struct {
	Columns       int           `yaml:"columns"`
	Rows          int           `yaml:"rows"`
	RowStride     int           `yaml:"row_stride"` // row slots between initial rows
	Padding       float64       `yaml:"padding"`
	Height        float64       `yaml:"height"`
	Health        int           `yaml:"health"`
	DescentPeriod time.Duration `yaml:"descent_period"`
	RespawnEvery  int           `yaml:"respawn_every"` // new row every Nth descent, 0 disables
}

// BrickfallPowerups defines falling pickups.
type BrickfallPowerups struct {
	Size                float64 `yaml:"size"`
	FallSpeed           float64 `yaml:"fall_speed"`
	DuplicateBallChance float64 `yaml:"duplicate_ball_chance"`
	EnlargeBallChance   float64 `yaml:"enlarge_ball_chance"`
	EnlargePaddleChance float64 `yaml:"enlarge_paddle_chance"`
}

// BrickfallProgression defines experience thresholds.
type BrickfallProgression struct {
	BaseCap  float64 `yaml:"base_cap"`
	Growth   float64 `yaml:"growth"`
	MaxLevel int     `yaml:"max_level"`
}

// BrickfallGameplay holds round behavior toggles.
type BrickfallGameplay struct {
	PauseOnLevelUp  bool          `yaml:"pause_on_level_up"`
	DamageTextSpeed float64       `yaml:"damage_text_speed"`
	DamageTextFade  time.Duration `yaml:"damage_text_fade"`
}

// Validate reports every field that would make the simulation misbehave.
func (c BrickfallConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	p := c.Playfield
	check(p.Width > 0 && p.Height > 0, "playfield size must be positive, got %gx%g", p.Width, p.Height)
	check(p.WallThickness >= 0, "playfield.wall_thickness must not be negative")
	check(p.WallThickness < p.Width && p.WallThickness < p.Height, "playfield.wall_thickness leaves no room to play")

	b := c.Ball
	check(b.Size > 0 && b.EnlargedSize > 0, "ball sizes must be positive")
	check(b.Speed > 0, "ball.speed must be positive")
	check(b.Direction.X != 0 || b.Direction.Y != 0, "ball.direction must not be zero")
	check(b.Attack >= 1, "ball.attack must be at least 1")
	check(b.EnlargeDuration > 0, "ball.enlarge_duration must be positive")

	pd := c.Paddle
	check(pd.Width > 0 && pd.Height > 0 && pd.EnlargedWidth > 0, "paddle sizes must be positive")
	check(pd.Speed > 0, "paddle.speed must be positive")
	check(pd.EnlargeDuration > 0, "paddle.enlarge_duration must be positive")

	bl := c.Blocks
	check(bl.Columns >= 1 && bl.Rows >= 1, "blocks need at least one column and row")
	check(bl.RowStride >= 1, "blocks.row_stride must be at least 1")
	check(bl.Padding >= 0, "blocks.padding must not be negative")
	check(bl.Height > 0, "blocks.height must be positive")
	check(bl.Health >= 1, "blocks.health must be at least 1")
	check(bl.DescentPeriod > 0, "blocks.descent_period must be positive")
	check(bl.RespawnEvery >= 0, "blocks.respawn_every must not be negative")
	if p.Width > 0 && bl.Columns >= 1 {
		w := (p.Width-p.WallThickness-bl.Padding)/float64(bl.Columns) - bl.Padding
		check(w > 0, "blocks do not fit: %d columns leave width %g", bl.Columns, w)
	}

	pu := c.Powerups
	check(pu.Size > 0, "powerups.size must be positive")
	check(pu.FallSpeed > 0, "powerups.fall_speed must be positive")
	chances := []struct {
		name  string
		value float64
	}{
		{"duplicate_ball_chance", pu.DuplicateBallChance},
		{"enlarge_ball_chance", pu.EnlargeBallChance},
		{"enlarge_paddle_chance", pu.EnlargePaddleChance},
	}
	for _, ch := range chances {
		check(ch.value >= 0 && ch.value <= 1, "powerups.%s must be within [0, 1], got %g", ch.name, ch.value)
	}

	pr := c.Progression
	check(pr.BaseCap > 0, "progression.base_cap must be positive")
	check(pr.Growth >= 0, "progression.growth must not be negative")
	check(pr.MaxLevel >= 0, "progression.max_level must not be negative")

	check(c.Gameplay.DamageTextFade >= 0, "gameplay.damage_text_fade must not be negative")

	d := c.Difficulty
	switch d.Progression.Type {
	case ProgressionScore, ProgressionTime, ProgressionNone:
	default:
		check(false, "difficulty.progression.type must be score, time or none, got %q", d.Progression.Type)
	}
	check(d.InitialLevel >= 0 && d.InitialLevel <= 1, "difficulty.initial_level must be within [0, 1]")

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid brickfall config: %w", errors.Join(errs...))
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionType selects what drives the difficulty curve.
type ProgressionType string

const (
	ProgressionScore ProgressionType = "score" // blocks destroyed this round
	ProgressionTime  ProgressionType = "time"  // ticks elapsed this round
	ProgressionNone  ProgressionType = "none"
)

// ProgressionConfig defines how difficulty increases during a round.
type ProgressionConfig struct {
	Type  ProgressionType `yaml:"type"`
	MaxAt int             `yaml:"max_at"` // Score or ticks at which the curve tops out
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to ball speed at max difficulty
	DescentReduction float64 `yaml:"descent_reduction"` // Fraction of the descent period removed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. Empty selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}
