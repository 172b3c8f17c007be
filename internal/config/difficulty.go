package config

import (
	"math"
	"time"
)

// minDescentFraction is the shortest formation period the curve may reach,
// as a fraction of the configured one.
const minDescentFraction = 0.25

// DifficultyManager maps round progress onto ball speed and formation
// cadence. The level starts at InitialLevel and climbs linearly to 1 as
// score or ticks approach Progression.MaxAt.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a manager for cfg.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled turns progression on or off. A disabled manager stays at the
// initial level.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled reports whether the level can move during a round.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressionNone
}

// progress returns how far along the curve the round is, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	maxAt := math.Max(float64(d.cfg.Progression.MaxAt), 1)
	switch d.cfg.Progression.Type {
	case ProgressionScore:
		return clampF(float64(score)/maxAt, 0, 1)
	case ProgressionTime:
		return clampF(float64(ticks)/maxAt, 0, 1)
	default:
		return 0
	}
}

// Level returns the difficulty in [InitialLevel, 1].
func (d *DifficultyManager) Level(score, ticks int) float64 {
	start := d.cfg.InitialLevel
	if !d.IsEnabled() {
		return start
	}
	return start + d.progress(score, ticks)*(1-start)
}

// Speed scales base up to base*(1+SpeedMultiplier) at level 1.
func (d *DifficultyManager) Speed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

// DescentPeriod shortens base by up to DescentReduction at level 1. The
// result never drops under a quarter of base.
func (d *DifficultyManager) DescentPeriod(base time.Duration, score, ticks int) time.Duration {
	cut := clampF(d.Level(score, ticks)*d.cfg.Scaling.DescentReduction, 0, 1-minDescentFraction)
	return time.Duration(float64(base) * (1 - cut))
}

func clampF(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
