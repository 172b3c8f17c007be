package sim

import (
	"time"

	"github.com/vovakirdan/brickfall/internal/core"
)

// Tuning holds every constant the simulation reads. Lengths are world
// units, speeds are units per second.
type Tuning struct {
	TickRate int // fixed ticks per second

	Playfield     core.Vec2 // outer wall-to-wall extent
	WallThickness float64

	BallSize            float64
	BallEnlargedSize    float64
	BallSpeed           float64
	BallDirection       core.Vec2
	BallStart           core.Vec2
	BallAttack          int
	BallEnlargeDuration time.Duration

	PaddleSize            core.Vec2
	PaddleEnlargedSize    core.Vec2
	PaddleStart           core.Vec2
	PaddleSpeed           float64
	PaddleEnlargeDuration time.Duration

	BlockColumns   int
	BlockRows      int // rows placed at round start
	BlockRowStride int // row slots between initial rows
	BlockPadding   float64
	BlockHeight    float64
	BlockHealth    int
	DescentPeriod  time.Duration
	RespawnEvery   int // a new row is added every Nth descent

	PowerupSize      core.Vec2
	PowerupFallSpeed float64
	PowerupChance    [PowerupClassCount]float64

	ExpBaseCap float64
	ExpGrowth  float64
	MaxLevel   int

	DamageTextSpeed float64
	DamageTextFade  time.Duration

	PauseOnLevelUp bool

	// Strict turns invariant violations into panics instead of logged no-ops.
	Strict bool
}

// DefaultTuning returns the reference balance.
func DefaultTuning() Tuning {
	return Tuning{
		TickRate: 60,

		Playfield:     core.V2(1200, 600),
		WallThickness: 30,

		BallSize:            30,
		BallEnlargedSize:    60,
		BallSpeed:           400,
		BallDirection:       core.V2(0.5, -0.5),
		BallStart:           core.V2(-70, 1),
		BallAttack:          1,
		BallEnlargeDuration: 10 * time.Second,

		PaddleSize:            core.V2(120, 20),
		PaddleEnlargedSize:    core.V2(240, 20),
		PaddleStart:           core.V2(0, -250),
		PaddleSpeed:           500,
		PaddleEnlargeDuration: 10 * time.Second,

		BlockColumns:   12,
		BlockRows:      5,
		BlockRowStride: 2,
		BlockPadding:   5,
		BlockHeight:    25,
		BlockHealth:    1,
		DescentPeriod:  10 * time.Second,
		RespawnEvery:   2,

		PowerupSize:      core.V2(15, 15),
		PowerupFallSpeed: 50,
		PowerupChance:    [PowerupClassCount]float64{0.2, 0.2, 0.2},

		ExpBaseCap: 50,
		ExpGrowth:  1.5,
		MaxLevel:   99,

		DamageTextSpeed: 40,
		DamageTextFade:  time.Second,
	}
}

// Step returns the fixed tick length.
func (t Tuning) Step() time.Duration {
	if t.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(t.TickRate)
}

// Inner returns the size of the playable box inside the walls.
func (t Tuning) Inner() core.Vec2 {
	return core.V2(t.Playfield.X-t.WallThickness, t.Playfield.Y-t.WallThickness)
}

// BlockSize returns the size of one block so that BlockColumns blocks and
// their padding fill the inner width.
func (t Tuning) BlockSize() core.Vec2 {
	cols := t.BlockColumns
	if cols <= 0 {
		cols = 1
	}
	w := (t.Playfield.X-t.WallThickness-t.BlockPadding)/float64(cols) - t.BlockPadding
	return core.V2(w, t.BlockHeight)
}

// BlockPosition returns the center of the block at a column and row slot.
// Slot 0 is the top of the formation.
func (t Tuning) BlockPosition(col, slot int) core.Vec2 {
	size := t.BlockSize()
	inner := t.Inner()
	pos := core.V2(
		float64(col)*(size.X+t.BlockPadding),
		-float64(slot)*(size.Y+t.BlockPadding),
	)
	origin := core.V2(
		-inner.X/2+size.X/2+t.BlockPadding,
		inner.Y/2-(size.Y/2+t.BlockPadding),
	)
	return pos.Add(origin)
}

// BallVelocity returns the launch velocity of the first ball.
func (t Tuning) BallVelocity() core.Vec2 {
	return t.BallDirection.Scale(t.BallSpeed)
}
