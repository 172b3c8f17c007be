package brickfall

import (
	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/games/brickfall/sim"
)

// tuningFrom converts a loaded config into simulation constants.
func tuningFrom(cfg config.BrickfallConfig, tickRate int) sim.Tuning {
	vec := func(v config.Vec) core.Vec2 { return core.V2(v.X, v.Y) }

	t := sim.DefaultTuning()
	if tickRate > 0 {
		t.TickRate = tickRate
	}

	t.Playfield = core.V2(cfg.Playfield.Width, cfg.Playfield.Height)
	t.WallThickness = cfg.Playfield.WallThickness

	t.BallSize = cfg.Ball.Size
	t.BallEnlargedSize = cfg.Ball.EnlargedSize
	t.BallSpeed = cfg.Ball.Speed
	t.BallDirection = vec(cfg.Ball.Direction)
	t.BallStart = vec(cfg.Ball.Start)
	t.BallAttack = cfg.Ball.Attack
	t.BallEnlargeDuration = cfg.Ball.EnlargeDuration

	t.PaddleSize = core.V2(cfg.Paddle.Width, cfg.Paddle.Height)
	t.PaddleEnlargedSize = core.V2(cfg.Paddle.EnlargedWidth, cfg.Paddle.Height)
	t.PaddleStart = vec(cfg.Paddle.Start)
	t.PaddleSpeed = cfg.Paddle.Speed
	t.PaddleEnlargeDuration = cfg.Paddle.EnlargeDuration

	t.BlockColumns = cfg.Blocks.Columns
	t.BlockRows = cfg.Blocks.Rows
	t.BlockRowStride = cfg.Blocks.RowStride
	t.BlockPadding = cfg.Blocks.Padding
	t.BlockHeight = cfg.Blocks.Height
	t.BlockHealth = cfg.Blocks.Health
	t.DescentPeriod = cfg.Blocks.DescentPeriod
	t.RespawnEvery = cfg.Blocks.RespawnEvery

	t.PowerupSize = core.V2(cfg.Powerups.Size, cfg.Powerups.Size)
	t.PowerupFallSpeed = cfg.Powerups.FallSpeed
	t.PowerupChance[sim.DuplicateBall] = cfg.Powerups.DuplicateBallChance
	t.PowerupChance[sim.EnlargeBall] = cfg.Powerups.EnlargeBallChance
	t.PowerupChance[sim.EnlargePaddle] = cfg.Powerups.EnlargePaddleChance

	t.ExpBaseCap = cfg.Progression.BaseCap
	t.ExpGrowth = cfg.Progression.Growth
	t.MaxLevel = cfg.Progression.MaxLevel

	t.PauseOnLevelUp = cfg.Gameplay.PauseOnLevelUp
	t.DamageTextSpeed = cfg.Gameplay.DamageTextSpeed
	t.DamageTextFade = cfg.Gameplay.DamageTextFade

	return t
}
