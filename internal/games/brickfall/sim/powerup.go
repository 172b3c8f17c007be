package sim

import (
	"time"

	"github.com/vovakirdan/brickfall/internal/core"
)

// PowerupClass is the effect a falling pickup grants.
type PowerupClass int

const (
	DuplicateBall PowerupClass = iota
	EnlargeBall
	EnlargePaddle
	PowerupClassCount // sentinel
)

// String returns the class name.
func (p PowerupClass) String() string {
	switch p {
	case DuplicateBall:
		return "DuplicateBall"
	case EnlargeBall:
		return "EnlargeBall"
	case EnlargePaddle:
		return "EnlargePaddle"
	default:
		return "?"
	}
}

// rollPowerup picks a class uniformly, then accepts it with that class's
// chance. Both draws are always taken so the RNG stream does not depend on
// the outcome.
func (s *Simulation) rollPowerup() (PowerupClass, bool) {
	class := PowerupClass(s.rng.IntN(int(PowerupClassCount)))
	roll := s.rng.Float64()
	if roll < s.cfg.PowerupChance[class] {
		return class, true
	}
	return 0, false
}

// dropPowerup rolls for a pickup at pos and spawns it on success.
func (s *Simulation) dropPowerup(pos core.Vec2) bool {
	class, ok := s.rollPowerup()
	if !ok {
		return false
	}
	s.spawnPowerup(pos, class)
	return true
}

func (s *Simulation) spawnPowerup(pos core.Vec2, class PowerupClass) EntityID {
	id := s.world.Spawn(KindPowerup)
	s.world.Pos.Set(id, pos)
	s.world.Vel.Set(id, core.V2(0, -s.cfg.PowerupFallSpeed))
	s.world.Size.Set(id, s.cfg.PowerupSize)
	s.world.Powerup.Set(id, class)
	return id
}

// resolvePowerups drops pickups that fell out of the box and applies the
// ones touching the paddle.
func (s *Simulation) resolvePowerups(rep *TickReport) {
	powerups := s.world.Query(KindPowerup)
	if len(powerups) == 0 {
		return
	}
	paddle, ok := s.paddle()
	if !ok {
		return
	}
	floor := -s.cfg.Inner().Y / 2

	for _, id := range powerups {
		if s.world.Pos.MustGet(id).Y < floor {
			s.world.Despawn(id)
			rep.PowerupsMissed++
			continue
		}
		if core.CollideAABB(s.world.Box(id), s.world.Box(paddle)) == core.SideNone {
			continue
		}
		class := s.world.Powerup.MustGet(id)
		s.applyPowerup(class, paddle)
		s.world.Despawn(id)
		rep.Pickups = append(rep.Pickups, class)
	}
}

func (s *Simulation) applyPowerup(class PowerupClass, paddle EntityID) {
	switch class {
	case DuplicateBall:
		s.duplicateBalls()
	case EnlargeBall:
		s.enlargeBalls()
	case EnlargePaddle:
		s.enlargePaddle(paddle)
	}
}

// duplicateBalls mirrors every ball in play: same position, negated
// velocity. Balls already lost this tick are left out.
func (s *Simulation) duplicateBalls() {
	balls := append(s.world.Query(KindBall), s.world.Pending(KindBall)...)
	for _, id := range balls {
		vel := s.world.Vel.MustGet(id)
		s.spawnBall(
			s.world.Pos.MustGet(id),
			vel.Neg(),
			s.world.Size.MustGet(id).X,
			s.world.Attack.MustGet(id),
		)
	}
}

// enlargeBalls grows every ball and (re)starts the single ball countdown.
func (s *Simulation) enlargeBalls() {
	s.resizeBalls(s.cfg.BallEnlargedSize)
	s.ballTimer = s.restartEffect(s.ballTimer, s.cfg.BallEnlargeDuration)
}

// enlargePaddle grows the paddle and (re)starts the single paddle countdown.
func (s *Simulation) enlargePaddle(paddle EntityID) {
	s.world.Size.Set(paddle, s.cfg.PaddleEnlargedSize)
	s.paddleTimer = s.restartEffect(s.paddleTimer, s.cfg.PaddleEnlargeDuration)
}

// restartEffect rewinds an active countdown instead of adding a second one.
func (s *Simulation) restartEffect(t *Timer, d time.Duration) *Timer {
	if t == nil {
		return NewTimer(d, Once)
	}
	t.Reset()
	return t
}

func (s *Simulation) resizeBalls(size float64) {
	balls := append(s.world.Query(KindBall), s.world.Pending(KindBall)...)
	for _, id := range balls {
		s.world.Size.Set(id, core.V2(size, size))
	}
}

// expireEffects ticks the active countdowns and reverts sizes on expiry.
func (s *Simulation) expireEffects(dt time.Duration, rep *TickReport) {
	if s.ballTimer != nil {
		s.ballTimer.Tick(dt)
		if s.ballTimer.Finished() {
			s.resizeBalls(s.cfg.BallSize)
			s.ballTimer = nil
			rep.EffectsExpired++
		}
	}

	if s.paddleTimer != nil {
		s.paddleTimer.Tick(dt)
		if s.paddleTimer.Finished() {
			if paddle, ok := s.paddle(); ok {
				s.world.Size.Set(paddle, s.cfg.PaddleSize)
			}
			s.paddleTimer = nil
			rep.EffectsExpired++
		}
	}
}

// BallEffectRemaining returns time left on the ball enlargement, or zero.
func (s *Simulation) BallEffectRemaining() time.Duration {
	if s.ballTimer == nil {
		return 0
	}
	return s.ballTimer.Remaining()
}

// PaddleEffectRemaining returns time left on the paddle enlargement, or zero.
func (s *Simulation) PaddleEffectRemaining() time.Duration {
	if s.paddleTimer == nil {
		return 0
	}
	return s.paddleTimer.Remaining()
}
