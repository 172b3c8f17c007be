package sim

import "github.com/vovakirdan/brickfall/internal/core"

// paddleFallback is the bounce direction used when ball and paddle centers
// coincide.
var paddleFallback = core.V2(0, 1)

// Reflect flips the velocity component facing the struck side, but only
// while the velocity still points into the surface.
func Reflect(vel core.Vec2, side core.Side) core.Vec2 {
	switch side {
	case core.SideTop:
		if vel.Y < 0 {
			vel.Y = -vel.Y
		}
	case core.SideBottom:
		if vel.Y > 0 {
			vel.Y = -vel.Y
		}
	case core.SideRight:
		if vel.X < 0 {
			vel.X = -vel.X
		}
	case core.SideLeft:
		if vel.X > 0 {
			vel.X = -vel.X
		}
	}
	return vel
}

// PaddleBounce points the velocity from the paddle center toward the ball,
// keeping its speed.
func PaddleBounce(vel, ballPos, paddlePos core.Vec2) core.Vec2 {
	dir := ballPos.Sub(paddlePos).NormalizeOr(paddleFallback)
	return dir.Scale(vel.Len())
}

// colliders lists everything a ball can bounce off, in population order.
func (s *Simulation) colliders() []EntityID {
	out := s.world.Query(KindPaddle)
	out = append(out, s.world.Query(KindWall)...)
	return append(out, s.world.Query(KindBlock)...)
}

// resolveBallCollisions tests every collider against every ball. Each ball
// takes at most one outcome per tick: the first collider it overlaps.
func (s *Simulation) resolveBallCollisions(rep *TickReport) {
	balls := s.world.Query(KindBall)
	if len(balls) == 0 {
		return
	}
	resolved := make(map[EntityID]bool, len(balls))

nextCollider:
	for _, other := range s.colliders() {
		kind, _ := s.world.KindOf(other)
		box := s.world.Box(other)

		for _, ball := range balls {
			if resolved[ball] {
				continue
			}
			pos := s.world.Pos.MustGet(ball)
			circle := core.Circle{Center: pos, Radius: s.world.Size.MustGet(ball).X / 2}
			side := core.CollideCircleAABB(circle, box)
			if side == core.SideNone {
				continue
			}
			resolved[ball] = true
			rep.Collisions++

			vel := s.world.Vel.MustGet(ball)
			ev := CollisionEvent{Tick: s.tick, Ball: ball, Other: other, Side: side, Pos: pos}

			switch kind {
			case KindPaddle:
				s.world.Vel.Set(ball, PaddleBounce(vel, pos, box.Center()))
				ev.Impact = ImpactPaddle
				s.collisions.push(ev)

			case KindWall:
				s.world.Vel.Set(ball, Reflect(vel, side))
				ev.Impact = ImpactWall
				s.collisions.push(ev)

			case KindBlock:
				s.world.Vel.Set(ball, Reflect(vel, side))
				rep.BlocksHit++
				destroyed := s.damageBlock(other, ball, rep)
				ev.Impact = ImpactBlock
				if destroyed {
					ev.Impact = ImpactBlockDestroyed
				}
				s.collisions.push(ev)
				if destroyed {
					continue nextCollider
				}
			}
		}
	}
}

// damageBlock applies the ball's attack to a block. A block whose health
// would not stay positive is despawned and pays out score, experience and
// a powerup roll. Returns whether the block was destroyed.
func (s *Simulation) damageBlock(block, ball EntityID, rep *TickReport) bool {
	attack := s.world.Attack.MustGet(ball)
	blockPos := s.world.Pos.MustGet(block)
	ballPos := s.world.Pos.MustGet(ball)
	s.spawnDamageText(blockPos.Add(ballPos.Sub(blockPos).Scale(0.5)), attack)

	health := s.world.Health.MustGet(block)
	if health > attack {
		s.world.Health.Set(block, health-attack)
		return false
	}

	s.world.Despawn(block)
	s.score++
	s.expEvents.push(ExpGain{Amount: 1})
	rep.BlocksDestroyed++
	if s.dropPowerup(blockPos) {
		rep.PowerupsSpawned++
	}
	return true
}
