package sim

import "github.com/vovakirdan/brickfall/internal/core"

// movePaddle applies the directional intent and keeps the paddle, at its
// current width, inside the walls.
func (s *Simulation) movePaddle(intent int, secs float64) {
	id, ok := s.paddle()
	if !ok {
		return
	}
	intent = core.Clamp(intent, -1, 1)

	pos := s.world.Pos.MustGet(id)
	size := s.world.Size.MustGet(id)
	limit := (s.cfg.Inner().X - size.X) / 2
	if limit < 0 {
		limit = 0
	}

	pos.X += float64(intent) * s.cfg.PaddleSpeed * secs
	pos.X = core.ClampF(pos.X, -limit, limit)
	s.world.Pos.Set(id, pos)
}

// integrate advances every moving population by velocity * dt.
func (s *Simulation) integrate(secs float64) {
	for _, kind := range [...]Kind{KindBall, KindPowerup, KindDamageText} {
		for _, id := range s.world.Query(kind) {
			vel, ok := s.world.Vel.Get(id)
			if !ok {
				continue
			}
			s.world.Pos.Set(id, s.world.Pos.MustGet(id).Add(vel.Scale(secs)))
		}
	}
}

// despawnLostBalls removes balls whose lower edge passed the bottom of the
// inner box.
func (s *Simulation) despawnLostBalls(rep *TickReport) {
	floor := -s.cfg.Inner().Y / 2
	for _, id := range s.world.Query(KindBall) {
		pos := s.world.Pos.MustGet(id)
		size := s.world.Size.MustGet(id)
		if pos.Y-size.Y/2 < floor {
			s.world.Despawn(id)
			rep.BallsLost++
		}
	}
}
