package sim

import (
	"time"

	"github.com/vovakirdan/brickfall/internal/core"
)

// spawnDamageText adds a popup showing damage dealt. It drifts up and
// fades out.
func (s *Simulation) spawnDamageText(pos core.Vec2, amount int) EntityID {
	id := s.world.Spawn(KindDamageText)
	s.world.Pos.Set(id, pos)
	s.world.Vel.Set(id, core.V2(0, s.cfg.DamageTextSpeed))
	s.world.Damage.Set(id, amount)
	s.world.Fade.Set(id, NewTimer(s.cfg.DamageTextFade, Once))
	return id
}

func (s *Simulation) fadeDamageText(dt time.Duration) {
	for _, id := range s.world.Query(KindDamageText) {
		fade := s.world.Fade.MustGet(id)
		if fade == nil {
			s.world.Despawn(id)
			continue
		}
		fade.Tick(dt)
		if fade.Finished() {
			s.world.Despawn(id)
		}
	}
}
