package sim

import (
	"time"

	"github.com/vovakirdan/brickfall/internal/core"
)

// spawnFormation places the initial rows on every BlockRowStride-th slot.
func (s *Simulation) spawnFormation() {
	stride := s.cfg.BlockRowStride
	if stride < 1 {
		stride = 1
	}
	for col := 0; col < s.cfg.BlockColumns; col++ {
		for row := 0; row < s.cfg.BlockRows; row++ {
			s.spawnBlock(s.cfg.BlockPosition(col, row*stride), s.cfg.BlockHealth)
		}
	}
}

// spawnRow appends a full-health row at the top slot.
func (s *Simulation) spawnRow() {
	for col := 0; col < s.cfg.BlockColumns; col++ {
		s.spawnBlock(s.cfg.BlockPosition(col, 0), s.cfg.BlockHealth)
	}
}

func (s *Simulation) spawnBlock(pos core.Vec2, health int) EntityID {
	id := s.world.Spawn(KindBlock)
	s.world.Pos.Set(id, pos)
	s.world.Size.Set(id, s.cfg.BlockSize())
	s.world.Health.Set(id, health)
	return id
}

// advanceFormation ticks the descent timer. Each firing shifts every block
// down one row pitch, and every RespawnEvery-th firing adds a new top row.
func (s *Simulation) advanceFormation(dt time.Duration, rep *TickReport) {
	if s.descent == nil {
		return
	}
	s.descent.Tick(dt)

	pitch := s.cfg.BlockHeight + s.cfg.BlockPadding
	for i := 0; i < s.descent.TimesFinishedThisTick(); i++ {
		blocks := append(s.world.Query(KindBlock), s.world.Pending(KindBlock)...)
		for _, id := range blocks {
			pos := s.world.Pos.MustGet(id)
			pos.Y -= pitch
			s.world.Pos.Set(id, pos)
		}
		rep.Descents++

		s.descents++
		if s.cfg.RespawnEvery > 0 {
			s.descents %= s.cfg.RespawnEvery
		}
		if s.descents == 0 {
			s.spawnRow()
			rep.RowsAdded++
		}
	}
}

// SetDescentPeriod retunes the formation timer for the current round only.
// Restart goes back to the tuned period. Non-positive periods are ignored.
func (s *Simulation) SetDescentPeriod(d time.Duration) {
	if d <= 0 || s.descent == nil || s.descent.Duration() == d {
		return
	}
	s.descent.SetDuration(d)
}

// DescentPeriod returns the active formation period.
func (s *Simulation) DescentPeriod() time.Duration {
	if s.descent == nil {
		return s.cfg.DescentPeriod
	}
	return s.descent.Duration()
}

// NextDescent returns the time until the formation moves again.
func (s *Simulation) NextDescent() time.Duration {
	if s.descent == nil {
		return 0
	}
	return s.descent.Remaining()
}
