package sim

// ExpThreshold is the experience a level must exceed to advance:
// baseCap * (1 + level*growth), truncated.
func ExpThreshold(level int, baseCap, growth float64) int {
	return int(baseCap * (1 + float64(level)*growth))
}

// Threshold returns the experience needed to leave the current level.
func (s *Simulation) Threshold() int {
	return ExpThreshold(s.level, s.cfg.ExpBaseCap, s.cfg.ExpGrowth)
}

// ExpRatio returns progress through the current level in [0, 1].
func (s *Simulation) ExpRatio() float64 {
	th := s.Threshold()
	if th <= 0 {
		return 0
	}
	r := float64(s.exp) / float64(th)
	if r > 1 {
		return 1
	}
	return r
}

// applyProgression drains this tick's experience events. Experience above
// the threshold carries over, so one batch can grant several levels.
func (s *Simulation) applyProgression(rep *TickReport) {
	events := s.expEvents.drain()
	if len(events) == 0 {
		return
	}
	for _, e := range events {
		s.exp += e.Amount
		rep.ExpGained += e.Amount
	}

	for s.cfg.MaxLevel <= 0 || s.level < s.cfg.MaxLevel {
		th := s.Threshold()
		if th <= 0 || s.exp <= th {
			break
		}
		s.exp -= th
		s.level++
		rep.LevelUps++
		s.levelUps.push(LevelUp{Tick: s.tick, Level: s.level})
		s.log.Info("level up", "level", s.level, "exp", s.exp, "next", s.Threshold())
	}

	if rep.LevelUps > 0 && s.cfg.PauseOnLevelUp {
		s.run = LevelingUp
	}
}
