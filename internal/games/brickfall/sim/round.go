package sim

// RoundState is the lifecycle of one round.
type RoundState int

const (
	RoundIdle RoundState = iota // torn down
	RoundPlaying
	RoundWon
	RoundLost
)

// String returns the state name.
func (r RoundState) String() string {
	switch r {
	case RoundIdle:
		return "idle"
	case RoundPlaying:
		return "playing"
	case RoundWon:
		return "won"
	case RoundLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the round reached a terminal state.
func (r RoundState) Over() bool {
	return r == RoundWon || r == RoundLost
}

// RunState tells whether ticks advance or wait on a level-up choice.
type RunState int

const (
	Looping RunState = iota
	LevelingUp
)

// String returns the state name.
func (r RunState) String() string {
	if r == LevelingUp {
		return "leveling_up"
	}
	return "looping"
}

// checkRound evaluates loss before win so a tick that empties both
// populations ends as Lost.
func (s *Simulation) checkRound(rep *TickReport) {
	switch {
	case s.world.Count(KindBall) == 0:
		s.round = RoundLost
	case s.world.Count(KindBlock) == 0:
		s.round = RoundWon
	default:
		return
	}

	rep.Finished = true
	s.log.Info("round over",
		"outcome", s.round,
		"score", s.score,
		"level", s.level,
		"ticks", s.tick)
}
