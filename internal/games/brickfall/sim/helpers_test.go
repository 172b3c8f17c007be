package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickfall/internal/core"
)

// newTestSim builds a strict simulation with the reference tuning.
func newTestSim(t *testing.T, mutate ...func(*Tuning)) *Simulation {
	t.Helper()
	tu := DefaultTuning()
	tu.Strict = true
	for _, m := range mutate {
		m(&tu)
	}
	s := New(tu, 1, nil)
	require.Equal(t, RoundPlaying, s.Round())
	return s
}

// clearKinds empties the given populations.
func clearKinds(s *Simulation, kinds ...Kind) {
	for _, k := range kinds {
		for _, id := range s.world.Query(k) {
			s.world.Despawn(id)
		}
	}
	s.world.Flush()
}

func onlyBall(t *testing.T, s *Simulation) EntityID {
	t.Helper()
	balls := s.world.Query(KindBall)
	require.Len(t, balls, 1)
	return balls[0]
}

func paddleOf(t *testing.T, s *Simulation) EntityID {
	t.Helper()
	id, _, ok := s.world.Single(KindPaddle)
	require.True(t, ok)
	return id
}

func place(s *Simulation, id EntityID, pos, vel core.Vec2) {
	s.world.Pos.Set(id, pos)
	s.world.Vel.Set(id, vel)
}
