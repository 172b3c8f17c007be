package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chase steers the paddle toward the lowest ball.
func chase(snap Snapshot) int {
	if len(snap.Balls) == 0 || !snap.HasPaddle {
		return 0
	}
	low := snap.Balls[0]
	for _, b := range snap.Balls[1:] {
		if b.Pos.Y < low.Pos.Y {
			low = b
		}
	}
	switch dx := low.Pos.X - snap.Paddle.Pos.X; {
	case dx > 10:
		return 1
	case dx < -10:
		return -1
	default:
		return 0
	}
}

func TestDeterminism(t *testing.T) {
	const ticks = 3000

	run := func(seed uint64) []uint64 {
		s := New(DefaultTuning(), seed, nil)
		var hashes []uint64
		for i := 0; i < ticks && !s.Round().Over(); i++ {
			snap := s.Snapshot()
			s.Step(chase(snap))
			if i%100 == 0 {
				after := s.Snapshot()
				hashes = append(hashes, after.Hash())
			}
		}
		return hashes
	}

	a := run(42)
	b := run(42)
	require.NotEmpty(t, a)
	assert.Equal(t, a, b, "same seed must give the same run")
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestSim(t)
	snap := s.Snapshot()
	require.Len(t, snap.Balls, 1)
	require.True(t, snap.HasPaddle)
	assert.Len(t, snap.Walls, 4)
	assert.Len(t, snap.Blocks, 60)
	assert.Equal(t, 50, snap.Threshold)
	assert.Equal(t, s.cfg.BallVelocity(), snap.Balls[0].Vel)

	snap.Balls[0].Pos.X = 9999
	snap.Blocks[0].Health = 0
	again := s.Snapshot()
	assert.NotEqual(t, 9999.0, again.Balls[0].Pos.X)
	assert.Equal(t, 1, again.Blocks[0].Health)

	h := again.Hash()
	s.Step(0)
	next := s.Snapshot()
	assert.NotEqual(t, h, next.Hash(), "state moved on")
}

func TestBoundsMatchInnerBox(t *testing.T) {
	s := newTestSim(t)
	snap := s.Snapshot()
	assert.Equal(t, -585.0, snap.Bounds.Min.X)
	assert.Equal(t, 285.0, snap.Bounds.Max.Y)
}
