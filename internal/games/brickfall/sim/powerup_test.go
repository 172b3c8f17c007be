package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/brickfall/internal/core"
)

func TestDuplicateBallDoublesPopulation(t *testing.T) {
	s := newTestSim(t)
	clearKinds(s, KindBall)

	vels := []core.Vec2{core.V2(200, -200), core.V2(-50, 120), core.V2(0, 300)}
	for i, v := range vels {
		s.spawnBall(core.V2(float64(i*100), 0), v, 30, 1)
	}
	s.world.Flush()
	originals := s.world.Query(KindBall)

	s.applyPowerup(DuplicateBall, paddleOf(t, s))
	s.world.Flush()

	balls := s.world.Query(KindBall)
	require.Len(t, balls, 2*len(vels))
	for i, id := range originals {
		assert.Equal(t, vels[i], s.world.Vel.MustGet(id), "original velocity unchanged")

		dup := balls[len(vels)+i]
		assert.Equal(t, s.world.Pos.MustGet(id), s.world.Pos.MustGet(dup))
		assert.Equal(t, vels[i].Neg(), s.world.Vel.MustGet(dup))
		assert.Equal(t, s.world.Size.MustGet(id), s.world.Size.MustGet(dup))
	}
}

func TestDuplicateBallSkipsLostBalls(t *testing.T) {
	s := newTestSim(t)
	ball := onlyBall(t, s)
	extra := s.spawnBall(core.V2(0, 0), core.V2(1, 1), 30, 1)
	s.world.Flush()

	s.world.Despawn(extra)
	s.duplicateBalls()
	s.world.Flush()

	balls := s.world.Query(KindBall)
	require.Len(t, balls, 2)
	assert.Equal(t, ball, balls[0])
}

func TestEnlargeBallSingleCountdown(t *testing.T) {
	s := newTestSim(t)
	ball := onlyBall(t, s)
	paddle := paddleOf(t, s)
	nominal := core.V2(s.cfg.BallSize, s.cfg.BallSize)
	enlarged := core.V2(s.cfg.BallEnlargedSize, s.cfg.BallEnlargedSize)

	s.applyPowerup(EnlargeBall, paddle)
	first := s.ballTimer
	require.NotNil(t, first)
	assert.Equal(t, enlarged, s.world.Size.MustGet(ball))

	var rep TickReport
	s.expireEffects(4*time.Second, &rep)

	s.applyPowerup(EnlargeBall, paddle)
	assert.Same(t, first, s.ballTimer, "re-collecting reuses the countdown")
	assert.Equal(t, 10*time.Second, s.BallEffectRemaining(), "countdown restarted, not extended")

	reverts := 0
	for _, dt := range []time.Duration{6 * time.Second, 3900 * time.Millisecond, 100 * time.Millisecond, time.Second} {
		rep = TickReport{}
		s.expireEffects(dt, &rep)
		reverts += rep.EffectsExpired
		if s.ballTimer != nil {
			assert.Equal(t, enlarged, s.world.Size.MustGet(ball))
		}
	}

	assert.Equal(t, 1, reverts, "exactly one expiry")
	assert.Nil(t, s.ballTimer)
	assert.Equal(t, nominal, s.world.Size.MustGet(ball))
	assert.Equal(t, time.Duration(0), s.BallEffectRemaining())
}

func TestEnlargeBallCoversSameTickDuplicates(t *testing.T) {
	s := newTestSim(t)
	paddle := paddleOf(t, s)

	s.applyPowerup(DuplicateBall, paddle)
	s.applyPowerup(EnlargeBall, paddle)
	s.world.Flush()

	for _, id := range s.world.Query(KindBall) {
		assert.Equal(t, s.cfg.BallEnlargedSize, s.world.Size.MustGet(id).X)
	}
}

func TestEnlargePaddleAndRevert(t *testing.T) {
	s := newTestSim(t)
	paddle := paddleOf(t, s)

	s.applyPowerup(EnlargePaddle, paddle)
	assert.Equal(t, s.cfg.PaddleEnlargedSize, s.world.Size.MustGet(paddle))

	// clamp uses the current width
	for range 200 {
		s.movePaddle(1, 1.0/60)
	}
	inner := s.cfg.Inner().X
	assert.InDelta(t, (inner-s.cfg.PaddleEnlargedSize.X)/2, s.world.Pos.MustGet(paddle).X, 1e-9)

	var rep TickReport
	s.expireEffects(s.cfg.PaddleEnlargeDuration, &rep)
	assert.Equal(t, 1, rep.EffectsExpired)
	assert.Equal(t, s.cfg.PaddleSize, s.world.Size.MustGet(paddle))
	assert.Nil(t, s.paddleTimer)
}

func TestPowerupPickupOnPaddle(t *testing.T) {
	s := newTestSim(t)
	paddle := paddleOf(t, s)
	pp := s.world.Pos.MustGet(paddle)

	pickup := s.spawnPowerup(pp.Add(core.V2(0, 12)), EnlargePaddle)
	s.world.Flush()

	rep := s.Step(0)
	assert.Equal(t, []PowerupClass{EnlargePaddle}, rep.Pickups)
	assert.False(t, s.world.Alive(pickup))
	assert.Equal(t, 0, s.world.Count(KindPowerup))
	assert.Equal(t, s.cfg.PaddleEnlargedSize, s.world.Size.MustGet(paddle))
	assert.True(t, s.PaddleEffectRemaining() > 0)
}

func TestPowerupFallsOutOfBounds(t *testing.T) {
	s := newTestSim(t)
	floor := -s.cfg.Inner().Y / 2

	pickup := s.spawnPowerup(core.V2(300, floor+0.1), DuplicateBall)
	s.world.Flush()

	rep := s.Step(0)
	assert.Equal(t, 1, rep.PowerupsMissed)
	assert.Empty(t, rep.Pickups)
	assert.False(t, s.world.Alive(pickup))
	assert.Equal(t, 1, s.world.Count(KindBall), "missed pickup has no effect")
}

func TestPowerupSpawnRate(t *testing.T) {
	const trials = 300_000

	t.Run("per class", func(t *testing.T) {
		s := newTestSim(t)
		var counts [PowerupClassCount]int
		for range trials {
			if class, ok := s.rollPowerup(); ok {
				counts[class]++
			}
		}
		total := 0
		for class, n := range counts {
			rate := float64(n) / trials
			assert.InDelta(t, 0.2/3, rate, 0.004, "class %v", PowerupClass(class))
			total += n
		}
		assert.InDelta(t, 0.2, float64(total)/trials, 0.005)
	})

	t.Run("single enabled class", func(t *testing.T) {
		s := newTestSim(t, func(tu *Tuning) {
			tu.PowerupChance = [PowerupClassCount]float64{0.2, 0, 0}
		})
		spawned := 0
		for range trials {
			if class, ok := s.rollPowerup(); ok {
				require.Equal(t, DuplicateBall, class)
				spawned++
			}
		}
		assert.InDelta(t, 0.2/3, float64(spawned)/trials, 0.004)
	})
}
