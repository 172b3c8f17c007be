// Package sim is the fixed-step brickfall simulation: entity arena, motion,
// collision resolution, powerup effects, block formation, progression and
// round lifecycle. It does no terminal, audio or file I/O.
//
// World space is centered on the origin with y pointing up. All population
// changes requested inside a phase are buffered and applied at the phase
// boundary, so no phase ever iterates a half-mutated population.
package sim

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickfall/internal/core"
)

// Simulation owns one round of play and every resource scoped to it.
type Simulation struct {
	cfg  Tuning
	log  *log.Logger
	seed uint64
	rng  *rand.Rand

	world *World
	tick  uint64
	dt    time.Duration

	score int
	exp   int
	level int

	round RoundState
	run   RunState

	// nil while the effect is inactive
	ballTimer   *Timer
	paddleTimer *Timer

	descent  *Timer
	descents int // wraps at RespawnEvery

	expEvents  queue[ExpGain]
	levelUps   queue[LevelUp]
	collisions queue[CollisionEvent]
}

// New sets up a round: paddle, one ball, four walls and the initial block
// grid, with score, experience and level at zero.
func New(t Tuning, seed uint64, logger *log.Logger) *Simulation {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Simulation{
		cfg:   t,
		log:   logger,
		world: NewWorld(),
		dt:    t.Step(),
	}
	s.setup(seed)
	return s
}

func (s *Simulation) setup(seed uint64) {
	s.seed = seed
	s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s.tick = 0
	s.score, s.exp, s.level = 0, 0, 0
	s.ballTimer, s.paddleTimer = nil, nil
	s.descent = NewTimer(s.cfg.DescentPeriod, Repeating)
	s.descents = 0

	s.spawnPaddle()
	s.spawnBall(s.cfg.BallStart, s.cfg.BallVelocity(), s.cfg.BallSize, s.cfg.BallAttack)
	s.spawnWalls()
	s.spawnFormation()
	s.world.Flush()

	s.round = RoundPlaying
	s.run = Looping
	s.log.Info("round started",
		"seed", seed,
		"blocks", s.world.Count(KindBlock),
		"tick_rate", s.cfg.TickRate)
}

// Teardown despawns every entity and clears timers, counters and queues.
// Step is a no-op until Restart.
func (s *Simulation) Teardown() {
	s.world.Clear()
	s.ballTimer, s.paddleTimer = nil, nil
	s.descent = nil
	s.descents = 0
	s.score, s.exp, s.level = 0, 0, 0
	s.expEvents.clear()
	s.levelUps.clear()
	s.collisions.clear()
	s.round = RoundIdle
	s.run = Looping
}

// Restart tears the round down and sets up a fresh one.
func (s *Simulation) Restart(seed uint64) {
	s.Teardown()
	s.setup(seed)
}

// Step advances the simulation by one fixed tick. intent steers the paddle:
// -1 left, 0 hold, +1 right.
func (s *Simulation) Step(intent int) TickReport {
	if s.round != RoundPlaying || s.run != Looping {
		return TickReport{Tick: s.tick, Skipped: true, Round: s.round, Run: s.run}
	}

	s.tick++
	rep := TickReport{Tick: s.tick}
	secs := s.dt.Seconds()

	s.movePaddle(intent, secs)
	s.expireEffects(s.dt, &rep)

	s.advanceFormation(s.dt, &rep)
	s.world.Flush()

	s.integrate(secs)

	s.resolveBallCollisions(&rep)
	s.despawnLostBalls(&rep)
	s.resolvePowerups(&rep)
	s.world.Flush()

	s.applyProgression(&rep)
	s.checkRound(&rep)

	s.fadeDamageText(s.dt)
	s.world.Flush()

	rep.Round = s.round
	rep.Run = s.run
	return rep
}

// Resume leaves the level-up pause.
func (s *Simulation) Resume() {
	if s.run == LevelingUp {
		s.run = Looping
	}
}

// RunState reports whether play is looping or paused on a level-up.
func (s *Simulation) RunState() RunState { return s.run }

// Round reports the round lifecycle state.
func (s *Simulation) Round() RoundState { return s.round }

// Score returns blocks destroyed this round.
func (s *Simulation) Score() int { return s.score }

// Exp returns experience carried toward the next level.
func (s *Simulation) Exp() int { return s.exp }

// Level returns the current level.
func (s *Simulation) Level() int { return s.level }

// Tick returns the number of ticks simulated this round.
func (s *Simulation) Tick() uint64 { return s.tick }

// Seed returns the seed the round was set up with.
func (s *Simulation) Seed() uint64 { return s.seed }

// Tuning returns the constants the simulation runs with.
func (s *Simulation) Tuning() Tuning { return s.cfg }

// DrainLevelUps returns level-ups since the last call.
func (s *Simulation) DrainLevelUps() []LevelUp {
	return s.levelUps.drain()
}

// DrainCollisions returns collision notifications since the last call.
func (s *Simulation) DrainCollisions() []CollisionEvent {
	return s.collisions.drain()
}

// paddle returns the singleton paddle, reporting a violation when the
// population is not exactly one.
func (s *Simulation) paddle() (EntityID, bool) {
	id, n, ok := s.world.Single(KindPaddle)
	if !ok {
		s.violation("paddle is not a singleton", "count", n)
	}
	return id, ok
}

// violation panics in strict mode and logs otherwise.
func (s *Simulation) violation(msg string, keyvals ...any) {
	if s.cfg.Strict {
		panic(fmt.Sprintf("sim: %s %v", msg, keyvals))
	}
	s.log.Warn(msg, append([]any{"tick", s.tick}, keyvals...)...)
}

func (s *Simulation) spawnPaddle() EntityID {
	id := s.world.Spawn(KindPaddle)
	s.world.Pos.Set(id, s.cfg.PaddleStart)
	s.world.Size.Set(id, s.cfg.PaddleSize)
	return id
}

func (s *Simulation) spawnBall(pos, vel core.Vec2, size float64, attack int) EntityID {
	id := s.world.Spawn(KindBall)
	s.world.Pos.Set(id, pos)
	s.world.Vel.Set(id, vel)
	s.world.Size.Set(id, core.V2(size, size))
	s.world.Attack.Set(id, attack)
	return id
}

func (s *Simulation) spawnWalls() {
	w, h, th := s.cfg.Playfield.X, s.cfg.Playfield.Y, s.cfg.WallThickness
	horizontal := core.V2(w+th, th)
	vertical := core.V2(th, h+th)

	walls := []struct {
		size, pos core.Vec2
	}{
		{horizontal, core.V2(0, h/2)},
		{horizontal, core.V2(0, -h/2)},
		{vertical, core.V2(w/2, 0)},
		{vertical, core.V2(-w/2, 0)},
	}
	for _, wall := range walls {
		id := s.world.Spawn(KindWall)
		s.world.Pos.Set(id, wall.pos)
		s.world.Size.Set(id, wall.size)
	}
}
