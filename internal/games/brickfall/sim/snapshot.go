package sim

import (
	"math"
	"time"

	"github.com/vovakirdan/brickfall/internal/core"
)

// Body is the read-only view of one entity's extent.
type Body struct {
	ID   EntityID
	Pos  core.Vec2
	Vel  core.Vec2 // zero for static bodies
	Size core.Vec2
}

// Box returns the body's collision box.
func (b Body) Box() core.AABB {
	return core.BoxAt(b.Pos, b.Size)
}

// BlockView is a block with its remaining health.
type BlockView struct {
	Body
	Health int
}

// PowerupView is a falling pickup.
type PowerupView struct {
	Body
	Class PowerupClass
}

// DamageTextView is a damage popup. Alpha goes from 1 to 0 as it fades.
type DamageTextView struct {
	Pos    core.Vec2
	Amount int
	Alpha  float64
}

// Snapshot is a copy of everything a renderer or test needs from one tick.
// It shares no memory with the simulation.
type Snapshot struct {
	Tick  uint64
	Round RoundState
	Run   RunState

	Score     int
	Exp       int
	Level     int
	Threshold int
	ExpRatio  float64

	Bounds core.AABB // inner box

	Paddle      Body
	HasPaddle   bool
	Balls       []Body
	Blocks      []BlockView
	Walls       []Body
	Powerups    []PowerupView
	DamageTexts []DamageTextView

	BallEffect   time.Duration // remaining, zero when inactive
	PaddleEffect time.Duration
	NextDescent  time.Duration
	Descents     int
}

// Snapshot captures the current state.
func (s *Simulation) Snapshot() Snapshot {
	w := s.world
	body := func(id EntityID) Body {
		return Body{ID: id, Pos: w.Pos.MustGet(id), Vel: w.Vel.MustGet(id), Size: w.Size.MustGet(id)}
	}

	snap := Snapshot{
		Tick:         s.tick,
		Round:        s.round,
		Run:          s.run,
		Score:        s.score,
		Exp:          s.exp,
		Level:        s.level,
		Threshold:    s.Threshold(),
		ExpRatio:     s.ExpRatio(),
		Bounds:       core.BoxAt(core.V2(0, 0), s.cfg.Inner()),
		BallEffect:   s.BallEffectRemaining(),
		PaddleEffect: s.PaddleEffectRemaining(),
		NextDescent:  s.NextDescent(),
		Descents:     s.descents,
	}

	if id, _, ok := w.Single(KindPaddle); ok {
		snap.Paddle = body(id)
		snap.HasPaddle = true
	}
	for _, id := range w.Query(KindBall) {
		snap.Balls = append(snap.Balls, body(id))
	}
	for _, id := range w.Query(KindBlock) {
		snap.Blocks = append(snap.Blocks, BlockView{Body: body(id), Health: w.Health.MustGet(id)})
	}
	for _, id := range w.Query(KindWall) {
		snap.Walls = append(snap.Walls, body(id))
	}
	for _, id := range w.Query(KindPowerup) {
		snap.Powerups = append(snap.Powerups, PowerupView{Body: body(id), Class: w.Powerup.MustGet(id)})
	}
	for _, id := range w.Query(KindDamageText) {
		alpha := 0.0
		if fade := w.Fade.MustGet(id); fade != nil {
			alpha = 1 - fade.Fraction()
		}
		snap.DamageTexts = append(snap.DamageTexts, DamageTextView{
			Pos:    w.Pos.MustGet(id),
			Amount: w.Damage.MustGet(id),
			Alpha:  alpha,
		})
	}
	return snap
}

// Hash folds the snapshot into a single value for determinism checks.
// Entity handles are left out.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixV := func(v core.Vec2) {
		mixF(v.X)
		mixF(v.Y)
	}

	mix(uint64(snap.Round))        //#nosec G115 -- hash computation
	mix(uint64(snap.Run))          //#nosec G115 -- hash computation
	mix(uint64(snap.Score))        //#nosec G115 -- hash computation
	mix(uint64(snap.Exp))          //#nosec G115 -- hash computation
	mix(uint64(snap.Level))        //#nosec G115 -- hash computation
	mix(uint64(snap.BallEffect))   //#nosec G115 -- hash computation
	mix(uint64(snap.PaddleEffect)) //#nosec G115 -- hash computation
	mix(uint64(snap.NextDescent))  //#nosec G115 -- hash computation
	mix(uint64(snap.Descents))     //#nosec G115 -- hash computation

	mixV(snap.Paddle.Pos)
	mixV(snap.Paddle.Size)
	for _, b := range snap.Balls {
		mixV(b.Pos)
		mixV(b.Vel)
		mixV(b.Size)
	}
	for _, b := range snap.Blocks {
		mixV(b.Pos)
		mix(uint64(b.Health)) //#nosec G115 -- hash computation
	}
	for _, p := range snap.Powerups {
		mixV(p.Pos)
		mix(uint64(p.Class)) //#nosec G115 -- hash computation
	}
	mix(uint64(len(snap.DamageTexts)))
	return h
}
