// Package brickfall adapts the brickfall simulation to the arcade platform:
// it loads configuration, maps input to paddle intent, drives fixed ticks,
// forwards collision cues to audio and renders snapshots to a screen.
package brickfall

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickfall/internal/config"
	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/games/brickfall/sim"
	"github.com/vovakirdan/brickfall/internal/registry"
)

// Variant selects the formation cadence.
type Variant int

const (
	VariantClassic Variant = iota // reference cadence
	VariantRush                   // faster descent, a row every descent
)

// Sink receives sound cues. Implementations must not block.
type Sink interface {
	PlayBounce()
	PlayBreak()
	PlayPowerup()
	PlayLevelUp()
}

type silent struct{}

func (silent) PlayBounce()  {}
func (silent) PlayBreak()   {}
func (silent) PlayPowerup() {}
func (silent) PlayLevelUp() {}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives round events; the CLI points it at a file
var logger = log.New(io.Discard)

// sound receives collision cues
var sound Sink = silent{}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetLogger routes game logs. Nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// SetAudio installs the sound sink. Nil silences the game.
func SetAudio(s Sink) {
	if s == nil {
		s = silent{}
	}
	sound = s
}

// Minimum terminal size for a readable playfield.
const (
	minScreenW = 40
	minScreenH = 16
)

// levelBannerSeconds is how long the level-up banner stays up when the
// round does not pause for it.
const levelBannerSeconds = 2

// Game implements registry.Game on top of sim.Simulation.
type Game struct {
	variant Variant
	preset  config.DifficultyPreset // overrides difficultyPreset when set

	sim        *sim.Simulation
	cfg        config.BrickfallConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	seed       uint64
	restarts   uint64

	paused         bool
	bannerLevel    int
	bannerTicks    int
	screenTooSmall bool

	log   *log.Logger
	sound Sink
}

// New creates a classic brickfall game.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewRush creates the rush variant.
func NewRush() *Game {
	return &Game{variant: VariantRush}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantRush {
		return "brickfall_rush"
	}
	return "brickfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantRush {
		return "Brickfall (Rush)"
	}
	return "Brickfall"
}

// Reset loads configuration and starts a fresh round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger.WithPrefix(g.ID())
	g.sound = sound

	cfg, err := config.LoadBrickfall(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultBrickfallConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyBrickfallPreset(&cfg, preset)
	}
	if g.variant == VariantRush {
		config.ApplyRush(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		g.log.Warn("config rejected after adjustments", "err", err)
		cfg = config.DefaultBrickfallConfig()
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	tuning := tuningFrom(cfg, runtime.TickRate)
	tuning.BallSpeed = g.difficulty.Speed(cfg.Ball.Speed, 0, 0)

	g.seed = uint64(runtime.Seed) //#nosec G115 -- seed bits are reinterpreted, sign is irrelevant
	g.restarts = 0
	g.paused = false
	g.bannerTicks = 0
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.sim = sim.New(tuning, g.seed, g.log)
	g.retuneDescent()
}

// SetPreset picks the difficulty preset for this game only. It takes effect
// on the next Reset.
func (g *Game) SetPreset(name string) error {
	p, err := config.ParsePreset(name)
	if err != nil {
		return err
	}
	if name == "" {
		p = ""
	}
	g.preset = p
	return nil
}

// Resize follows a terminal resize. The world is resolution independent, so
// the round keeps going and only the viewport changes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < minScreenW || h < minScreenH
}

// restart tears the round down and sets it up again with a derived seed.
func (g *Game) restart() {
	g.restarts++
	g.paused = false
	g.bannerTicks = 0
	g.sim.Restart(g.seed + g.restarts)
	g.retuneDescent()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	round := g.sim.Round()
	if in.Has(core.ActionRestart) && round.Over() {
		g.restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !round.Over() && g.sim.RunState() == sim.Looping {
		g.paused = !g.paused
	}
	if g.paused || round.Over() {
		return core.StepResult{State: g.State()}
	}

	if g.sim.RunState() == sim.LevelingUp {
		if !in.Has(core.ActionConfirm) {
			return core.StepResult{State: g.State()}
		}
		g.sim.Resume()
	}

	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	rep := g.sim.Step(in.Steer())
	g.dispatch(rep)
	if !rep.Skipped {
		g.retuneDescent()
	}
	if rep.Finished {
		g.log.Debug("round finished",
			"restarts", g.restarts, "descent", g.sim.DescentPeriod(), "difficulty", g.difficulty.Level(g.sim.Score(), int(g.sim.Tick()))) //#nosec G115 -- tick count fits in int
	}

	return core.StepResult{State: g.State()}
}

// dispatch drains the simulation queues into sound cues. Each cue plays at
// most once per tick however many collisions caused it.
func (g *Game) dispatch(rep sim.TickReport) {
	var bounce, brk bool
	for _, ev := range g.sim.DrainCollisions() {
		switch ev.Impact {
		case sim.ImpactBlockDestroyed:
			brk = true
		default:
			bounce = true
		}
	}
	switch {
	case brk:
		g.sound.PlayBreak()
	case bounce:
		g.sound.PlayBounce()
	}
	if len(rep.Pickups) > 0 {
		g.sound.PlayPowerup()
	}

	ups := g.sim.DrainLevelUps()
	if len(ups) == 0 {
		return
	}
	g.sound.PlayLevelUp()
	g.bannerLevel = ups[len(ups)-1].Level
	if g.sim.RunState() == sim.Looping {
		g.bannerTicks = levelBannerSeconds * g.sim.Tuning().TickRate
	}
}

// retuneDescent applies the difficulty curve to the formation period.
func (g *Game) retuneDescent() {
	if !g.difficulty.IsEnabled() {
		return
	}
	period := g.difficulty.DescentPeriod(g.cfg.Blocks.DescentPeriod, g.sim.Score(), int(g.sim.Tick())) //#nosec G115 -- tick count fits in int
	g.sim.SetDescentPeriod(period)
}

// Snapshot returns the simulation state for rendering and tests.
func (g *Game) Snapshot() sim.Snapshot {
	return g.sim.Snapshot()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	round := g.sim.Round()
	return core.GameState{
		Score:    g.sim.Score(),
		Level:    g.sim.Level(),
		GameOver: round.Over(),
		Won:      round == sim.RoundWon,
		Paused:   g.paused,
		Ticks:    g.sim.Tick(),
	}
}

// Register the games with the registry
func init() {
	registry.Register("brickfall", func() registry.Game {
		return New()
	})
	registry.Register("brickfall_rush", func() registry.Game {
		return NewRush()
	})
}
