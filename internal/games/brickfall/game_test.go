package brickfall

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/games/brickfall/sim"
	"github.com/vovakirdan/brickfall/internal/registry"
)

var testRuntime = core.RuntimeConfig{
	ScreenW:  80,
	ScreenH:  24,
	TickRate: 60,
	Seed:     12345,
}

// recorder counts sound cues.
type recorder struct {
	bounce, brk, powerup, levelUp int
}

func (r *recorder) PlayBounce()  { r.bounce++ }
func (r *recorder) PlayBreak()   { r.brk++ }
func (r *recorder) PlayPowerup() { r.powerup++ }
func (r *recorder) PlayLevelUp() { r.levelUp++ }

// useConfig points the game at a temporary YAML file for one test.
func useConfig(t *testing.T, yaml string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "brickfall.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

// isolate keeps package globals from leaking between tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetDifficultyPreset("")
	t.Cleanup(func() {
		SetDifficultyPreset("")
		SetAudio(nil)
	})
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"brickfall", "brickfall_rush"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %q, want %q", g.ID(), id)
		}
	}
}

func TestGameDeterminism(t *testing.T) {
	isolate(t)

	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		switch {
		case i%40 < 15:
			inputs[i] = input(core.ActionLeft)
		case i%40 < 30:
			inputs[i] = input(core.ActionRight)
		default:
			inputs[i] = input()
		}
	}

	run := func() sim.Snapshot {
		g := New()
		g.Reset(testRuntime)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if a.Hash() != b.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", a.Hash(), b.Hash())
	}
	if a.Tick != b.Tick || a.Score != b.Score {
		t.Errorf("Determinism failed: tick %d/%d score %d/%d", a.Tick, b.Tick, a.Score, b.Score)
	}
}

func TestVariants(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		game    *Game
		title   string
		respawn int
		descent time.Duration
	}{
		{"classic", New(), "Brickfall", 2, 10 * time.Second},
		{"rush", NewRush(), "Brickfall (Rush)", 1, 5 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.game.Reset(testRuntime)
			if tt.game.Title() != tt.title {
				t.Errorf("Title = %q", tt.game.Title())
			}
			tu := tt.game.sim.Tuning()
			if tu.RespawnEvery != tt.respawn {
				t.Errorf("RespawnEvery = %d, want %d", tu.RespawnEvery, tt.respawn)
			}
			if got := tt.game.sim.DescentPeriod(); got != tt.descent {
				t.Errorf("DescentPeriod = %v, want %v", got, tt.descent)
			}
		})
	}
}

func TestPauseToggle(t *testing.T) {
	isolate(t)
	g := New()
	g.Reset(testRuntime)

	g.Step(input())
	if !g.Step(input(core.ActionPause)).State.Paused {
		t.Fatal("expected paused")
	}
	tick := g.Snapshot().Tick
	for range 10 {
		g.Step(input(core.ActionRight))
	}
	if g.Snapshot().Tick != tick {
		t.Error("paused game advanced")
	}
	if g.Step(input(core.ActionPause)).State.Paused {
		t.Error("expected unpaused")
	}
	if g.Snapshot().Tick != tick+1 {
		t.Errorf("tick = %d, want %d", g.Snapshot().Tick, tick+1)
	}
}

func TestLevelUpWaitsForConfirm(t *testing.T) {
	isolate(t)
	x := sim.DefaultTuning().BlockPosition(5, 8).X
	useConfig(t, fmt.Sprintf(`
ball:
  start: {x: %g, y: 5}
  direction: {x: 0, y: 0.5}
progression:
  base_cap: 0.5
gameplay:
  pause_on_level_up: true
difficulty:
  enabled: false
`, x))
	rec := &recorder{}
	SetAudio(rec)

	g := New()
	g.Reset(testRuntime)
	res := g.Step(input())

	if res.State.Score != 1 || res.State.Level != 1 {
		t.Fatalf("state = %+v, want score 1 level 1", res.State)
	}
	if rec.brk != 1 || rec.levelUp != 1 {
		t.Errorf("cues = %+v, want one break and one level-up", *rec)
	}
	if g.Snapshot().Run != sim.LevelingUp {
		t.Fatal("expected leveling-up pause")
	}

	tick := g.Snapshot().Tick
	g.Step(input(core.ActionLeft))
	if g.Snapshot().Tick != tick {
		t.Error("round advanced without confirm")
	}

	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "LEVEL UP!") {
		t.Error("level-up overlay missing")
	}

	g.Step(input(core.ActionConfirm))
	if g.Snapshot().Run != sim.Looping || g.Snapshot().Tick != tick+1 {
		t.Errorf("confirm should resume and step, run=%v tick=%d", g.Snapshot().Run, g.Snapshot().Tick)
	}
}

func TestRestartAfterLoss(t *testing.T) {
	isolate(t)
	useConfig(t, "ball:\n  start: {x: 0, y: -400}\n")

	g := New()
	g.Reset(testRuntime)
	st := g.Step(input()).State
	if !st.GameOver || st.Won {
		t.Fatalf("state = %+v, want lost", st)
	}

	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}

	// input other than restart is ignored once the round is over
	g.Step(input(core.ActionConfirm, core.ActionPause))
	if g.Snapshot().Tick != 1 {
		t.Errorf("tick = %d after round end", g.Snapshot().Tick)
	}

	st = g.Step(input(core.ActionRestart)).State
	if st.GameOver || st.Score != 0 {
		t.Errorf("state after restart = %+v", st)
	}
	if g.Snapshot().Tick != 0 || len(g.Snapshot().Blocks) != 60 {
		t.Error("restart did not rebuild the round")
	}
}

func TestHardPresetShrinksPaddle(t *testing.T) {
	isolate(t)
	SetDifficultyPreset("hard")

	g := New()
	g.Reset(testRuntime)
	snap := g.Snapshot()
	if snap.Paddle.Size.X != 96 {
		t.Errorf("paddle width = %v, want 96", snap.Paddle.Size.X)
	}
	if d := g.sim.DescentPeriod(); d >= 10*time.Second {
		t.Errorf("hard preset should shorten descent, got %v", d)
	}
}

func TestSetDifficultyPresetUnknownClears(t *testing.T) {
	isolate(t)
	SetDifficultyPreset("hard")
	SetDifficultyPreset("impossible")
	if difficultyPreset != "" {
		t.Errorf("preset = %q, want cleared", difficultyPreset)
	}
}

func TestRender(t *testing.T) {
	isolate(t)
	g := New()
	g.Reset(testRuntime)

	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)
	g.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, "Score: 0") || !strings.Contains(row, "Level 0") {
		t.Errorf("HUD row = %q", row)
	}
	if !strings.Contains(screen.Row(0), "0/50") {
		t.Errorf("exp label missing in %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(1), "Drop in 10s") {
		t.Errorf("descent countdown missing in %q", screen.Row(1))
	}

	// corners of the playfield are wall
	for _, p := range [][2]int{{0, hudRows}, {79, hudRows}, {0, 23}, {79, 23}} {
		if got := screen.Get(p[0], p[1]); got != WallChar {
			t.Errorf("cell %v = %q, want wall", p, got)
		}
	}

	body := screen.String()
	if !strings.ContainsRune(body, PaddleChar) {
		t.Error("paddle not drawn")
	}
	if !strings.ContainsRune(body, BallChar) {
		t.Error("ball not drawn")
	}
	if !strings.ContainsRune(body, blockGlyphs[0]) {
		t.Error("blocks not drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	isolate(t)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected size warning")
	}
	if g.Step(input(core.ActionRight)).State.GameOver {
		t.Error("tiny screen should not end the round")
	}
	if g.Snapshot().Tick != 0 {
		t.Error("tiny screen should not advance the round")
	}
}

func TestViewportMapping(t *testing.T) {
	vp := viewport{
		world:  core.AABB{Min: core.V2(-100, -50), Max: core.V2(100, 50)},
		screen: core.NewRect(0, 2, 20, 10),
	}

	tests := []struct {
		name string
		p    core.Vec2
		x, y int
	}{
		{"top left", core.V2(-100, 50), 0, 2},
		{"center", core.V2(0, 0), 10, 7},
		{"bottom right clamps", core.V2(100, -50), 19, 11},
		{"outside clamps", core.V2(-500, 500), 0, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := vp.cell(tt.p)
			if x != tt.x || y != tt.y {
				t.Errorf("cell(%v) = (%d, %d), want (%d, %d)", tt.p, x, y, tt.x, tt.y)
			}
		})
	}

	r := vp.rect(core.AABB{Min: core.V2(-100, 40), Max: core.V2(-80, 50)})
	if r != core.NewRect(0, 2, 2, 1) {
		t.Errorf("rect = %+v", r)
	}
}

func TestResizeKeepsRound(t *testing.T) {
	isolate(t)
	g := New()
	g.Reset(testRuntime)
	for range 5 {
		g.Step(input())
	}

	g.Resize(20, 10)
	g.Step(input())
	if g.Snapshot().Tick != 5 {
		t.Errorf("tick = %d, want round frozen at 5", g.Snapshot().Tick)
	}

	g.Resize(120, 40)
	st := g.Step(input()).State
	if st.Ticks != 6 {
		t.Errorf("ticks = %d, want 6 after growing back", st.Ticks)
	}
}

func TestSetPresetOverridesGlobal(t *testing.T) {
	isolate(t)
	SetDifficultyPreset("easy")

	g := New()
	if err := g.SetPreset("hard"); err != nil {
		t.Fatal(err)
	}
	g.Reset(testRuntime)
	if w := g.Snapshot().Paddle.Size.X; w != 96 {
		t.Errorf("paddle width = %v, want 96 from the instance preset", w)
	}

	if err := g.SetPreset("impossible"); err == nil {
		t.Error("expected error for unknown preset")
	}

	other := New()
	other.Reset(testRuntime)
	if w := other.Snapshot().Paddle.Size.X; w != 150 {
		t.Errorf("paddle width = %v, want 150 from the global preset", w)
	}
}
