package brickfall

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vovakirdan/brickfall/internal/core"
	"github.com/vovakirdan/brickfall/internal/games/brickfall/sim"
)

// Visual characters for rendering
const (
	PaddleChar   = '='
	BallChar     = '●'
	BigBallChar  = 'O'
	WallChar     = '█'
	ExpFullChar  = '■'
	ExpEmptyChar = '·'
	BorderHoriz  = '─'
)

// Layout
const (
	hudRows         = 2
	expBarWidth     = 20
	worldEdgeMargin = 1e-6 // keeps exclusive max edges out of the next cell
)

// Block glyphs by remaining health, strongest last.
var blockGlyphs = []rune{'░', '▒', '▓', '█'}

// Block colors cycle by row so the formation reads as bands.
var blockColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

// powerupGlyph returns the pickup symbol and color for a class.
func powerupGlyph(c sim.PowerupClass) (rune, core.Color) {
	switch c {
	case sim.DuplicateBall:
		return '+', core.ColorBrightGreen
	case sim.EnlargeBall:
		return 'o', core.ColorBrightMagenta
	case sim.EnlargePaddle:
		return '↔', core.ColorBrightCyan
	default:
		return '?', core.ColorWhite
	}
}

// viewport maps world coordinates (y up) onto a screen rect (y down).
type viewport struct {
	world  core.AABB
	screen core.Rect
}

func (v viewport) cell(p core.Vec2) (int, int) {
	size := v.world.Size()
	fx := (p.X - v.world.Min.X) / size.X
	fy := (v.world.Max.Y - p.Y) / size.Y
	x := v.screen.X + int(math.Floor(fx*float64(v.screen.W)))
	y := v.screen.Y + int(math.Floor(fy*float64(v.screen.H)))
	return core.Clamp(x, v.screen.X, v.screen.Right()-1), core.Clamp(y, v.screen.Y, v.screen.Bottom()-1)
}

// rect returns the cells a box covers. Max edges are exclusive so adjacent
// boxes never share a cell column.
func (v viewport) rect(b core.AABB) core.Rect {
	x0, y0 := v.cell(core.V2(b.Min.X, b.Max.Y))
	x1, y1 := v.cell(core.V2(b.Max.X-worldEdgeMargin, b.Min.Y+worldEdgeMargin))
	return core.NewRect(x0, y0, core.Max(1, x1-x0+1), core.Max(1, y1-y0+1))
}

// outerBox is the union of all wall boxes, or the inner box when there are
// no walls.
func outerBox(snap sim.Snapshot) core.AABB {
	if len(snap.Walls) == 0 {
		return snap.Bounds
	}
	box := snap.Walls[0].Box()
	for _, w := range snap.Walls[1:] {
		b := w.Box()
		box.Min.X = math.Min(box.Min.X, b.Min.X)
		box.Min.Y = math.Min(box.Min.Y, b.Min.Y)
		box.Max.X = math.Max(box.Max.X, b.Max.X)
		box.Max.Y = math.Max(box.Max.Y, b.Max.Y)
	}
	return box
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall || g.sim == nil {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	snap := g.sim.Snapshot()
	vp := viewport{
		world:  outerBox(snap),
		screen: core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows),
	}

	g.renderHUD(dst, snap)
	renderWalls(dst, vp, snap)
	g.renderBlocks(dst, vp, snap)
	renderPowerups(dst, vp, snap)
	renderPaddle(dst, vp, snap)
	g.renderBalls(dst, vp, snap)
	renderDamageTexts(dst, vp, snap)
	g.renderOverlay(dst, snap)
}

// renderHUD draws score, level and the experience bar on row 0, and active
// effects with the descent countdown on row 1.
func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Level %d", snap.Level))

	filled := int(math.Round(snap.ExpRatio * expBarWidth))
	bar := strings.Repeat(string(ExpFullChar), filled) + strings.Repeat(string(ExpEmptyChar), expBarWidth-filled)
	label := fmt.Sprintf(" %d/%d", snap.Exp, snap.Threshold)
	x := dst.Width() - expBarWidth - len(label) - 1
	dst.DrawTextColored(x, 0, bar, core.ColorBrightYellow)
	dst.DrawText(x+expBarWidth, 0, label)

	var parts []string
	if snap.BallEffect > 0 {
		parts = append(parts, fmt.Sprintf("BigBall(%s)", seconds(snap.BallEffect)))
	}
	if snap.PaddleEffect > 0 {
		parts = append(parts, fmt.Sprintf("Wide(%s)", seconds(snap.PaddleEffect)))
	}
	if len(parts) == 0 {
		for x := range dst.Width() {
			dst.SetColored(x, 1, BorderHoriz, core.ColorGray)
		}
	} else {
		dst.DrawTextColored(1, 1, strings.Join(parts, " "), core.ColorBrightCyan)
	}
	descent := fmt.Sprintf("Drop in %s", seconds(snap.NextDescent))
	dst.DrawTextColored(dst.Width()-len(descent)-1, 1, descent, core.ColorGray)
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%ds", int(math.Ceil(d.Seconds())))
}

func renderWalls(dst *core.Screen, vp viewport, snap sim.Snapshot) {
	for _, w := range snap.Walls {
		fillRect(dst, vp.rect(w.Box()), WallChar, core.ColorGray)
	}
}

func (g *Game) renderBlocks(dst *core.Screen, vp viewport, snap sim.Snapshot) {
	pitch := g.cfg.Blocks.Height + g.cfg.Blocks.Padding
	top := snap.Bounds.Max.Y
	for _, b := range snap.Blocks {
		glyph := blockGlyphs[core.Clamp(b.Health-1, 0, len(blockGlyphs)-1)]
		row := 0
		if pitch > 0 {
			row = int((top - b.Pos.Y) / pitch)
		}
		color := blockColors[core.Abs(row)%len(blockColors)]

		r := vp.rect(b.Box())
		fillRect(dst, r, glyph, color)
		// keep neighbours apart when blocks span several cells
		if r.W > 2 {
			dst.SetColored(r.Right()-1, r.Y, ' ', core.ColorDefault)
		}
	}
}

func renderPowerups(dst *core.Screen, vp viewport, snap sim.Snapshot) {
	for _, p := range snap.Powerups {
		glyph, color := powerupGlyph(p.Class)
		x, y := vp.cell(p.Pos)
		dst.SetColored(x, y, glyph, color)
	}
}

func renderPaddle(dst *core.Screen, vp viewport, snap sim.Snapshot) {
	if !snap.HasPaddle {
		return
	}
	color := core.ColorBrightWhite
	if snap.PaddleEffect > 0 {
		color = core.ColorBrightCyan
	}
	r := vp.rect(snap.Paddle.Box())
	fillRect(dst, core.NewRect(r.X, r.Y, r.W, 1), PaddleChar, color)
}

func (g *Game) renderBalls(dst *core.Screen, vp viewport, snap sim.Snapshot) {
	for _, b := range snap.Balls {
		glyph, color := BallChar, core.ColorBrightWhite
		if b.Size.X > g.cfg.Ball.Size {
			glyph, color = BigBallChar, core.ColorBrightMagenta
		}
		x, y := vp.cell(b.Pos)
		dst.SetColored(x, y, glyph, color)
	}
}

func renderDamageTexts(dst *core.Screen, vp viewport, snap sim.Snapshot) {
	for _, t := range snap.DamageTexts {
		color := core.ColorBrightYellow.Fade(t.Alpha)
		x, y := vp.cell(t.Pos)
		dst.DrawTextColored(x, y, fmt.Sprintf("-%d", t.Amount), color)
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen, snap sim.Snapshot) {
	switch {
	case snap.Round == sim.RoundLost:
		subtitle := fmt.Sprintf("Score: %d  Level: %d  |  Press R to restart", snap.Score, snap.Level)
		drawCenteredBox(dst, "GAME OVER", subtitle)

	case snap.Round == sim.RoundWon:
		subtitle := fmt.Sprintf("Final Score: %d  Level: %d  |  Press R to restart", snap.Score, snap.Level)
		drawCenteredBox(dst, "FIELD CLEARED!", subtitle)

	case snap.Run == sim.LevelingUp:
		drawCenteredBox(dst, fmt.Sprintf("LEVEL UP! Level %d", snap.Level), "Press ENTER to continue")

	case g.paused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case g.bannerTicks > 0:
		dst.DrawTextColored((dst.Width()-12)/2, hudRows+1, fmt.Sprintf("LEVEL UP! %2d", g.bannerLevel), core.ColorBrightYellow)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// fillRect paints every cell of r that lies on screen.
func fillRect(dst *core.Screen, r core.Rect, glyph rune, color core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(x, y, glyph, color)
		}
	}
}
