package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/brickfall/internal/core"
)

// Palette maps screen colors to styles bound to one renderer. SSH sessions
// get their own palette so colors follow the client terminal, not the
// server's.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds a palette on r. Nil uses the default renderer.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := Palette{core.ColorDefault: r.NewStyle()}
	for _, c := range core.Colors() {
		p[c] = r.NewStyle().Foreground(lipgloss.Color(c.ANSI()))
	}
	return p
}

var defaultPalette = NewPalette(nil)

// RenderScreen converts a Screen buffer to a styled string for the local
// terminal.
func RenderScreen(s *core.Screen) string {
	return defaultPalette.Render(s)
}

// Render converts a Screen buffer to a styled string. Adjacent cells with
// the same color share one style run to keep escape sequences down.
func (p Palette) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := p[color]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
