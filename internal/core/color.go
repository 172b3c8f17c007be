package core

// Color is the foreground of one screen cell. Renderers translate it to
// whatever the output terminal supports.
type Color uint8

// Cell colors. ColorDefault leaves the terminal foreground alone.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	colorCount
)

// ansi256 holds the xterm 256-color index for each color.
var ansi256 = [colorCount]string{
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// Colors lists every color except ColorDefault.
func Colors() []Color {
	out := make([]Color, 0, colorCount-1)
	for c := ColorDefault + 1; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}

// ANSI returns the 256-color palette index as a string, or "" for
// ColorDefault and unknown values.
func (c Color) ANSI() string {
	if c >= colorCount {
		return ""
	}
	return ansi256[c]
}

// Fade steps a color down by opacity: bright colors drop to their normal
// tone below 0.5 and everything goes gray below 0.2.
func (c Color) Fade(alpha float64) Color {
	switch {
	case alpha < 0.2:
		return ColorGray
	case alpha < 0.5 && c >= ColorBrightRed && c <= ColorBrightWhite:
		return c - (ColorBrightRed - ColorRed)
	default:
		return c
	}
}
