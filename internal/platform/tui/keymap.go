package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickfall/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// steerHoldWindow is how long a steering key counts as held after its last
// key event. Terminals report presses and auto-repeat but never releases, so
// the window has to outlast the gap before auto-repeat kicks in.
const steerHoldWindow = 150 * time.Millisecond

// SteerHold turns discrete steering key events into held input.
type SteerHold struct {
	window int
	left   int
	right  int
}

// NewSteerHold sizes the hold window for the given tick rate.
func NewSteerHold(tickRate int) *SteerHold {
	if tickRate <= 0 {
		tickRate = 60
	}
	window := int(steerHoldWindow * time.Duration(tickRate) / time.Second)
	return &SteerHold{window: core.Max(1, window)}
}

// Press records a key event. Steering one way releases the other.
func (h *SteerHold) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left, h.right = h.window, 0
	case core.ActionRight:
		h.right, h.left = h.window, 0
	}
}

// Apply sets the held directions on frame and counts the window down by one
// tick.
func (h *SteerHold) Apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}

// Release drops any held direction.
func (h *SteerHold) Release() {
	h.left, h.right = 0, 0
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab", "t":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
