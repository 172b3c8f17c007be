// Package registry keeps the playable brickfall variants. Variants register
// a factory in init(), so the CLI, the menu and the SSH server can list and
// create them by ID without importing the game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/brickfall/internal/core"
)

// Game is what the platform drives. Implementations hold no terminal state:
// the platform maps keys to actions, owns the tick clock and paints the
// screen buffer a game renders into.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// scores database (e.g. "brickfall", "brickfall_rush").
	ID() string

	// Title is the display name.
	Title() string

	// Reset loads configuration and starts a fresh round sized to cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions held this tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. The screen is cleared by Render.
	Render(dst *core.Screen)

	// State reports score, level and round status.
	State() core.GameState
}

// Resizable is implemented by games that can follow a terminal resize
// without restarting the round.
type Resizable interface {
	Resize(w, h int)
}

// Tunable is implemented by games that accept a difficulty preset for one
// instance, overriding the process-wide default set from the command line.
type Tunable interface {
	SetPreset(name string) error
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet reset, game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
