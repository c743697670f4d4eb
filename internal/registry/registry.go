// Package registry holds the playable game variants. Variants register
// themselves in init() functions so the platform can list and create them
// without importing each one.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-reversi/internal/core"
)

// Game is the interface every variant implements. Games are driven by input
// only: the platform calls Step once per input event and Render before each
// redraw. Nothing here depends on Bubble Tea.
type Game interface {
	// ID returns the identifier used on the command line (e.g. "reversi-6").
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a new game on the opening position.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts the layout to a new screen size without touching the
	// game in progress.
	Resize(cfg core.RuntimeConfig)

	// Step applies one frame of input and returns the resulting state.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game into dst. The screen is pre-cleared.
	Render(dst *core.Screen)

	// State returns the current game state without consuming input.
	State() core.GameState
}

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, reset-ready instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
	order   []string // Registration order
)

// Register adds a game factory to the registry. It is meant for init()
// functions and panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	entries[id] = entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	}
	order = append(order, id)
}

// List returns all registered games in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(order))
	for _, id := range order {
		result = append(result, entries[id].info)
	}
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
