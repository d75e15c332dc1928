// Package registry holds the game modes known to the binary. Modes register
// themselves from init functions so platforms can list and start them by ID.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/bullet-hell/internal/core"
)

// Game is the interface every game mode implements.
// Games contain pure logic: platforms own input polling, frame pacing and
// presentation.
type Game interface {
	// ID returns the mode identifier, also used as the score storage key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset creates a fresh simulation for the playfield size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame using the held keys.
	Step(in core.InputFrame) core.StepResult

	// Render describes the current state as an ordered frame.
	Render(dst *core.Frame)

	// State returns the current score and phase.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID          string
	Title       string
	Description string // One line for listings; may be empty
}

// Factory creates a new instance of a mode.
type Factory func() Game

// ErrUnknownMode is returned by Create for IDs that were never registered.
var ErrUnknownMode = errors.New("registry: unknown mode")

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry // Registration order
	byID    = make(map[string]int)
)

// Register adds a mode. It panics on an empty ID, a nil factory or an ID
// that is already taken; all of these are programming errors.
func Register(info GameInfo, f Factory) {
	if info.ID == "" || f == nil {
		panic("registry: mode needs an ID and a factory")
	}
	if info.Title == "" {
		info.Title = info.ID
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[info.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", info.ID))
	}
	byID[info.ID] = len(entries)
	entries = append(entries, entry{info: info, factory: f})
}

// List returns every registered mode in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}

// Lookup returns the description of a mode.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return GameInfo{}, false
	}
	return entries[i].info, true
}

// Create returns a new instance of the mode registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	i, ok := byID[id]
	var f Factory
	if ok {
		f = entries[i].factory
	}
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMode, id)
	}
	return f(), nil
}

// Exists reports whether a mode is registered as id.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
