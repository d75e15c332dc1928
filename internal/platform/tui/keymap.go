package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bullet-hell/internal/core"
)

// DefaultHoldTicks is how long a key counts as held after its last press.
// Terminals report presses and auto-repeats but never releases.
const DefaultHoldTicks = 6

// KeyMapper translates Bubble Tea key messages to logical keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to the logical keys it holds.
// Shifted movement keys also hold Slow.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (keys []core.Key, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return nil, true

	case "left", "a":
		return []core.Key{core.KeyLeft}, false
	case "right", "d":
		return []core.Key{core.KeyRight}, false
	case "up", "w":
		return []core.Key{core.KeyUp}, false
	case "down", "s":
		return []core.Key{core.KeyDown}, false

	case "shift+left", "A":
		return []core.Key{core.KeyLeft, core.KeySlow}, false
	case "shift+right", "D":
		return []core.Key{core.KeyRight, core.KeySlow}, false
	case "shift+up", "W":
		return []core.Key{core.KeyUp, core.KeySlow}, false
	case "shift+down", "S":
		return []core.Key{core.KeyDown, core.KeySlow}, false

	case " ":
		return []core.Key{core.KeyFire}, false
	case "enter":
		return []core.Key{core.KeyReturn}, false
	}
	return nil, false
}

// HeldKeys emulates key-down state from a stream of presses: a key stays
// down for a fixed number of ticks after it was last pressed.
type HeldKeys struct {
	hold int
	left map[core.Key]int
}

// NewHeldKeys creates a tracker with the given hold window in ticks.
// Non-positive values use DefaultHoldTicks.
func NewHeldKeys(hold int) *HeldKeys {
	if hold <= 0 {
		hold = DefaultHoldTicks
	}
	return &HeldKeys{hold: hold, left: make(map[core.Key]int)}
}

// Press marks keys as held for the full window.
func (h *HeldKeys) Press(keys ...core.Key) {
	for _, k := range keys {
		h.left[k] = h.hold
	}
}

// Frame returns the keys currently held.
func (h *HeldKeys) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for k := range h.left {
		f.Set(k)
	}
	return f
}

// Tick ages every held key by one tick, releasing expired ones.
func (h *HeldKeys) Tick() {
	for k, n := range h.left {
		if n <= 1 {
			delete(h.left, k)
			continue
		}
		h.left[k] = n - 1
	}
}

// Release drops every held key.
func (h *HeldKeys) Release() {
	clear(h.left)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
