package core

// Key is a logical key the simulation reads, abstracted from physical keys.
type Key int

const (
	KeyLeft   Key = iota // A, Left arrow
	KeyRight             // D, Right arrow
	KeyUp                // W, Up arrow
	KeyDown              // S, Down arrow
	KeySlow              // Shift - halves movement speed
	KeyFire              // Space - fire, start a game from the title
	KeyReturn            // Enter - return to title after a loss
)

// Keys lists every logical key in declaration order.
var Keys = []Key{KeyLeft, KeyRight, KeyUp, KeyDown, KeySlow, KeyFire, KeyReturn}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeySlow:
		return "Slow"
	case KeyFire:
		return "Fire"
	case KeyReturn:
		return "Return"
	default:
		return "Unknown"
	}
}

// InputFrame is the keyboard state for one simulation tick: the set of keys
// that are currently held down.
type InputFrame struct {
	Down map[Key]bool
}

// NewInputFrame creates an input frame with no keys held.
func NewInputFrame(keys ...Key) InputFrame {
	f := InputFrame{Down: make(map[Key]bool, len(keys))}
	for _, k := range keys {
		f.Down[k] = true
	}
	return f
}

// Set marks a key as held for this frame.
func (f *InputFrame) Set(k Key) {
	if f.Down == nil {
		f.Down = make(map[Key]bool)
	}
	f.Down[k] = true
}

// IsDown returns true if the key is held this frame.
func (f InputFrame) IsDown(k Key) bool {
	if f.Down == nil {
		return false
	}
	return f.Down[k]
}

// Clear releases all keys.
func (f *InputFrame) Clear() {
	for k := range f.Down {
		delete(f.Down, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Down {
		if v {
			clone.Down[k] = true
		}
	}
	return clone
}
