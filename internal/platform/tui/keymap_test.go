package tui

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bullet-hell/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		keys []core.Key
		quit bool
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, []core.Key{core.KeyLeft}, false},
		{"d", runeKey("d"), []core.Key{core.KeyRight}, false},
		{"w", runeKey("w"), []core.Key{core.KeyUp}, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, []core.Key{core.KeyDown}, false},
		{"shift arrow", tea.KeyMsg{Type: tea.KeyShiftUp}, []core.Key{core.KeyUp, core.KeySlow}, false},
		{"upper case", runeKey("A"), []core.Key{core.KeyLeft, core.KeySlow}, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Key{core.KeyFire}, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []core.Key{core.KeyReturn}, false},
		{"q", runeKey("q"), nil, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, nil, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, nil, true},
		{"unbound", runeKey("x"), nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			keys, quit := km.MapKey(tc.msg)
			if quit != tc.quit {
				t.Errorf("quit = %v, expected %v", quit, tc.quit)
			}
			if !reflect.DeepEqual(keys, tc.keys) {
				t.Errorf("keys = %v, expected %v", keys, tc.keys)
			}
		})
	}
}

func TestHeldKeysWindow(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.KeyLeft)

	for i := 0; i < 3; i++ {
		if !h.Frame().IsDown(core.KeyLeft) {
			t.Fatalf("key released after %d ticks, expected 3", i)
		}
		h.Tick()
	}
	if h.Frame().IsDown(core.KeyLeft) {
		t.Error("key still held after the window expired")
	}
}

func TestHeldKeysRepeatExtends(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(core.KeyFire)
	h.Tick()
	h.Press(core.KeyFire) // auto-repeat
	h.Tick()
	if !h.Frame().IsDown(core.KeyFire) {
		t.Error("auto-repeat should extend the hold")
	}
	h.Tick()
	if h.Frame().IsDown(core.KeyFire) {
		t.Error("key should release once repeats stop")
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(0)
	h.Press(core.KeyLeft, core.KeySlow)
	if got := h.Frame(); !got.IsDown(core.KeyLeft) || !got.IsDown(core.KeySlow) {
		t.Fatalf("pressed keys not held: %v", got.Down)
	}
	h.Release()
	if len(h.Frame().Down) != 0 {
		t.Error("Release() left keys held")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
