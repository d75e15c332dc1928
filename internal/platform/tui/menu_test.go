package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func menuKey(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sendMenu(m MenuModel, keys ...string) (MenuModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(menuKey(k))
		m = next.(MenuModel)
	}
	return m, cmd
}

func TestMenuSelect(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"first mode", []string{"enter"}, "classic"},
		{"down then select", []string{"down", "enter"}, "classic_endless"},
		{"cursor stops at bottom", []string{"down", "down", "down", "enter"}, "classic_endless"},
		{"cursor stops at top", []string{"up", "j", "k", "k", " "}, "classic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := sendMenu(newMenuModel(nil, boardModes, 80, 24), tt.keys...)
			if m.Selected() == nil {
				t.Fatal("expected a selection")
			}
			if m.Selected().GameID != tt.want {
				t.Errorf("selected %q, want %q", m.Selected().GameID, tt.want)
			}
			if cmd == nil {
				t.Error("selecting should quit the menu program")
			}
		})
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m, _ := sendMenu(newMenuModel(nil, boardModes, 80, 24), "tab")
	if !m.WantsScoreboard() || m.Selected() != nil {
		t.Error("tab should request the scoreboard without selecting")
	}

	m, _ = sendMenu(newMenuModel(nil, boardModes, 80, 24), "q")
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestMenuShowsBestScores(t *testing.T) {
	store := openStore(t)
	seedRuns(t, store, "classic_endless", 8, 21)

	m := newMenuModel(store, boardModes, 80, 24)

	if m.items[0].HighScore != 0 || m.items[1].HighScore != 21 {
		t.Errorf("high scores = %d, %d, want 0, 21", m.items[0].HighScore, m.items[1].HighScore)
	}
	if view := m.View(); !strings.Contains(view, "best 21") {
		t.Errorf("view should show the best score:\n%s", view)
	}
}

func TestMenuShowsDescriptionOfCursor(t *testing.T) {
	modes := append(boardModes[:0:0], boardModes...)
	modes[1].Description = "practice"

	m := newMenuModel(nil, modes, 80, 24)
	if strings.Contains(m.View(), "practice") {
		t.Error("description of an unselected mode should be hidden")
	}

	m, _ = sendMenu(m, "down")
	if !strings.Contains(m.View(), "practice") {
		t.Error("description of the selected mode should be shown")
	}
}

func TestMenuResize(t *testing.T) {
	m := newMenuModel(nil, boardModes, 80, 24)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if w, h := next.(MenuModel).Size(); w != 120 || h != 40 {
		t.Errorf("Size() = %dx%d, want 120x40", w, h)
	}
}
