package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bullet-hell/internal/core"
	"github.com/vovakirdan/bullet-hell/internal/platform/recorder"
	"github.com/vovakirdan/bullet-hell/internal/registry"
	"github.com/vovakirdan/bullet-hell/internal/storage"
)

// Options configure a terminal game session.
type Options struct {
	TickRate  int   // Simulation ticks per second
	HoldTicks int   // Key hold window, see HeldKeys
	Seed      int64 // 0 picks a time-based seed
	Width     int   // Initial terminal size; updated on resize
	Height    int
}

// Model is the Bubble Tea model for a running game.
type Model struct {
	game   registry.Game
	logger *log.Logger
	opts   Options

	screen *core.Screen
	frame  *core.Frame
	keys   *KeyMapper
	held   *HeldKeys

	rec      *recorder.Recorder
	quitting bool
}

// NewModel creates a model for game. store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		game:   game,
		logger: logger,
		opts:   opts,
		screen: core.NewScreen(opts.Width, playfieldRows(opts.Height)),
		frame:  &core.Frame{},
		keys:   NewKeyMapper(),
		held:   NewHeldKeys(opts.HoldTicks),
		rec:    recorder.New(store, logger, game.ID(), opts.Seed),
	}
}

// playfieldRows leaves the last terminal row for the status line.
func playfieldRows(height int) int {
	if height <= 1 {
		return 0
	}
	return height - 1
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(core.RuntimeConfig{TickRate: m.opts.TickRate, Seed: m.opts.Seed})
	m.logger.Info("game started", "mode", m.game.ID(), "seed", m.opts.Seed, "tps", m.opts.TickRate)
	return tickCmd(m.opts.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Width, m.opts.Height = msg.Width, msg.Height
		m.screen.Resize(msg.Width, playfieldRows(msg.Height))
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	keys, quit := m.keys.MapKey(msg)
	if quit {
		m.rec.Close()
		m.quitting = true
		return m, tea.Quit
	}
	m.held.Press(keys...)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.rec.Observe(m.game.Step(m.held.Frame()))
	m.held.Tick()
	return m, tickCmd(m.opts.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".bullethell", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	m.game.Render(m.frame)
	Rasterize(m.frame, m.screen)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.rec.State()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.frame)
	Rasterize(m.frame, m.screen)

	status := colorStyle(core.ColorGray).Render("q quit  ctrl+s screenshot")
	return RenderScreen(m.screen) + "\n" + status
}

// Run starts the Bubble Tea program for game and returns the final state.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, opts Options) (core.GameState, error) {
	p := tea.NewProgram(
		NewModel(game, store, logger, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.State(), nil
	}
	return core.GameState{}, nil
}
