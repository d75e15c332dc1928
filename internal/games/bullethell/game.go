package bullethell

import (
	"math/rand"

	"github.com/vovakirdan/bullet-hell/internal/config"
	"github.com/vovakirdan/bullet-hell/internal/core"
	"github.com/vovakirdan/bullet-hell/internal/registry"
)

// Registered game IDs.
const (
	ID        = "bullethell"
	EndlessID = "bullethell_endless"
)

// shooterConfig is the tuning applied to games created through the registry.
var shooterConfig = config.DefaultShooterConfig()

// SetConfig sets the tuning used by games created after this call.
func SetConfig(cfg config.ShooterConfig) {
	shooterConfig = cfg
}

// Game adapts a World to the registry.Game interface.
type Game struct {
	id    string
	title string
	opts  Options
	cfg   config.ShooterConfig
	world *World
}

// New creates the standard game with title and game-over screens.
func New() *Game {
	return NewWithConfig(shooterConfig, Options{})
}

// NewEndless creates the endless variant: straight into play, no losing.
func NewEndless() *Game {
	return NewWithConfig(shooterConfig, Options{Endless: true})
}

// NewWithConfig creates a game with explicit tuning and rules.
func NewWithConfig(cfg config.ShooterConfig, opts Options) *Game {
	g := &Game{id: ID, title: "Bullet Hell", opts: opts, cfg: cfg}
	if opts.Endless {
		g.id = EndlessID
		g.title = "Bullet Hell (Endless)"
	}
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset creates a fresh world. A zero playfield size falls back to the
// configured logical size.
func (g *Game) Reset(rc core.RuntimeConfig) {
	w, h := rc.ScreenW, rc.ScreenH
	if w <= 0 || h <= 0 {
		w, h = g.cfg.LogicalSize()
	}
	rng := rand.New(rand.NewSource(rc.Seed))
	g.world = NewWorld(g.cfg, w, h, rng, g.opts)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		g.Reset(core.DefaultConfig())
	}
	events := g.world.Step(in)
	return core.StepResult{State: g.State(), Events: events}
}

// Render describes the current game state.
func (g *Game) Render(dst *core.Frame) {
	if g.world == nil {
		dst.Reset(0, 0)
		return
	}
	g.world.Render(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Phase: PhaseTitle.String()}
	}
	return core.GameState{
		Score:    g.world.Score(),
		Phase:    g.world.Phase().String(),
		GameOver: g.world.Phase() == PhaseLose,
	}
}

// World exposes the simulation for inspection.
func (g *Game) World() *World {
	return g.world
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          ID,
		Title:       "Bullet Hell",
		Description: "Survive as long as you can; one hit ends the run",
	}, func() registry.Game {
		return New()
	})
	registry.Register(registry.GameInfo{
		ID:          EndlessID,
		Title:       "Bullet Hell (Endless)",
		Description: "Practice mode; enemy fire cannot hurt you",
	}, func() registry.Game {
		return NewEndless()
	})
}
