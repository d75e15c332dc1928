// Package bullethell implements a vertical arcade shooter: the player moves
// along both axes and fires upward while enemies spawn at the top edge,
// descend and fire back.
//
// All state lives in a World that is stepped once per displayed frame.
package bullethell

import (
	"github.com/vovakirdan/bullet-hell/internal/config"
	"github.com/vovakirdan/bullet-hell/internal/core"
)

// Phase is the current screen of the game.
type Phase int

const (
	PhaseTitle Phase = iota
	PhaseSetup
	PhasePlaying
	PhaseLose
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Options alter the rules of a World.
type Options struct {
	// Endless skips the title screen and makes the player immune to enemy
	// projectiles, so a run never ends.
	Endless bool
}

// World is the whole simulation: phase, entity collections, score and timers.
type World struct {
	cfg    config.ShooterConfig
	opts   Options
	width  int
	height int
	rng    RNG

	phase       Phase
	player      Player
	enemies     []Enemy
	projectiles []Projectile
	stars       []Star
	score       int

	spawnTimer int  // Frames until the next enemy
	starToggle bool // Stars spawn on every other frame

	frame  int
	prev   core.InputFrame
	events []core.Event
}

// NewWorld creates a world for a width x height playfield.
// It starts on the title screen, or in setup for endless worlds.
func NewWorld(cfg config.ShooterConfig, width, height int, rng RNG, opts Options) *World {
	w := &World{
		cfg:    cfg,
		opts:   opts,
		width:  width,
		height: height,
		rng:    rng,
		phase:  PhaseTitle,
		prev:   core.NewInputFrame(),
	}
	if opts.Endless {
		w.phase = PhaseSetup
	}
	return w
}

// Phase returns the current phase.
func (w *World) Phase() Phase {
	return w.phase
}

// Score returns the number of enemies destroyed this run.
func (w *World) Score() int {
	return w.score
}

// Frame returns how many ticks the world has been stepped.
func (w *World) Frame() int {
	return w.frame
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

// Enemies returns the live enemies. The slice is only valid until the next Step.
func (w *World) Enemies() []Enemy {
	return w.enemies
}

// Projectiles returns the live projectiles. The slice is only valid until the next Step.
func (w *World) Projectiles() []Projectile {
	return w.projectiles
}

// Stars returns the live stars. The slice is only valid until the next Step.
func (w *World) Stars() []Star {
	return w.stars
}

// setup starts a fresh run: empty collections, zero score, reset timers and
// a new player at the spawn position.
func (w *World) setup() {
	w.enemies = w.enemies[:0]
	w.projectiles = w.projectiles[:0]
	w.stars = w.stars[:0]
	w.score = 0
	w.spawnTimer = w.cfg.Spawn.InitialDelay
	w.starToggle = false
	w.player = w.newPlayer()
}

// newPlayer creates the player centered horizontally on the bottom edge.
func (w *World) newPlayer() Player {
	size := core.Size{W: w.cfg.Player.Width, H: w.cfg.Player.Height}
	return Player{
		Pos:      core.Vec{X: w.width/2 - size.W/2, Y: w.height - size.H},
		Size:     size,
		Cooldown: 0,
	}
}

func (w *World) setPhase(p Phase) {
	if w.phase == p {
		return
	}
	w.phase = p
	w.emit(core.EventPhaseChanged, core.Vec{}, p.String())
}

func (w *World) emit(kind core.EventKind, pos core.Vec, detail string) {
	w.events = append(w.events, core.Event{Frame: w.frame, Kind: kind, Pos: pos, Detail: detail})
}
