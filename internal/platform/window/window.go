// Package window runs the shooter in a desktop window with Ebitengine.
// The simulation advances once per displayed frame.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/bullet-hell/internal/asset"
	"github.com/vovakirdan/bullet-hell/internal/core"
	"github.com/vovakirdan/bullet-hell/internal/platform/recorder"
	"github.com/vovakirdan/bullet-hell/internal/registry"
	"github.com/vovakirdan/bullet-hell/internal/storage"
)

// Options configure a windowed session.
type Options struct {
	Width  int // Window size in screen pixels
	Height int
	Scale  int   // Screen pixels per logical pixel
	Seed   int64 // 0 picks a time-based seed
}

// App implements ebiten.Game around a registered game.
type App struct {
	game   registry.Game
	rec    *recorder.Recorder
	logger *log.Logger

	width, height int // Logical playfield size
	frame         core.Frame
	images        map[core.Sprite]*ebiten.Image
	face          text.Face
	background    color.Color
}

// NewApp prepares game for a window. Sprites come from assets.
func NewApp(game registry.Game, assets *asset.Set, store *storage.Store, logger *log.Logger, opts Options) (*App, error) {
	if opts.Scale <= 0 {
		return nil, fmt.Errorf("window: invalid scale %d", opts.Scale)
	}
	if opts.Width < opts.Scale || opts.Height < opts.Scale {
		return nil, fmt.Errorf("window: %dx%d window is smaller than scale %d", opts.Width, opts.Height, opts.Scale)
	}
	if assets == nil {
		return nil, errors.New("window: no assets")
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	a := &App{
		game:       game,
		rec:        recorder.New(store, logger, game.ID(), opts.Seed),
		logger:     logger,
		width:      opts.Width / opts.Scale,
		height:     opts.Height / opts.Scale,
		images:     make(map[core.Sprite]*ebiten.Image, len(core.Sprites)),
		face:       text.NewGoXFace(asset.Font()),
		background: color.Black,
	}
	for _, s := range core.Sprites {
		a.images[s] = ebiten.NewImageFromImage(assets.Image(s))
	}

	game.Reset(core.RuntimeConfig{ScreenW: a.width, ScreenH: a.height, TickRate: 60, Seed: opts.Seed})
	logger.Info("game started", "mode", game.ID(), "seed", opts.Seed, "size", fmt.Sprintf("%dx%d", a.width, a.height))
	return a, nil
}

// Update steps the game with the keys held this frame.
func (a *App) Update() error {
	if ebiten.IsKeyPressed(quitKey) {
		a.rec.Close()
		return ebiten.Termination
	}
	a.rec.Observe(a.game.Step(readInput(ebiten.IsKeyPressed)))
	return nil
}

// Draw presents the current frame.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(a.background)
	a.game.Render(&a.frame)
	a.drawFrame(screen, &a.frame)
}

// Layout fixes the logical resolution; Ebitengine scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// State returns the last observed game state.
func (a *App) State() core.GameState {
	return a.rec.State()
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, assets *asset.Set, store *storage.Store, logger *log.Logger, opts Options) (core.GameState, error) {
	app, err := NewApp(game, assets, store, logger, opts)
	if err != nil {
		return core.GameState{}, err
	}

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(app); err != nil {
		return app.State(), fmt.Errorf("window: %w", err)
	}
	// Closing the window without Escape skips Update's cleanup.
	app.rec.Close()
	return app.State(), nil
}
