// Package recorder follows the runs of a game session for a platform:
// it counts play time, logs phase changes and saves each finished run to
// the score store exactly once.
package recorder

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bullet-hell/internal/core"
	"github.com/vovakirdan/bullet-hell/internal/storage"
)

// Recorder observes step results of one game. A nil store disables saving.
type Recorder struct {
	store  *storage.Store
	logger *log.Logger
	mode   string
	seed   int64

	state  core.GameState
	frames int  // Ticks spent in play during the current run
	saved  bool // Whether the current run has been saved
}

// New creates a recorder for runs of mode started with seed.
func New(store *storage.Store, logger *log.Logger, mode string, seed int64) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, logger: logger, mode: mode, seed: seed}
}

// Observe processes the result of one step.
func (r *Recorder) Observe(res core.StepResult) {
	for _, e := range res.Events {
		if e.Kind == core.EventPhaseChanged {
			r.logger.Debug("phase changed", "mode", r.mode, "frame", e.Frame, "phase", e.Detail)
		}
	}

	prev := r.state
	r.state = res.State

	switch {
	case res.State.Phase == "playing":
		if prev.Phase != "playing" {
			r.frames = 0
			r.saved = false
		}
		r.frames++
	case res.State.GameOver && !r.saved:
		r.save()
	}
}

// Close ends the session. Endless runs never reach a game-over screen, so
// an unsaved endless run with a score is saved here.
func (r *Recorder) Close() {
	if !strings.HasSuffix(r.mode, "_endless") || r.saved || r.state.Score == 0 {
		return
	}
	r.save()
}

// State returns the last observed game state.
func (r *Recorder) State() core.GameState {
	return r.state
}

// Frames returns how many ticks the current run has been in play.
func (r *Recorder) Frames() int {
	return r.frames
}

// save records the current run. Failures are logged and the game continues.
func (r *Recorder) save() {
	r.saved = true
	if r.store == nil {
		return
	}
	run := storage.Run{Mode: r.mode, Score: r.state.Score, Frames: r.frames, Seed: r.seed}
	if _, err := r.store.SaveRun(run); err != nil {
		r.logger.Warn("cannot save score", "mode", run.Mode, "err", err)
		return
	}
	r.logger.Info("score saved", "mode", run.Mode, "score", run.Score, "frames", run.Frames)
}
