// Package headless steps a game without any presentation, for traces,
// benchmarks and tests.
package headless

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/vovakirdan/bullet-hell/internal/core"
	"github.com/vovakirdan/bullet-hell/internal/registry"
)

// Script returns the held keys for a frame. Frames are numbered from 1.
type Script func(frame int) core.InputFrame

// Idle holds no keys.
func Idle(int) core.InputFrame {
	return core.NewInputFrame()
}

// FireEvery presses fire on frame 1 and every k-th frame after it, and
// holds no other key. k <= 1 holds fire on every frame.
func FireEvery(k int) Script {
	return func(frame int) core.InputFrame {
		if k <= 1 || frame == 1 || frame%k == 0 {
			return core.NewInputFrame(core.KeyFire)
		}
		return core.NewInputFrame()
	}
}

// Options control a headless run.
type Options struct {
	Frames         int  // Frames to step; must be positive
	TPS            int  // Ticks per second; 0 runs as fast as possible
	StopOnGameOver bool // End the run on the first game-over state
}

// Result is the outcome of a headless run.
type Result struct {
	Frames int // Frames actually stepped
	State  core.GameState
	Events []core.Event
}

// Run steps g with input from script. The game must already be Reset.
// Cancelling ctx stops the run between frames and returns what was
// collected so far along with the context error.
func Run(ctx context.Context, g registry.Game, script Script, opts Options) (Result, error) {
	if opts.Frames <= 0 {
		return Result{}, errors.New("headless: frames must be positive")
	}
	if opts.TPS < 0 {
		return Result{}, fmt.Errorf("headless: invalid tps %d", opts.TPS)
	}
	if script == nil {
		script = Idle
	}

	var limiter *rate.Limiter
	if opts.TPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.TPS), 1)
	}

	var res Result
	for frame := 1; frame <= opts.Frames; frame++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return res, fmt.Errorf("headless: frame %d: %w", frame, err)
			}
		} else if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("headless: frame %d: %w", frame, err)
		}

		step := g.Step(script(frame))
		res.Frames = frame
		res.State = step.State
		res.Events = append(res.Events, step.Events...)

		if opts.StopOnGameOver && step.State.GameOver {
			break
		}
	}
	return res, nil
}
