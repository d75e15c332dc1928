package bullethell

import (
	"math/rand"

	"github.com/vovakirdan/bullet-hell/internal/config"
	"github.com/vovakirdan/bullet-hell/internal/core"
)

const (
	testW = 320
	testH = 180
)

// constRNG always returns the same value, clamped to the requested range.
type constRNG int

func (r constRNG) Intn(n int) int {
	if int(r) >= n {
		return n - 1
	}
	return int(r)
}

func newTestWorld(seed int64, opts Options) *World {
	return NewWorld(config.DefaultShooterConfig(), testW, testH, rand.New(rand.NewSource(seed)), opts)
}

// newPlayingWorld returns a freshly set up world in the playing phase.
func newPlayingWorld(rng RNG) *World {
	w := NewWorld(config.DefaultShooterConfig(), testW, testH, rng, Options{})
	w.setup()
	w.phase = PhasePlaying
	return w
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func countOwned(ps []Projectile, owner Owner) int {
	n := 0
	for _, p := range ps {
		if p.Owner() == owner {
			n++
		}
	}
	return n
}
