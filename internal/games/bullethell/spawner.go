package bullethell

import "github.com/vovakirdan/bullet-hell/internal/core"

// RNG is the source of randomness for spawning. *math/rand.Rand satisfies it;
// tests inject a seeded one for reproducible runs.
type RNG interface {
	// Intn returns a uniform integer in [0, n). n must be positive.
	Intn(n int) int
}

// randRange returns a uniform integer in [lo, hi).
func randRange(rng RNG, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo)
}

// spawn runs the periodic spawners: one enemy whenever the spawn timer runs
// out, and one star every other frame.
func (w *World) spawn() {
	if w.spawnTimer == 0 {
		w.spawnEnemy(randRange(w.rng, 0, w.width))
		w.spawnTimer = randRange(w.rng, w.cfg.Spawn.MinInterval, w.cfg.Spawn.MaxInterval)
	} else {
		w.spawnTimer--
	}

	w.starToggle = !w.starToggle
	if w.starToggle {
		w.spawnStar()
	}
}

// spawnEnemy adds an enemy at the top edge at horizontal position x.
func (w *World) spawnEnemy(x int) {
	e := Enemy{
		Pos:      core.Vec{X: x, Y: 0},
		Vel:      core.Vec{X: 0, Y: w.cfg.Enemy.Speed},
		Size:     core.Size{W: w.cfg.Enemy.Width, H: w.cfg.Enemy.Height},
		Cooldown: w.cfg.Enemy.FirstShotDelay,
	}
	w.enemies = append(w.enemies, e)
	w.emit(core.EventEnemySpawned, e.Pos, "")
}

// spawnStar adds a star at a random position on the top edge with a random
// downward speed.
func (w *World) spawnStar() {
	s := Star{
		Pos: core.Vec{X: randRange(w.rng, 0, w.width), Y: 0},
		Vel: core.Vec{X: 0, Y: randRange(w.rng, w.cfg.Stars.MinSpeed, w.cfg.Stars.MaxSpeed)},
	}
	w.stars = append(w.stars, s)
}
