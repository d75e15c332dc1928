package bullethell

import "github.com/vovakirdan/bullet-hell/internal/core"

// updateProjectiles moves every projectile and resolves its collisions.
//
// A player projectile destroys every enemy it overlaps, scoring one point
// per enemy, and is consumed. An enemy projectile that overlaps the player
// ends the run. Out-of-bounds projectiles are dropped whether or not they
// hit anything. Collections are rebuilt in place, so removals never skip or
// revisit a survivor.
func (w *World) updateProjectiles() {
	kept := w.projectiles[:0]
	for _, p := range w.projectiles {
		p.Pos = p.Pos.Add(p.Vel)
		remove := w.outOfBounds(p)

		switch p.Owner() {
		case OwnerPlayer:
			if w.hitEnemies(p.Rect()) > 0 {
				remove = true
			}
		case OwnerEnemy:
			w.hitPlayer(p.Rect())
		}

		if !remove {
			kept = append(kept, p)
		}
	}
	w.projectiles = kept
}

// hitEnemies removes every enemy overlapping r and returns how many were hit.
func (w *World) hitEnemies(r core.Rect) int {
	hits := 0
	survivors := w.enemies[:0]
	for _, e := range w.enemies {
		if r.Intersects(e.Rect()) {
			hits++
			w.score++
			w.emit(core.EventEnemyDestroyed, e.Pos, "")
			continue
		}
		survivors = append(survivors, e)
	}
	w.enemies = survivors
	return hits
}

// hitPlayer ends the run if r overlaps the player. Only the first hit while
// playing has an effect.
func (w *World) hitPlayer(r core.Rect) {
	if w.opts.Endless || w.phase != PhasePlaying {
		return
	}
	if !r.Intersects(w.player.Rect()) {
		return
	}
	w.emit(core.EventPlayerHit, w.player.Pos, "")
	w.setPhase(PhaseLose)
}
