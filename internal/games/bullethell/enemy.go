package bullethell

import "github.com/vovakirdan/bullet-hell/internal/core"

// updateEnemies moves every enemy, lets it fire when its cooldown is spent
// and drops enemies that scrolled past the bottom edge. Leaving through the
// other edges never removes an enemy.
func (w *World) updateEnemies() {
	alive := w.enemies[:0]
	for _, e := range w.enemies {
		e.Pos = e.Pos.Add(e.Vel)

		if e.Cooldown == 0 {
			w.fireEnemyShot(e)
			e.Cooldown = w.cfg.Enemy.FireCooldown
		} else {
			e.Cooldown--
		}

		if e.Pos.Y > w.height {
			continue
		}
		alive = append(alive, e)
	}
	w.enemies = alive
}

// fireEnemyShot launches a downward projectile from the middle of the
// enemy's top edge.
func (w *World) fireEnemyShot(e Enemy) {
	size := core.Size{W: w.cfg.EnemyShot.Width, H: w.cfg.EnemyShot.Height}
	pos := core.Vec{
		X: e.Pos.X + e.Size.W/2 - size.W/2,
		Y: e.Pos.Y,
	}
	vel := core.Vec{X: 0, Y: w.cfg.EnemyShot.Speed}
	w.projectiles = append(w.projectiles, NewProjectile(OwnerEnemy, pos, vel, size))
	w.emit(core.EventEnemyShot, pos, "")
}
