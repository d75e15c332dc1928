package bullethell

import "github.com/vovakirdan/bullet-hell/internal/core"

// controlPlayer applies movement and firing from the held keys.
//
// Diagonal movement is not normalised. The fire cooldown only counts down
// while the fire key is held; releasing it freezes the cooldown.
func (w *World) controlPlayer(in core.InputFrame) {
	step := w.cfg.Player.Speed
	if in.IsDown(core.KeySlow) {
		step /= 2
	}

	p := &w.player
	if in.IsDown(core.KeyLeft) {
		p.Pos.X -= step
	}
	if in.IsDown(core.KeyRight) {
		p.Pos.X += step
	}
	if in.IsDown(core.KeyUp) {
		p.Pos.Y -= step
	}
	if in.IsDown(core.KeyDown) {
		p.Pos.Y += step
	}

	if !in.IsDown(core.KeyFire) {
		return
	}
	if p.Cooldown == 0 {
		w.firePlayerShot()
		p.Cooldown = w.cfg.Player.FireCooldown
	} else {
		p.Cooldown--
	}
}

// firePlayerShot launches an upward projectile from the middle of the
// player's top edge.
func (w *World) firePlayerShot() {
	size := core.Size{W: w.cfg.PlayerShot.Width, H: w.cfg.PlayerShot.Height}
	pos := core.Vec{
		X: w.player.Pos.X + w.player.Size.W/2 - size.W/2,
		Y: w.player.Pos.Y,
	}
	vel := core.Vec{X: 0, Y: -w.cfg.PlayerShot.Speed}
	w.projectiles = append(w.projectiles, NewProjectile(OwnerPlayer, pos, vel, size))
	w.emit(core.EventPlayerShot, pos, "")
}
