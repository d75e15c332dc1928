package bullethell

// updateStars scrolls the background and drops stars below the bottom edge.
func (w *World) updateStars() {
	alive := w.stars[:0]
	for _, s := range w.stars {
		s.Pos = s.Pos.Add(s.Vel)
		if s.Pos.Y > w.height {
			continue
		}
		alive = append(alive, s)
	}
	w.stars = alive
}

// outOfBounds reports whether a projectile is fully above the top edge or
// past the bottom edge.
func (w *World) outOfBounds(p Projectile) bool {
	return p.Pos.Y+p.Size.H < 0 || p.Pos.Y > w.height
}
