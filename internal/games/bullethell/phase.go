package bullethell

import "github.com/vovakirdan/bullet-hell/internal/core"

// Step advances the world by one frame and returns the events it produced.
//
//	Title   -> Setup    when Fire is pressed
//	Setup   -> Playing  on the same tick, after resetting the run
//	Playing -> Lose     when an enemy projectile hits the player
//	Lose    -> Title    when Return is pressed
//
// "Pressed" means down this frame and up the previous one, so a key held
// across a transition does not also trigger the next one.
func (w *World) Step(in core.InputFrame) []core.Event {
	w.events = nil
	w.frame++

	switch w.phase {
	case PhaseTitle:
		if w.pressed(in, core.KeyFire) {
			w.setPhase(PhaseSetup)
		}

	case PhaseSetup:
		w.setup()
		w.setPhase(PhasePlaying)

	case PhasePlaying:
		w.controlPlayer(in)
		w.spawn()
		w.updateEnemies()
		w.updateStars()
		w.updateProjectiles()

	case PhaseLose:
		if w.pressed(in, core.KeyReturn) {
			w.setPhase(PhaseTitle)
		}
	}

	w.prev = in.Clone()
	return w.events
}

func (w *World) pressed(in core.InputFrame, k core.Key) bool {
	return in.IsDown(k) && !w.prev.IsDown(k)
}
