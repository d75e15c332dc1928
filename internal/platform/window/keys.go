package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/bullet-hell/internal/core"
)

// bindings maps each logical key to the physical keys that hold it.
var bindings = map[core.Key][]ebiten.Key{
	core.KeyLeft:   {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.KeyRight:  {ebiten.KeyD, ebiten.KeyArrowRight},
	core.KeyUp:     {ebiten.KeyW, ebiten.KeyArrowUp},
	core.KeyDown:   {ebiten.KeyS, ebiten.KeyArrowDown},
	core.KeySlow:   {ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
	core.KeyFire:   {ebiten.KeySpace},
	core.KeyReturn: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
}

// quitKey ends the session.
const quitKey = ebiten.KeyEscape

// readInput builds an input frame from a key-down predicate.
func readInput(isDown func(ebiten.Key) bool) core.InputFrame {
	in := core.NewInputFrame()
	for k, phys := range bindings {
		for _, p := range phys {
			if isDown(p) {
				in.Set(k)
				break
			}
		}
	}
	return in
}
