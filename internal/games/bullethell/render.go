package bullethell

import (
	"fmt"

	"github.com/vovakirdan/bullet-hell/internal/core"
)

// Rotation of enemy projectiles in degrees. Everything else is drawn upright.
const enemyShotRotation = 180

// Render describes the current world as an ordered frame: stars,
// projectiles, enemies, the player and the HUD, or a menu screen.
func (w *World) Render(dst *core.Frame) {
	dst.Reset(w.width, w.height)

	switch w.phase {
	case PhaseTitle:
		w.renderTitle(dst)
	case PhaseSetup, PhasePlaying:
		w.renderPlayfield(dst)
	case PhaseLose:
		w.renderLose(dst)
	}
}

func (w *World) renderTitle(dst *core.Frame) {
	top := w.height / 3
	dst.AddText("BULLET HELL", 0, top, core.AlignCenter)
	dst.AddText("Press SPACE to play", 0, top+24, core.AlignCenter)
	dst.AddText("WASD/arrows move, Shift slows", 0, top+48, core.AlignCenter)
}

func (w *World) renderPlayfield(dst *core.Frame) {
	for _, s := range w.stars {
		dst.AddSprite(core.SpriteStar, s.Rect(), 0)
	}
	for _, p := range w.projectiles {
		if p.Owner() == OwnerEnemy {
			dst.AddSprite(core.SpriteEnemyShot, p.Rect(), enemyShotRotation)
		} else {
			dst.AddSprite(core.SpritePlayerShot, p.Rect(), 0)
		}
	}
	for _, e := range w.enemies {
		dst.AddSprite(core.SpriteEnemy, e.Rect(), 0)
	}
	dst.AddSprite(core.SpritePlayer, w.player.Rect(), 0)

	dst.AddText(fmt.Sprintf("Score: %d", w.score), 4, 4, core.AlignLeft)
}

func (w *World) renderLose(dst *core.Frame) {
	top := w.height / 3
	dst.AddText("GAME OVER", 0, top, core.AlignCenter)
	dst.AddText(fmt.Sprintf("Final score: %d", w.score), 0, top+24, core.AlignCenter)
	dst.AddText("Press ENTER to return to title", 0, top+48, core.AlignCenter)
}
