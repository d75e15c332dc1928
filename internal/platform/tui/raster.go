package tui

import (
	"math"

	"github.com/vovakirdan/bullet-hell/internal/core"
)

// glyph is how a sprite looks in character cells.
type glyph struct {
	rune  rune
	color core.Color
}

var spriteGlyphs = map[core.Sprite]glyph{
	core.SpriteStar:       {'.', core.ColorGray},
	core.SpritePlayerShot: {'^', core.ColorBrightYellow},
	core.SpriteEnemyShot:  {'^', core.ColorMagenta},
	core.SpriteEnemy:      {'▓', core.ColorRed},
	core.SpritePlayer:     {'█', core.ColorBrightCyan},
}

const textColor = core.ColorBrightWhite

// flipped holds the glyph for runes turned upside down.
var flipped = map[rune]rune{'^': 'v', 'v': '^', '<': '>', '>': '<'}

func rotateGlyph(r rune, degrees float64) rune {
	if math.Mod(math.Abs(degrees), 360) != 180 {
		return r
	}
	if f, ok := flipped[r]; ok {
		return f
	}
	return r
}

// Rasterize draws a frame into a screen, scaling logical pixels to cells.
// Every visible sprite covers at least one cell. Text keeps its natural
// width and is anchored at its scaled position.
func Rasterize(f *core.Frame, s *core.Screen) {
	s.Clear()
	if f.Width <= 0 || f.Height <= 0 || s.Width() == 0 || s.Height() == 0 {
		return
	}
	sx := float64(s.Width()) / float64(f.Width)
	sy := float64(s.Height()) / float64(f.Height)

	for _, it := range f.Items {
		if it.IsText() {
			y := int(float64(it.Dst.Y) * sy)
			if it.Align == core.AlignCenter {
				s.DrawTextCentered(y, it.Text, textColor)
			} else {
				s.DrawText(int(float64(it.Dst.X)*sx), y, it.Text, textColor)
			}
			continue
		}

		g, ok := spriteGlyphs[it.Sprite]
		if !ok {
			continue
		}
		s.FillRect(scaleRect(it.Dst, sx, sy), rotateGlyph(g.rune, it.Rotation), g.color)
	}
}

// scaleRect maps a logical rectangle to the cells it touches.
func scaleRect(r core.Rect, sx, sy float64) core.Rect {
	x0 := int(math.Floor(float64(r.X) * sx))
	y0 := int(math.Floor(float64(r.Y) * sy))
	x1 := int(math.Ceil(float64(r.Right()) * sx))
	y1 := int(math.Ceil(float64(r.Bottom()) * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
