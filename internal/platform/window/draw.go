package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/bullet-hell/internal/core"
)

var textColor = color.White

// spriteGeoM places an image of size src into dst, rotated about the
// centre of dst by degrees clockwise.
func spriteGeoM(src core.Size, dst core.Rect, degrees float64) ebiten.GeoM {
	var m ebiten.GeoM
	if src.W == 0 || src.H == 0 {
		return m
	}
	m.Translate(-float64(src.W)/2, -float64(src.H)/2)
	m.Scale(float64(dst.W)/float64(src.W), float64(dst.H)/float64(src.H))
	if degrees != 0 {
		m.Rotate(degrees * math.Pi / 180)
	}
	m.Translate(float64(dst.X)+float64(dst.W)/2, float64(dst.Y)+float64(dst.H)/2)
	return m
}

// textX returns where a label starts on a playfield of the given width.
func textX(item core.DrawItem, width, textWidth float64) float64 {
	if item.Align == core.AlignCenter {
		return math.Floor((width - textWidth) / 2)
	}
	return float64(item.Dst.X)
}

// drawFrame presents a frame description onto screen.
func (a *App) drawFrame(screen *ebiten.Image, f *core.Frame) {
	for _, it := range f.Items {
		if it.IsText() {
			w, _ := text.Measure(it.Text, a.face, 0)
			op := &text.DrawOptions{}
			op.GeoM.Translate(textX(it, float64(f.Width), w), float64(it.Dst.Y))
			op.ColorScale.ScaleWithColor(textColor)
			text.Draw(screen, it.Text, a.face, op)
			continue
		}

		img, ok := a.images[it.Sprite]
		if !ok {
			continue
		}
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM = spriteGeoM(core.Size{W: b.Dx(), H: b.Dy()}, it.Dst, it.Rotation)
		screen.DrawImage(img, op)
	}
}
