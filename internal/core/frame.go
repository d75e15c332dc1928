package core

// Sprite is a logical sprite identifier. Platforms decide how to draw it.
type Sprite int

const (
	SpriteNone Sprite = iota // Text items carry no sprite
	SpritePlayer
	SpriteEnemy
	SpritePlayerShot
	SpriteEnemyShot
	SpriteStar
)

// String returns the asset name of the sprite.
func (s Sprite) String() string {
	switch s {
	case SpritePlayer:
		return "player"
	case SpriteEnemy:
		return "enemy"
	case SpritePlayerShot:
		return "projectile"
	case SpriteEnemyShot:
		return "enemy_projectile"
	case SpriteStar:
		return "star"
	default:
		return "none"
	}
}

// Sprites lists every drawable sprite.
var Sprites = []Sprite{SpritePlayer, SpriteEnemy, SpritePlayerShot, SpriteEnemyShot, SpriteStar}

// Align controls horizontal placement of text items.
type Align int

const (
	AlignLeft   Align = iota // Text starts at Dst.X
	AlignCenter              // Text is centered on the playfield, Dst.X is ignored
)

// DrawItem is one entry of a frame description: either a sprite blitted
// into Dst or a text label anchored at Dst.X, Dst.Y.
type DrawItem struct {
	Sprite   Sprite
	Text     string
	Dst      Rect
	Rotation float64 // Degrees clockwise, cosmetic only
	Align    Align
}

// IsText reports whether the item is a text label.
func (d DrawItem) IsText() bool {
	return d.Sprite == SpriteNone
}

// Frame is an ordered description of everything to present for one tick.
// Items are drawn in order, later items on top.
type Frame struct {
	Width  int // Logical playfield width
	Height int // Logical playfield height
	Items  []DrawItem
}

// Reset clears the frame for reuse, keeping its backing storage.
func (f *Frame) Reset(width, height int) {
	f.Width = width
	f.Height = height
	f.Items = f.Items[:0]
}

// AddSprite appends a sprite item.
func (f *Frame) AddSprite(s Sprite, dst Rect, rotation float64) {
	f.Items = append(f.Items, DrawItem{Sprite: s, Dst: dst, Rotation: rotation})
}

// AddText appends a text label at (x, y).
func (f *Frame) AddText(text string, x, y int, align Align) {
	f.Items = append(f.Items, DrawItem{Text: text, Dst: Rect{X: x, Y: y}, Align: align})
}

// Count returns how many sprite items of kind s the frame holds.
func (f *Frame) Count(s Sprite) int {
	n := 0
	for _, it := range f.Items {
		if it.Sprite == s {
			n++
		}
	}
	return n
}

// Texts returns the text labels in draw order.
func (f *Frame) Texts() []string {
	var out []string
	for _, it := range f.Items {
		if it.IsText() {
			out = append(out, it.Text)
		}
	}
	return out
}
