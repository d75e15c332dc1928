package bullethell

import "github.com/vovakirdan/bullet-hell/internal/core"

// Player is the ship controlled by the keyboard.
type Player struct {
	Pos      core.Vec
	Size     core.Size
	Cooldown int // Frames until the next shot; only counts down while fire is held
}

// Rect returns the player's bounding rectangle.
func (p Player) Rect() core.Rect {
	return core.RectAt(p.Pos, p.Size)
}

// Enemy descends from the top edge and fires downward.
type Enemy struct {
	Pos      core.Vec
	Vel      core.Vec
	Size     core.Size
	Cooldown int
}

// Rect returns the enemy's bounding rectangle.
func (e Enemy) Rect() core.Rect {
	return core.RectAt(e.Pos, e.Size)
}

// Owner says who fired a projectile and therefore what it can damage.
type Owner int

const (
	OwnerPlayer Owner = iota // Damages enemies
	OwnerEnemy               // Damages the player
)

// Projectile is a shot in flight. Its owner is fixed at creation.
type Projectile struct {
	Pos   core.Vec
	Vel   core.Vec
	Size  core.Size
	owner Owner
}

// NewProjectile creates a projectile fired by owner.
func NewProjectile(owner Owner, pos, vel core.Vec, size core.Size) Projectile {
	return Projectile{Pos: pos, Vel: vel, Size: size, owner: owner}
}

// Owner returns who fired the projectile.
func (p Projectile) Owner() Owner {
	return p.owner
}

// Rect returns the projectile's bounding rectangle.
func (p Projectile) Rect() core.Rect {
	return core.RectAt(p.Pos, p.Size)
}

// Star is a decorative background particle. It never collides.
type Star struct {
	Pos core.Vec
	Vel core.Vec
}

// starSize is the fixed extent of every star.
var starSize = core.Size{W: 1, H: 1}

// Rect returns the star's bounding rectangle.
func (s Star) Rect() core.Rect {
	return core.RectAt(s.Pos, starSize)
}
