package bullethell

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/bullet-hell/internal/core"
)

func TestRenderTitle(t *testing.T) {
	w := newTestWorld(1, Options{})
	var f core.Frame
	w.Render(&f)

	if f.Width != testW || f.Height != testH {
		t.Errorf("frame size = %dx%d", f.Width, f.Height)
	}
	for _, s := range core.Sprites {
		if f.Count(s) != 0 {
			t.Errorf("title screen drew %d %v sprites", f.Count(s), s)
		}
	}
	texts := f.Texts()
	if len(texts) == 0 || texts[0] != "BULLET HELL" {
		t.Errorf("unexpected title texts: %v", texts)
	}
}

func TestRenderPlayfieldOrder(t *testing.T) {
	w := newPlayingWorld(constRNG(0))
	w.stars = []Star{{Pos: core.Vec{X: 1, Y: 1}, Vel: core.Vec{Y: 2}}}
	w.enemies = []Enemy{idleEnemy(100, 50)}
	w.projectiles = []Projectile{
		NewProjectile(OwnerPlayer, core.Vec{X: 10, Y: 100}, core.Vec{Y: -3}, core.Size{W: 8, H: 11}),
		NewProjectile(OwnerEnemy, core.Vec{X: 20, Y: 100}, core.Vec{Y: 3}, core.Size{W: 5, H: 8}),
	}
	w.score = 7

	var f core.Frame
	w.Render(&f)

	var order []core.Sprite
	for _, it := range f.Items {
		order = append(order, it.Sprite)
	}
	want := []core.Sprite{
		core.SpriteStar,
		core.SpritePlayerShot,
		core.SpriteEnemyShot,
		core.SpriteEnemy,
		core.SpritePlayer,
		core.SpriteNone,
	}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("draw order = %v, expected %v", order, want)
	}

	if r := f.Items[1].Rotation; r != 0 {
		t.Errorf("player shot rotation = %v, expected 0", r)
	}
	if r := f.Items[2].Rotation; r != 180 {
		t.Errorf("enemy shot rotation = %v, expected 180", r)
	}
	if got := f.Items[4].Dst; got != w.Player().Rect() {
		t.Errorf("player drawn at %+v, expected %+v", got, w.Player().Rect())
	}

	hud := f.Items[5]
	if hud.Text != "Score: 7" || hud.Dst.X != 4 || hud.Dst.Y != 4 || hud.Align != core.AlignLeft {
		t.Errorf("unexpected score label: %+v", hud)
	}
}

func TestRenderLose(t *testing.T) {
	w := newPlayingWorld(constRNG(0))
	w.score = 3
	w.phase = PhaseLose

	var f core.Frame
	w.Render(&f)

	texts := f.Texts()
	if len(texts) != 3 {
		t.Fatalf("expected 3 lines on the lose screen, got %v", texts)
	}
	if texts[0] != "GAME OVER" || texts[1] != "Final score: 3" {
		t.Errorf("unexpected lose texts: %v", texts)
	}
	if f.Count(core.SpritePlayer) != 0 {
		t.Error("lose screen should not draw the playfield")
	}
}

func TestRenderReusesFrame(t *testing.T) {
	w := newPlayingWorld(constRNG(0))
	var f core.Frame
	w.Render(&f)
	first := len(f.Items)
	w.Render(&f)
	if len(f.Items) != first {
		t.Errorf("rendering twice accumulated items: %d then %d", first, len(f.Items))
	}
}
