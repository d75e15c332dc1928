package bullethell

import (
	"testing"

	"github.com/vovakirdan/bullet-hell/internal/core"
)

func TestEnemyReachesBottomThenCulled(t *testing.T) {
	w := newPlayingWorld(constRNG(0))
	w.spawnEnemy(0)

	for i := 0; i < testH; i++ {
		w.updateEnemies()
	}
	if len(w.enemies) != 1 {
		t.Fatalf("enemy should still be alive after %d frames, have %d", testH, len(w.enemies))
	}
	if w.enemies[0].Pos.Y != testH {
		t.Fatalf("enemy y = %d, expected %d", w.enemies[0].Pos.Y, testH)
	}

	w.updateEnemies()
	if len(w.enemies) != 0 {
		t.Errorf("enemy below the bottom edge should be culled, have %d", len(w.enemies))
	}
}

func TestEnemyCullOnlyBelowBottom(t *testing.T) {
	w := newPlayingWorld(constRNG(0))
	w.enemies = []Enemy{
		{Pos: core.Vec{X: -50, Y: 10}, Vel: core.Vec{X: -1, Y: 0}, Size: core.Size{W: 10, H: 10}, Cooldown: 99},
		{Pos: core.Vec{X: 400, Y: 10}, Vel: core.Vec{X: 1, Y: 0}, Size: core.Size{W: 10, H: 10}, Cooldown: 99},
		{Pos: core.Vec{X: 10, Y: -40}, Vel: core.Vec{X: 0, Y: -1}, Size: core.Size{W: 10, H: 10}, Cooldown: 99},
		{Pos: core.Vec{X: 10, Y: testH}, Vel: core.Vec{X: 0, Y: 1}, Size: core.Size{W: 10, H: 10}, Cooldown: 99},
	}

	w.updateEnemies()

	if len(w.enemies) != 3 {
		t.Fatalf("expected 3 enemies left (only the bottom one culled), got %d", len(w.enemies))
	}
	for _, e := range w.enemies {
		if e.Pos.Y > testH {
			t.Errorf("enemy below the bottom edge survived: %+v", e.Pos)
		}
	}
}

func TestEnemyFiring(t *testing.T) {
	w := newPlayingWorld(constRNG(0))
	w.spawnEnemy(100)

	// Spawned with a cooldown of 20: fires on its 21st update.
	for i := 0; i < 20; i++ {
		w.updateEnemies()
	}
	if len(w.projectiles) != 0 {
		t.Fatalf("enemy fired early: %d projectiles", len(w.projectiles))
	}

	w.updateEnemies()
	if len(w.projectiles) != 1 {
		t.Fatalf("expected one enemy shot, got %d", len(w.projectiles))
	}
	shot := w.projectiles[0]
	e := w.enemies[0]
	if shot.Owner() != OwnerEnemy {
		t.Error("enemy shot should be enemy-owned")
	}
	if shot.Pos != (core.Vec{X: e.Pos.X + e.Size.W/2 - 2, Y: e.Pos.Y}) {
		t.Errorf("enemy shot at %+v, enemy at %+v", shot.Pos, e.Pos)
	}
	if shot.Vel != (core.Vec{X: 0, Y: 3}) {
		t.Errorf("enemy shot velocity = %+v, expected (0, 3)", shot.Vel)
	}
	if e.Cooldown != 60 {
		t.Errorf("enemy cooldown after firing = %d, expected 60", e.Cooldown)
	}

	// Next shot 61 updates later.
	for i := 0; i < 60; i++ {
		w.updateEnemies()
	}
	if len(w.projectiles) != 1 {
		t.Fatalf("enemy fired before its cooldown expired")
	}
	w.updateEnemies()
	if len(w.projectiles) != 2 {
		t.Errorf("expected second enemy shot, got %d projectiles", len(w.projectiles))
	}
}
