// Package config provides YAML-based tuning configuration for the shooter
// and environment overrides for the command line.
package config

import "fmt"

// ShooterConfig contains all tuning parameters of the shooter.
type ShooterConfig struct {
	Display    DisplayConfig `yaml:"display"`
	Player     PlayerConfig  `yaml:"player"`
	Enemy      EnemyConfig   `yaml:"enemy"`
	PlayerShot ShotConfig    `yaml:"player_shot"`
	EnemyShot  ShotConfig    `yaml:"enemy_shot"`
	Spawn      SpawnConfig   `yaml:"spawn"`
	Stars      StarConfig    `yaml:"stars"`
}

// DisplayConfig defines the window and its pixel scale.
// The logical playfield is the window size divided by the scale.
type DisplayConfig struct {
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`
	Scale        int `yaml:"scale"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`         // Pixels per frame per held direction
	FireCooldown int `yaml:"fire_cooldown"` // Frames between shots while fire is held
}

// EnemyConfig defines descending enemies.
type EnemyConfig struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	Speed          int `yaml:"speed"`            // Downward pixels per frame
	FirstShotDelay int `yaml:"first_shot_delay"` // Cooldown at spawn
	FireCooldown   int `yaml:"fire_cooldown"`    // Cooldown after each shot
}

// ShotConfig defines a projectile kind.
type ShotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Speed  int `yaml:"speed"` // Pixels per frame along the firing direction
}

// SpawnConfig defines the enemy spawn timer.
type SpawnConfig struct {
	InitialDelay int `yaml:"initial_delay"` // Timer value at the start of a run
	MinInterval  int `yaml:"min_interval"`  // Inclusive lower bound of the reset value
	MaxInterval  int `yaml:"max_interval"`  // Exclusive upper bound of the reset value
}

// StarConfig defines background stars.
type StarConfig struct {
	MinSpeed int `yaml:"min_speed"` // Inclusive
	MaxSpeed int `yaml:"max_speed"` // Exclusive
}

// LogicalSize returns the playfield size in logical pixels.
func (c ShooterConfig) LogicalSize() (int, int) {
	if c.Display.Scale <= 0 {
		return c.Display.WindowWidth, c.Display.WindowHeight
	}
	return c.Display.WindowWidth / c.Display.Scale, c.Display.WindowHeight / c.Display.Scale
}

// Validate checks that every parameter is usable by the simulation.
func (c ShooterConfig) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"display.window_width", c.Display.WindowWidth},
		{"display.window_height", c.Display.WindowHeight},
		{"display.scale", c.Display.Scale},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"enemy.width", c.Enemy.Width},
		{"enemy.height", c.Enemy.Height},
		{"enemy.speed", c.Enemy.Speed},
		{"player_shot.width", c.PlayerShot.Width},
		{"player_shot.height", c.PlayerShot.Height},
		{"player_shot.speed", c.PlayerShot.Speed},
		{"enemy_shot.width", c.EnemyShot.Width},
		{"enemy_shot.height", c.EnemyShot.Height},
		{"enemy_shot.speed", c.EnemyShot.Speed},
		{"spawn.min_interval", c.Spawn.MinInterval},
		{"stars.min_speed", c.Stars.MinSpeed},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("config: %s must be positive, got %d", p.name, p.value)
		}
	}

	nonNegative := []struct {
		name  string
		value int
	}{
		{"player.fire_cooldown", c.Player.FireCooldown},
		{"enemy.first_shot_delay", c.Enemy.FirstShotDelay},
		{"enemy.fire_cooldown", c.Enemy.FireCooldown},
		{"spawn.initial_delay", c.Spawn.InitialDelay},
	}
	for _, p := range nonNegative {
		if p.value < 0 {
			return fmt.Errorf("config: %s must not be negative, got %d", p.name, p.value)
		}
	}

	if c.Display.WindowWidth < c.Display.Scale || c.Display.WindowHeight < c.Display.Scale {
		return fmt.Errorf("config: window %dx%d is smaller than scale %d",
			c.Display.WindowWidth, c.Display.WindowHeight, c.Display.Scale)
	}
	if c.Spawn.MaxInterval <= c.Spawn.MinInterval {
		return fmt.Errorf("config: spawn.max_interval (%d) must exceed spawn.min_interval (%d)",
			c.Spawn.MaxInterval, c.Spawn.MinInterval)
	}
	if c.Stars.MaxSpeed <= c.Stars.MinSpeed {
		return fmt.Errorf("config: stars.max_speed (%d) must exceed stars.min_speed (%d)",
			c.Stars.MaxSpeed, c.Stars.MinSpeed)
	}
	return nil
}
