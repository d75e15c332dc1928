package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the built-in shooter configuration.
// It mirrors defaults/shooter.yaml and is used if the embedded file is unusable.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Display: DisplayConfig{
			WindowWidth:  1280,
			WindowHeight: 720,
			Scale:        4,
		},
		Player: PlayerConfig{
			Width:        24,
			Height:       12,
			Speed:        2,
			FireCooldown: 30,
		},
		Enemy: EnemyConfig{
			Width:          10,
			Height:         10,
			Speed:          1,
			FirstShotDelay: 20,
			FireCooldown:   60,
		},
		PlayerShot: ShotConfig{
			Width:  8,
			Height: 11,
			Speed:  3,
		},
		EnemyShot: ShotConfig{
			Width:  5,
			Height: 8,
			Speed:  3,
		},
		Spawn: SpawnConfig{
			InitialDelay: 40,
			MinInterval:  20,
			MaxInterval:  180,
		},
		Stars: StarConfig{
			MinSpeed: 2,
			MaxSpeed: 5,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultShooterYAML
}
