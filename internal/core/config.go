package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the playfield and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Logical playfield width in pixels
	ScreenH  int   // Logical playfield height in pixels
	TickRate int   // Simulation ticks per second (platforms without vsync)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// The playfield is a 1280x720 window divided by a pixel scale of 4.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  320,
		ScreenH:  180,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	Phase    string // Human-readable phase name
	GameOver bool   // Whether the run has been lost
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
