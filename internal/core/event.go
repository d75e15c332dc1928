package core

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventEnemySpawned EventKind = iota
	EventEnemyDestroyed
	EventPlayerShot
	EventEnemyShot
	EventPlayerHit
	EventPhaseChanged
)

// String returns a stable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventEnemySpawned:
		return "enemy_spawned"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventPlayerShot:
		return "player_shot"
	case EventEnemyShot:
		return "enemy_shot"
	case EventPlayerHit:
		return "player_hit"
	case EventPhaseChanged:
		return "phase_changed"
	default:
		return "unknown"
	}
}

// Event is emitted by the simulation for platforms, traces and tests.
type Event struct {
	Frame  int       // Simulation frame the event happened on
	Kind   EventKind // What happened
	Pos    Vec       // Where it happened, when meaningful
	Detail string    // Phase name for phase changes
}
