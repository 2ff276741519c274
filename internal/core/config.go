package core

// RuntimeConfig contains host parameters passed to a session at start.
type RuntimeConfig struct {
	ScreenW int   // Terminal width in characters
	ScreenH int   // Terminal height in characters
	Seed    int64 // RNG seed for deterministic mine placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a session.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	GameOver bool // A mine was revealed
	Won      bool // Every safe cell was revealed
}

// Ended reports whether the session reached a terminal state.
func (s GameState) Ended() bool {
	return s.GameOver || s.Won
}
