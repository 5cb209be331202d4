package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic puzzles.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for reproducible puzzles (0 = time-based)
	Side    int   // Board side override (0 = game/config default)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the observable state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Moves  int  // Moves made on the current puzzle
	Solved bool // Whether the current puzzle is solved
	Side   int  // Board side of the current puzzle
}
