package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic mine placement.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed, 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}

// GameState represents the current state of a round.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Seconds  int  // Elapsed round time
	GameOver bool // Round ended, by loss or by win
	Won      bool // Every safe cell was revealed
}

// StepResult is returned by Game.Step() after input has been applied.
type StepResult struct {
	State   GameState
	Changed bool // Whether the board changed and the view needs a redraw
}
