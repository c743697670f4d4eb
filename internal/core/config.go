package core

// RuntimeConfig is passed to games on Reset and Resize.
type RuntimeConfig struct {
	ScreenW int // Screen width in characters
	ScreenH int // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// MoveEntry is one line of a game's move log.
type MoveEntry struct {
	Number int    // 1-based move number
	Player string // Who moved, e.g. "Black"
	Square string // Where, in algebraic notation
	Flips  int    // Discs turned over
}

// GameState is the game status reported to the platform after each Step.
type GameState struct {
	Turn    string      // Side to move, e.g. "Black"
	Status  string      // Last message for the player, empty when none
	Moves   int         // Moves currently on the board
	Stalled bool        // The side to move has no legal placement
	Log     []MoveEntry // Applied moves, oldest first
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
