package core

// DefaultTickRate is the number of logical ticks per second.
const DefaultTickRate = 30

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Output width (terminal cells or window pixels)
	ScreenH  int   // Output height
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed for deterministic gameplay, 0 = time based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the session's position in the instructions -> play -> game over flow.
type Phase int

const (
	PhaseInstructions Phase = iota // Waiting for any key to start
	PhasePlaying                   // Ticking the simulation
	PhaseGameOver                  // Showing final score, waiting for a key
	PhaseTerminal                  // Session finished, platform should exit
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseInstructions:
		return "instructions"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	case PhaseTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// GameState represents the current state of a session.
type GameState struct {
	Phase    Phase
	Score    int  // Obstacles cleared this run
	Ticks    int  // Ticks played this run
	GameOver bool // Whether the run has ended in a collision
	Paused   bool // Whether play is paused
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
	// Err is set when persisting the final score failed. It is fatal to the front end.
	Err error
}
