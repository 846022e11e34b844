package core

import "time"

// DefaultTick is the fixed simulation step.
const DefaultTick = 16 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Tick    time.Duration // Fixed simulation step (default 16ms)
	Seed    int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Tick:    DefaultTick,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// DT returns the step length in seconds.
func (c RuntimeConfig) DT() float64 {
	if c.Tick <= 0 {
		return DefaultTick.Seconds()
	}
	return c.Tick.Seconds()
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Leading player's score
	Round    int  // Current round number (1-based)
	GameOver bool // Whether the match has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State       GameState
	RoundEnded  bool   // A round transition happened this tick
	RoundWinner string // Winner color name, empty for a draw
}

// Standing is one player's score line.
type Standing struct {
	Name  string
	Color Color
	Score int
}
