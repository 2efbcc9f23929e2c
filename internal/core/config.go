package core

import "time"

// DefaultDropInterval is the period of the automatic soft drop.
const DefaultDropInterval = 700 * time.Millisecond

// RuntimeConfig contains configuration passed to a game session at start.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	DropInterval time.Duration // Period of the automatic soft drop
	Seed         int64         // RNG seed for deterministic piece order
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		DropInterval: DefaultDropInterval,
		Seed:         0, // 0 means use current time in platform layer
	}
}

// Mode is the state of a game session.
type Mode int

const (
	ModeRunning Mode = iota
	ModePaused
	ModeGameOver
)

// String returns the status text shown by front ends.
func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// GameState is the summary a game reports to the platform after each command.
type GameState struct {
	Score int  // Current score
	Lines int  // Total lines cleared
	Mode  Mode // Running, paused or over
}

// GameOver reports whether the session has ended.
func (s GameState) GameOver() bool {
	return s.Mode == ModeGameOver
}

// Paused reports whether the session is paused.
func (s GameState) Paused() bool {
	return s.Mode == ModePaused
}

// StepResult is returned by Game.Step() after applying an input frame.
type StepResult struct {
	State GameState
	// Landed is the number of pieces that settled during the step.
	Landed int
	// Cleared is the number of lines removed during the step.
	Cleared int
}
