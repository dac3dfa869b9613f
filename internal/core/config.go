package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Display frames per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay, 0 = from the clock
}

// ResolveSeed returns seed, or a seed taken from now when seed is 0.
func ResolveSeed(seed int64, now time.Time) int64 {
	if seed != 0 {
		return seed
	}
	if s := now.UnixNano(); s != 0 {
		return s
	}
	return 1
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // A finished round is waiting to be acknowledged
	Paused   bool // Whether the game is paused
}

// RoundResult describes a round that just ended.
type RoundResult struct {
	Score  int    // Score at the moment the round ended
	Length int    // Snake length at the moment the round ended
	Ticks  uint64 // Logic ticks played in the round
	Won    bool   // The snake filled the whole grid
}

// StepResult is returned by Game.Step() after each display frame.
type StepResult struct {
	State GameState

	// Ticked is true when the frame ran a logic tick.
	Ticked bool

	// Round is set on the single frame in which a round ended.
	Round *RoundResult
}
