package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Age      uint64 // Display frames counted by the throttle
	Ticks    uint64 // Logic ticks in the current round
	Interval int
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	Velocity core.Point
	AppleX   int
	AppleY   int
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.layout.TooSmall:
		state = StatePausedSmall
	case g.notice != nil && g.notice.Won:
		state = StateWin
	case g.notice != nil:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	head := g.snake.Head()
	return Snapshot{
		Age:      g.throttle.Age(),
		Ticks:    g.ticks,
		Interval: g.throttle.Interval(),
		Score:    g.score,
		SnakeLen: g.snake.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		Velocity: g.snake.Velocity(),
		AppleX:   g.apple.X,
		AppleY:   g.apple.Y,
		State:    state,
	}
}
