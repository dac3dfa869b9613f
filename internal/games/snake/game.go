// Package snake implements the grid snake game: a snake wrapping around a
// square toroidal grid, an apple, a score and rounds that end when the
// snake bites itself.
package snake

import (
	"math/rand"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

// spawnTries bounds rejection sampling before SpawnApple falls back to
// listing the free cells.
const spawnTries = 64

// Game holds the complete state of one game session.
type Game struct {
	cfg        config.SnakeConfig
	rng        *rand.Rand
	throttle   *core.Throttle
	difficulty *config.DifficultyManager

	snake *Snake
	apple core.Point
	score int
	ticks uint64 // Logic ticks in the current round

	screenW int
	screenH int
	layout  Layout

	notice *core.RoundResult // Finished round waiting to be acknowledged
	paused bool
}

// New creates a game with the given configuration. Call Reset before use.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

// Config returns the game configuration.
func (g *Game) Config() config.SnakeConfig {
	return g.cfg
}

// Reset initializes/restarts the game.
// A zero screen size means the host lays the board out itself, as pixel
// canvases do; the character layout is then never too small.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.throttle = core.NewThrottle(g.cfg.Timing.Interval)
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty, g.cfg.Timing.Interval)
	g.score = 0
	g.ticks = 0
	g.notice = nil
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.layout = Layout{}
	if cfg.ScreenW > 0 || cfg.ScreenH > 0 {
		g.layout = ComputeLayout(cfg.ScreenW, cfg.ScreenH, g.grid())
	}

	g.ResetSnake()
	g.SpawnApple()
}

// Resize adapts the layout to a new screen size and starts over with a new
// snake and apple. Score, tick count and frame age are kept.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.layout = ComputeLayout(w, h, g.grid())
	g.Restart()
}

// Restart puts a fresh snake and apple on the board without touching the
// score or the round's tick count. Pixel hosts call it when their canvas is
// resized.
func (g *Game) Restart() {
	g.ResetSnake()
	g.SpawnApple()
}

// ResetSnake replaces the snake with an idle single-cell snake at a random cell.
func (g *Game) ResetSnake() {
	n := g.grid()
	at := core.Pt(core.RandomInt(g.rng, 0, n), core.RandomInt(g.rng, 0, n))
	g.snake = NewSnake(at, n)
}

// SpawnApple moves the apple to a random cell not covered by the snake.
// Returns false if the snake fills the whole grid.
func (g *Game) SpawnApple() bool {
	n := g.grid()
	for range spawnTries {
		p := core.Pt(core.RandomInt(g.rng, 0, n), core.RandomInt(g.rng, 0, n))
		if !g.snake.Occupies(p) {
			g.apple = p
			return true
		}
	}

	// Crowded board: pick uniformly among the remaining cells
	var free []core.Point
	for y := range n {
		for x := range n {
			if p := core.Pt(x, y); !g.snake.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.apple = core.Pt(-1, -1)
		return false
	}
	g.apple = free[g.rng.Intn(len(free))]
	return true
}

// Step advances the game by one display frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionConfirm) {
		g.Acknowledge()
	}
	if input.Has(core.ActionPause) && g.notice == nil {
		g.paused = !g.paused
	}

	if g.halted() {
		return core.StepResult{State: g.State()}
	}

	for _, a := range input.Steps {
		g.Steer(a)
	}

	if !g.throttle.Frame() {
		return core.StepResult{State: g.State()}
	}

	round := g.Tick()
	return core.StepResult{State: g.State(), Ticked: true, Round: round}
}

// Steer applies a direction action to the snake. Returns whether the
// velocity changed.
func (g *Game) Steer(a core.Action) bool {
	v, ok := ActionVelocity(a)
	if !ok {
		return false
	}
	return g.snake.Steer(v)
}

// Tick runs one logic update: eat, move, collide. It returns the result of
// the round if the round ended in this tick.
func (g *Game) Tick() *core.RoundResult {
	eaten := g.snake.NextHead() == g.apple
	if eaten {
		g.snake.Grow()
		g.score += core.RandomInt(g.rng, g.cfg.Scoring.AppleMin, g.cfg.Scoring.AppleMax)
	}

	g.snake.Advance()
	g.ticks++

	if g.snake.BitesItself() {
		return g.endRound(false)
	}
	// Respawn after the move so the new head is never chosen
	if eaten && !g.SpawnApple() {
		return g.endRound(true)
	}

	g.throttle.SetInterval(g.difficulty.Interval(g.score, g.ticks))
	return nil
}

// endRound records the finished round and starts a new one right away.
// The result stays up as a notice until acknowledged.
func (g *Game) endRound(won bool) *core.RoundResult {
	result := &core.RoundResult{
		Score:  g.score,
		Length: g.snake.Len(),
		Ticks:  g.ticks,
		Won:    won,
	}
	g.notice = result

	g.ResetSnake()
	g.SpawnApple()
	g.score = 0
	g.ticks = 0
	g.throttle.SetInterval(g.cfg.Timing.Interval)

	return result
}

// Acknowledge dismisses the game over notice. Returns false if there was none.
func (g *Game) Acknowledge() bool {
	if g.notice == nil {
		return false
	}
	g.notice = nil
	return true
}

// SetPaused pauses or resumes the game.
func (g *Game) SetPaused(p bool) {
	g.paused = p
}

func (g *Game) halted() bool {
	return g.notice != nil || g.paused || g.layout.TooSmall
}

func (g *Game) grid() int {
	return g.cfg.Grid.Size
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.notice != nil,
		Paused:   g.paused,
	}
}

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Snake returns the current snake.
func (g *Game) Snake() *Snake { return g.snake }

// Layout returns the character layout for the current screen.
func (g *Game) Layout() Layout { return g.layout }

// Age returns the number of display frames that reached the throttle.
func (g *Game) Age() uint64 { return g.throttle.Age() }

// Interval returns the current number of frames per logic tick.
func (g *Game) Interval() int { return g.throttle.Interval() }

// SetApple places the apple. Intended for scripted scenarios.
func (g *Game) SetApple(p core.Point) {
	g.apple = p.Wrap(g.grid())
}

// SetSnake replaces the snake. Intended for scripted scenarios.
func (g *Game) SetSnake(s *Snake) {
	g.snake = s
}
