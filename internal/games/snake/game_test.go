package snake

import (
	"testing"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
)

func newTestGame(seed int64) *Game {
	g := New(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: seed})
	return g
}

// stepFrames runs n empty display frames and returns the rounds that ended.
func stepFrames(g *Game, n int) []core.RoundResult {
	var rounds []core.RoundResult
	input := core.NewInputFrame()
	for range n {
		if res := g.Step(input); res.Round != nil {
			rounds = append(rounds, *res.Round)
		}
	}
	return rounds
}

func TestResetStartsIdleSingleCell(t *testing.T) {
	g := newTestGame(1)

	if g.Snake().Len() != 1 {
		t.Errorf("Snake length = %d, expected 1", g.Snake().Len())
	}
	if g.Snake().Velocity() != Idle {
		t.Errorf("Snake velocity = %v, expected idle", g.Snake().Velocity())
	}
	if g.Snake().Occupies(g.apple) {
		t.Error("Apple spawned on the snake")
	}
	if !g.apple.In(20) || !g.Snake().Head().In(20) {
		t.Errorf("Spawned outside the grid: snake %v, apple %v", g.Snake().Head(), g.apple)
	}
	if g.Score() != 0 {
		t.Errorf("Score = %d, expected 0", g.Score())
	}
}

func TestEatingApple(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		g := newTestGame(seed)
		g.SetSnake(NewSnakeFrom([]core.Point{{X: 5, Y: 5}}, VelRight, 20))
		g.SetApple(core.Pt(6, 5))

		if r := g.Tick(); r != nil {
			t.Fatalf("seed %d: unexpected round end %+v", seed, r)
		}

		if g.Snake().Len() != 2 || len(g.snake.cells) != 2 {
			t.Errorf("seed %d: length = %d, expected 2", seed, g.Snake().Len())
		}
		if g.Snake().Head() != core.Pt(6, 5) {
			t.Errorf("seed %d: head = %v, expected (6,5)", seed, g.Snake().Head())
		}
		if s := g.Score(); s < 80 || s >= 120 {
			t.Errorf("seed %d: score = %d, expected value in [80,120)", seed, s)
		}
		if g.apple == core.Pt(6, 5) || g.Snake().Occupies(g.apple) {
			t.Errorf("seed %d: apple not respawned on a free cell: %v", seed, g.apple)
		}
	}
}

func TestSelfCollisionResetsRound(t *testing.T) {
	g := newTestGame(7)
	g.score = 450
	g.SetApple(core.Pt(15, 15))
	g.SetSnake(NewSnakeFrom([]core.Point{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 3}}, VelRight, 20))

	r := g.Tick()
	if r == nil {
		t.Fatal("Expected the round to end")
	}
	if r.Score != 450 || r.Length != 3 || r.Won {
		t.Errorf("RoundResult = %+v, expected score 450, length 3, lost", r)
	}

	if g.Score() != 0 {
		t.Errorf("Score = %d, expected 0", g.Score())
	}
	if g.Snake().Len() != 1 || g.Snake().Velocity() != Idle {
		t.Errorf("Expected fresh idle single-cell snake, got len %d vel %v", g.Snake().Len(), g.Snake().Velocity())
	}
	if g.Snake().Occupies(g.apple) {
		t.Error("Apple respawned on the new snake")
	}
	if g.notice == nil || !g.State().GameOver {
		t.Error("Game over notice should be up")
	}
}

func TestCollisionResetsExactlyOnce(t *testing.T) {
	g := newTestGame(3)
	g.SetApple(core.Pt(15, 15))
	g.SetSnake(NewSnakeFrom([]core.Point{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 3}}, VelRight, 20))

	// Frame 10 runs the tick that ends the round
	rounds := stepFrames(g, 10)
	if len(rounds) != 1 {
		t.Fatalf("Expected 1 round end, got %d", len(rounds))
	}
	age := g.Age()
	head := g.Snake().Head()
	apple := g.apple

	// The notice holds the game; nothing else happens while it is up
	if rounds := stepFrames(g, 100); len(rounds) != 0 {
		t.Errorf("Round ended %d more times while the notice was up", len(rounds))
	}
	if g.Age() != age || g.Snake().Head() != head || g.apple != apple {
		t.Error("Game advanced while the notice was up")
	}

	input := core.NewInputFrame()
	input.Set(core.ActionConfirm)
	g.Step(input)
	if g.notice != nil {
		t.Error("Confirm should dismiss the notice")
	}
	if g.Age() != age+1 {
		t.Errorf("Age = %d after acknowledgement frame, expected %d", g.Age(), age+1)
	}
}

func TestFullGridIsWin(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.Size = 2
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 1})

	g.SetSnake(NewSnakeFrom([]core.Point{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, VelRight, 2))
	g.SetApple(core.Pt(1, 0))

	r := g.Tick()
	if r == nil || !r.Won {
		t.Fatalf("Filling the grid should win, got %+v", r)
	}
	if r.Length != 4 {
		t.Errorf("Winning length = %d, expected 4", r.Length)
	}
	if g.Snake().Len() != 1 || g.Score() != 0 {
		t.Error("A won round should reset like a lost one")
	}
	if g.Snapshot().State != StateWin {
		t.Errorf("Snapshot state = %s, expected %s", g.Snapshot().State, StateWin)
	}
}

func TestSpawnAppleAvoidsSnake(t *testing.T) {
	g := newTestGame(99)

	// Snake covering all but one cell leaves exactly one choice
	var cells []core.Point
	for y := range 20 {
		for x := range 20 {
			if x == 13 && y == 17 {
				continue
			}
			cells = append(cells, core.Pt(x, y))
		}
	}
	g.SetSnake(NewSnakeFrom(cells, Idle, 20))
	if !g.SpawnApple() {
		t.Fatal("SpawnApple failed with one free cell")
	}
	if g.apple != core.Pt(13, 17) {
		t.Errorf("Apple = %v, expected the only free cell (13,17)", g.apple)
	}

	// Partly filled boards
	for i := 1; i < 200; i++ {
		g.SetSnake(NewSnakeFrom(cells[:i*2], Idle, 20))
		g.SpawnApple()
		if g.Snake().Occupies(g.apple) {
			t.Fatalf("Apple spawned on snake cell %v", g.apple)
		}
	}
}

func TestThrottleRunsEveryIntervalFrames(t *testing.T) {
	g := newTestGame(5)
	input := core.NewInputFrame()

	for frame := 1; frame <= 35; frame++ {
		res := g.Step(input)
		want := frame%10 == 0
		if res.Ticked != want {
			t.Errorf("frame %d: Ticked = %v, expected %v", frame, res.Ticked, want)
		}
	}
	if g.Age() != 35 {
		t.Errorf("Age = %d, expected 35", g.Age())
	}
}

func TestStepSteersSnake(t *testing.T) {
	g := newTestGame(11)
	g.SetApple(g.Snake().Head().Add(core.Pt(0, 5)).Wrap(20))
	start := g.Snake().Head()

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	if g.Snake().Velocity() != VelLeft {
		t.Fatalf("Velocity = %v, expected left", g.Snake().Velocity())
	}

	stepFrames(g, 9)
	want := start.Add(VelLeft).Wrap(20)
	if g.Snake().Head() != want {
		t.Errorf("Head = %v after one tick, expected %v", g.Snake().Head(), want)
	}
}

func TestStepAppliesDirectionsInOrder(t *testing.T) {
	g := newTestGame(2)
	g.SetSnake(NewSnakeFrom([]core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}}, VelRight, 20))

	// Both turns are legal against the last move; the later one wins
	input := core.NewInputFrame()
	input.Set(core.ActionDown)
	input.Set(core.ActionUp)
	g.Step(input)

	if g.Snake().Velocity() != VelUp {
		t.Errorf("Velocity = %v, expected up", g.Snake().Velocity())
	}
}

func TestQuickTurnsCannotReverse(t *testing.T) {
	g := newTestGame(2)
	g.SetApple(core.Pt(15, 15))
	g.SetSnake(NewSnakeFrom([]core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, VelRight, 20))

	// Left would point back at the neck: the snake last moved right
	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	input.Set(core.ActionLeft)

	var rounds []core.RoundResult
	if res := g.Step(input); res.Round != nil {
		rounds = append(rounds, *res.Round)
	}
	rounds = append(rounds, stepFrames(g, 9)...)

	if len(rounds) != 0 {
		t.Fatalf("Snake folded onto itself: %+v", rounds)
	}
	if g.Snake().Head() != core.Pt(5, 4) {
		t.Errorf("Head = %v, expected (5,4) after turning up", g.Snake().Head())
	}

	// After the upward move, left is a legal turn
	input.Clear()
	input.Set(core.ActionLeft)
	g.Step(input)
	if g.Snake().Velocity() != VelLeft {
		t.Errorf("Velocity = %v, expected left", g.Snake().Velocity())
	}
}

func TestPauseHaltsFrames(t *testing.T) {
	g := newTestGame(4)

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("Expected paused state")
	}
	stepFrames(g, 50)
	if g.Age() != 0 {
		t.Errorf("Age = %d while paused, expected 0", g.Age())
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("Snapshot state = %s, expected %s", g.Snapshot().State, StatePaused)
	}

	g.Step(pause)
	if g.State().Paused || g.Age() != 1 {
		t.Errorf("Unpause frame should count: paused=%v age=%d", g.State().Paused, g.Age())
	}
}

func TestResizeRestartsRoundKeepingScore(t *testing.T) {
	g := New(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 8, ScreenW: 120, ScreenH: 40})
	g.SetSnake(NewSnakeFrom([]core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}, VelRight, 20))
	g.score = 300
	stepFrames(g, 3)

	g.Resize(60, 40)

	if g.Score() != 300 {
		t.Errorf("Score = %d after resize, expected 300", g.Score())
	}
	if g.Snake().Len() != 1 || g.Snake().Velocity() != Idle {
		t.Error("Resize should put a fresh snake on the board")
	}
	if g.Snake().Occupies(g.apple) {
		t.Error("Apple respawned on the snake")
	}
	if g.Age() != 3 {
		t.Errorf("Age = %d after resize, expected 3", g.Age())
	}
	if g.Layout().Landscape {
		t.Error("60x40 should use the portrait layout")
	}
}

func TestRestartKeepsRoundTicks(t *testing.T) {
	g := newTestGame(6)
	g.SetApple(core.Pt(15, 15))
	g.SetSnake(NewSnakeFrom([]core.Point{{X: 0, Y: 3}}, VelRight, 20))
	for range 5 {
		g.Tick()
	}
	g.score = 300

	g.Restart()
	g.SetApple(core.Pt(15, 15))
	g.SetSnake(NewSnakeFrom([]core.Point{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 3}}, VelRight, 20))

	r := g.Tick()
	if r == nil {
		t.Fatal("Expected the round to end")
	}
	if r.Score != 300 || r.Ticks != 6 {
		t.Errorf("RoundResult = %+v, expected score 300 over 6 ticks", r)
	}
	if g.Snapshot().Ticks != 0 {
		t.Errorf("Ticks = %d in the new round, expected 0", g.Snapshot().Ticks)
	}
}

func TestTooSmallHalts(t *testing.T) {
	g := New(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 20, ScreenH: 10})

	stepFrames(g, 30)
	if g.Age() != 0 {
		t.Errorf("Age = %d on a too small screen, expected 0", g.Age())
	}
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, expected %s", g.Snapshot().State, StatePausedSmall)
	}

	g.Resize(80, 24)
	stepFrames(g, 10)
	if g.Age() != 10 {
		t.Errorf("Age = %d after growing the screen, expected 10", g.Age())
	}
}

func TestDifficultyShortensInterval(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.MinInterval = 4
	cfg.Difficulty.Progression = config.ProgressionConfig{Type: "score", MaxAt: 50}
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 1})

	g.SetSnake(NewSnakeFrom([]core.Point{{X: 5, Y: 5}}, VelRight, 20))
	g.SetApple(core.Pt(6, 5))
	g.Tick()

	if g.Interval() != 4 {
		t.Errorf("Interval = %d after scoring past max_at, expected 4", g.Interval())
	}

	// Losing the round restores the base speed
	g.SetApple(core.Pt(15, 15))
	g.SetSnake(NewSnakeFrom([]core.Point{{X: 3, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 3}}, VelRight, 20))
	g.Tick()
	if g.Interval() != 10 {
		t.Errorf("Interval = %d after round end, expected 10", g.Interval())
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(12345)
	g2 := newTestGame(12345)

	input := core.NewInputFrame()
	for i := range 2000 {
		input.Clear()
		switch i % 170 {
		case 20:
			input.Set(core.ActionDown)
		case 60:
			input.Set(core.ActionLeft)
		case 110:
			input.Set(core.ActionUp)
		case 150:
			input.Set(core.ActionRight)
		}
		if i%400 == 399 {
			input.Set(core.ActionConfirm)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("Snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestPlayScript(t *testing.T) {
	path, err := ParsePath("rr d.l")
	if err != nil {
		t.Fatalf("ParsePath() failed: %v", err)
	}
	want := []core.Action{core.ActionRight, core.ActionRight, core.ActionDown, core.ActionNone, core.ActionLeft}
	if len(path) != len(want) {
		t.Fatalf("ParsePath() = %v, expected %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("path[%d] = %v, expected %v", i, path[i], want[i])
		}
	}

	if _, err := ParsePath("RX"); err == nil {
		t.Error("ParsePath should reject unknown moves")
	}

	g := newTestGame(6)
	g.SetSnake(NewSnake(core.Pt(0, 0), 20))
	g.SetApple(core.Pt(15, 15))
	g.Play(path)
	// R, R, D, ., L on a single-cell snake
	if g.Snake().Head() != core.Pt(1, 2) {
		t.Errorf("Head = %v after script, expected (1,2)", g.Snake().Head())
	}
}
