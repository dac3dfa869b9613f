package main

import (
	"testing"
	"time"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

func TestSnapshotGameSeed(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	now := time.Unix(1700000000, 0)

	_, seed, err := newSnapshotGame(cfg, 7, "", "", now)
	if err != nil {
		t.Fatalf("newSnapshotGame() failed: %v", err)
	}
	if seed != 7 {
		t.Errorf("seed = %d, expected the flag value 7", seed)
	}

	_, s1, _ := newSnapshotGame(cfg, 0, "", "", now)
	_, s2, _ := newSnapshotGame(cfg, 0, "", "", now.Add(time.Second))
	if s1 == 0 || s1 == s2 {
		t.Errorf("Unseeded runs got seeds %d and %d, expected distinct clock seeds", s1, s2)
	}

	// The same seed gives the same board
	g1, _, _ := newSnapshotGame(cfg, 99, "", "", now)
	g2, _, _ := newSnapshotGame(cfg, 99, "", "", now.Add(time.Hour))
	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Seeded boards differ: %+v vs %+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestSnapshotGamePlacement(t *testing.T) {
	cfg := config.DefaultSnakeConfig()

	game, _, err := newSnapshotGame(cfg, 3, "5,5 4,5 3,5", "9,5", time.Now())
	if err != nil {
		t.Fatalf("newSnapshotGame() failed: %v", err)
	}
	snap := game.Snapshot()
	if snap.SnakeLen != 3 || snap.HeadX != 5 || snap.HeadY != 5 || snap.Velocity != snake.VelRight {
		t.Errorf("Snake = %+v, expected length 3 at (5,5) heading right", snap)
	}
	if snap.AppleX != 9 || snap.AppleY != 5 {
		t.Errorf("Apple = (%d,%d), expected (9,5)", snap.AppleX, snap.AppleY)
	}

	// Four moves right eat the apple on the last one
	game.Play([]core.Action{core.ActionNone, core.ActionNone, core.ActionNone, core.ActionNone})
	if game.Score() < 80 || game.Snake().Len() != 4 {
		t.Errorf("Score %d length %d, expected the apple eaten", game.Score(), game.Snake().Len())
	}
}

func TestSnapshotGameBadPlacement(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	for _, tc := range []struct{ body, apple string }{
		{"5;5", ""},
		{"", "1,1 2,2"},
		{"", "x,1"},
	} {
		if _, _, err := newSnapshotGame(cfg, 1, tc.body, tc.apple, time.Now()); err == nil {
			t.Errorf("newSnapshotGame(body %q, apple %q) should fail", tc.body, tc.apple)
		}
	}
}
