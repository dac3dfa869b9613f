package core

import (
	"math/rand"
	"testing"
)

func TestRandomRealRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		v := RandomReal(rng, 2.5, 7.5)
		if v < 2.5 || v >= 7.5 {
			t.Fatalf("RandomReal(2.5, 7.5) = %f, outside [2.5, 7.5)", v)
		}

		// Swapped arguments give the same range
		v = RandomReal(rng, 7.5, 2.5)
		if v < 2.5 || v >= 7.5 {
			t.Fatalf("RandomReal(7.5, 2.5) = %f, outside [2.5, 7.5)", v)
		}
	}
}

func TestRandomIntRange(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	seen := make(map[int]bool)

	for i := 0; i < 5000; i++ {
		v := RandomInt(rng, 80, 120)
		if v < 80 || v >= 120 {
			t.Fatalf("RandomInt(80, 120) = %d, outside [80, 120)", v)
		}
		seen[v] = true
	}

	if len(seen) != 40 {
		t.Errorf("Expected all 40 values of [80, 120) to appear, got %d", len(seen))
	}
}

func TestRandomIntGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 1000; i++ {
		v := RandomInt(rng, 20, 0)
		if v < 0 || v >= 20 {
			t.Fatalf("RandomInt(20, 0) = %d, outside [0, 20)", v)
		}
	}
}

func TestRandomDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))

	for i := 0; i < 100; i++ {
		if RandomInt(a, 0, 400) != RandomInt(b, 0, 400) {
			t.Fatal("Same seed should produce the same sequence")
		}
	}
}
