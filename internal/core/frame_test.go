package core

import (
	"testing"
	"time"
)

func TestThrottleAdmitsEveryInterval(t *testing.T) {
	th := NewThrottle(10)

	var ticks []uint64
	for i := 0; i < 35; i++ {
		if th.Frame() {
			ticks = append(ticks, th.Age())
		}
	}

	expected := []uint64{10, 20, 30}
	if len(ticks) != len(expected) {
		t.Fatalf("Ticks at %v, expected %v", ticks, expected)
	}
	for i := range expected {
		if ticks[i] != expected[i] {
			t.Errorf("Tick %d at frame %d, expected %d", i, ticks[i], expected[i])
		}
	}
	if th.Age() != 35 {
		t.Errorf("Age() = %d, expected 35", th.Age())
	}
}

func TestThrottleMinimumInterval(t *testing.T) {
	th := NewThrottle(0)
	if th.Interval() != 1 {
		t.Fatalf("Interval() = %d, expected 1", th.Interval())
	}
	for i := 0; i < 5; i++ {
		if !th.Frame() {
			t.Error("Interval 1 should tick every frame")
		}
	}
}

func TestThrottleSetIntervalKeepsAge(t *testing.T) {
	th := NewThrottle(10)
	for i := 0; i < 7; i++ {
		th.Frame()
	}

	th.SetInterval(4)
	if th.Age() != 7 {
		t.Errorf("SetInterval should not reset age, got %d", th.Age())
	}
	if !th.Frame() {
		t.Error("Frame 8 should tick with interval 4")
	}
}

func TestFrameClockFirstCall(t *testing.T) {
	c := NewFrameClock(60)
	if got := c.Advance(time.Unix(100, 0)); got != 1 {
		t.Errorf("First Advance() = %d, expected 1", got)
	}
}

func TestFrameClockAccumulates(t *testing.T) {
	c := NewFrameClock(100) // 10ms frames
	base := time.Unix(0, 0)
	c.Advance(base)

	// 25ms -> 2 frames, 5ms carried
	if got := c.Advance(base.Add(25 * time.Millisecond)); got != 2 {
		t.Errorf("Advance(+25ms) = %d, expected 2", got)
	}
	// +5ms (total carried 10ms) -> 1 frame
	if got := c.Advance(base.Add(30 * time.Millisecond)); got != 1 {
		t.Errorf("Advance(+5ms) = %d, expected 1 with carry", got)
	}
	// +4ms -> nothing yet
	if got := c.Advance(base.Add(34 * time.Millisecond)); got != 0 {
		t.Errorf("Advance(+4ms) = %d, expected 0", got)
	}
}

func TestFrameClockIndependentOfCallbackRate(t *testing.T) {
	// A 144Hz host and a 30Hz host see the same number of 60Hz frames
	// over one second.
	for _, hostRate := range []int{30, 60, 144} {
		c := NewFrameClock(60)
		base := time.Unix(0, 0)
		c.Advance(base)

		total := 0
		interval := time.Second / time.Duration(hostRate)
		for i := 1; i <= hostRate; i++ {
			total += c.Advance(base.Add(time.Duration(i) * interval))
		}
		if total < 59 || total > 60 {
			t.Errorf("host %dHz produced %d frames in 1s, expected ~60", hostRate, total)
		}
	}
}

func TestFrameClockCapsCatchUp(t *testing.T) {
	c := NewFrameClock(60)
	base := time.Unix(0, 0)
	c.Advance(base)

	if got := c.Advance(base.Add(10 * time.Second)); got != maxCatchUp {
		t.Errorf("Advance after a stall = %d, expected cap %d", got, maxCatchUp)
	}
	if got := c.Advance(base.Add(10*time.Second + time.Millisecond)); got != 0 {
		t.Errorf("Stalled time should be dropped, got %d frames", got)
	}
}

func TestFrameClockBackwardsTime(t *testing.T) {
	c := NewFrameClock(60)
	base := time.Unix(10, 0)
	c.Advance(base)

	if got := c.Advance(base.Add(-time.Second)); got != 0 {
		t.Errorf("Backwards time should yield 0 frames, got %d", got)
	}

	c.Reset()
	if got := c.Advance(base); got != 1 {
		t.Errorf("Advance after Reset = %d, expected 1", got)
	}
}
