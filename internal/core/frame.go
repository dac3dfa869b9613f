package core

import "time"

// Throttle admits one logic tick every Interval display frames.
// Its age counter only ever grows.
type Throttle struct {
	interval uint64
	age      uint64
}

// NewThrottle creates a throttle; intervals below 1 are treated as 1.
func NewThrottle(interval int) *Throttle {
	if interval < 1 {
		interval = 1
	}
	return &Throttle{interval: uint64(interval)}
}

// Frame counts one display frame and reports whether it is a logic tick.
func (t *Throttle) Frame() bool {
	t.age++
	return t.age%t.interval == 0
}

// Age returns the number of frames counted so far.
func (t *Throttle) Age() uint64 {
	return t.age
}

// Interval returns the number of frames per logic tick.
func (t *Throttle) Interval() int {
	return int(t.interval)
}

// SetInterval changes the tick spacing without touching the age.
func (t *Throttle) SetInterval(interval int) {
	if interval < 1 {
		interval = 1
	}
	t.interval = uint64(interval)
}

// maxCatchUp bounds how many frames one Advance call may return.
const maxCatchUp = 8

// FrameClock turns wall-clock time into a whole number of fixed-length
// frames. Hosts call Advance from whatever callback they have (terminal
// ticks, browser animation frames); the game is then stepped once per
// returned frame, so the game speed does not depend on the host's refresh rate.
type FrameClock struct {
	step    time.Duration
	acc     time.Duration
	last    time.Time
	started bool
}

// NewFrameClock creates a clock producing rate frames per second.
func NewFrameClock(rate int) *FrameClock {
	if rate < 1 {
		rate = 60
	}
	return &FrameClock{step: time.Second / time.Duration(rate)}
}

// Step returns the fixed frame duration.
func (c *FrameClock) Step() time.Duration {
	return c.step
}

// Advance records the current time and returns the number of frames that
// elapsed since the previous call. The first call starts the clock and
// returns one frame. Leftover time carries over to the next call.
func (c *FrameClock) Advance(now time.Time) int {
	if !c.started {
		c.started = true
		c.last = now
		return 1
	}

	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		return 0
	}

	c.acc += elapsed
	frames := int(c.acc / c.step)
	c.acc -= time.Duration(frames) * c.step

	if frames > maxCatchUp {
		frames = maxCatchUp
		c.acc = 0
	}
	return frames
}

// Reset forgets the previous timestamp, e.g. after the host was suspended.
func (c *FrameClock) Reset() {
	c.started = false
	c.acc = 0
}
