package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// ActionVelocity maps a direction action to a unit velocity.
func ActionVelocity(a core.Action) (core.Point, bool) {
	switch a {
	case core.ActionUp:
		return VelUp, true
	case core.ActionDown:
		return VelDown, true
	case core.ActionLeft:
		return VelLeft, true
	case core.ActionRight:
		return VelRight, true
	default:
		return Idle, false
	}
}

// Swipe tracks a single-pointer drag gesture and turns it into a direction
// once the pointer is released.
type Swipe struct {
	start  core.Point
	last   core.Point
	active bool
}

// Begin records where the gesture started.
func (s *Swipe) Begin(x, y int) {
	s.start = core.Pt(x, y)
	s.last = s.start
	s.active = true
}

// Move records the latest pointer position.
func (s *Swipe) Move(x, y int) {
	if !s.active {
		return
	}
	s.last = core.Pt(x, y)
}

// End finishes the gesture and returns its direction: the dominant axis of
// the displacement, horizontal only when it is strictly longer.
// A gesture that never moved yields ActionNone.
func (s *Swipe) End() core.Action {
	if !s.active {
		return core.ActionNone
	}
	s.active = false

	dx := s.last.X - s.start.X
	dy := s.last.Y - s.start.Y
	switch {
	case dx == 0 && dy == 0:
		return core.ActionNone
	case core.Abs(dx) > core.Abs(dy):
		if dx > 0 {
			return core.ActionRight
		}
		return core.ActionLeft
	case dy > 0:
		return core.ActionDown
	default:
		return core.ActionUp
	}
}
