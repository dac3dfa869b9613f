package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Unit velocities. Idle is the velocity of a freshly spawned snake.
var (
	Idle      = core.Pt(0, 0)
	VelUp     = core.Pt(0, -1)
	VelDown   = core.Pt(0, 1)
	VelLeft   = core.Pt(-1, 0)
	VelRight  = core.Pt(1, 0)
	allowedVs = []core.Point{Idle, VelUp, VelDown, VelLeft, VelRight}
)

// Snake is an ordered list of grid cells, head first, moving with a
// velocity on a toroidal grid of the given size.
type Snake struct {
	cells    []core.Point
	velocity core.Point
	heading  core.Point // Velocity of the last Advance
	length   int
	grid     int
}

// NewSnake creates a single-cell idle snake at the given cell.
func NewSnake(at core.Point, grid int) *Snake {
	return &Snake{
		cells:  []core.Point{at.Wrap(grid)},
		length: 1,
		grid:   grid,
	}
}

// NewSnakeFrom creates a snake from explicit cells (head first).
// Mostly useful for setting up scenarios in tests and replays.
func NewSnakeFrom(cells []core.Point, velocity core.Point, grid int) *Snake {
	s := &Snake{
		cells:    make([]core.Point, len(cells)),
		velocity: velocity,
		heading:  velocity,
		length:   len(cells),
		grid:     grid,
	}
	for i, c := range cells {
		s.cells[i] = c.Wrap(grid)
	}
	return s
}

// Grow lengthens the snake by one cell. The new tail is a copy of the head;
// it is consumed by the next Advance, which drops the tail.
func (s *Snake) Grow() {
	s.length++
	s.cells = append(s.cells, s.cells[0])
}

// Advance moves the snake one step along its velocity.
func (s *Snake) Advance() {
	last := len(s.cells) - 1
	tail := s.cells[last]
	s.cells = s.cells[:last]

	// A single-cell snake has just lost its only cell.
	base := tail
	if s.length != 1 {
		base = s.cells[0]
	}
	head := base.Add(s.velocity).Wrap(s.grid)
	s.heading = s.velocity

	s.cells = append(s.cells, core.Point{})
	copy(s.cells[1:], s.cells[:len(s.cells)-1])
	s.cells[0] = head
}

// NextHead returns where the head will be after the next Advance.
func (s *Snake) NextHead() core.Point {
	return s.cells[0].Add(s.velocity).Wrap(s.grid)
}

// Steer changes the velocity unless it would reverse a snake that has a body.
// The reverse is taken from the last move, not from earlier steering since
// then, so two quick turns cannot fold the head back onto the neck.
// Returns whether the new velocity was accepted.
func (s *Snake) Steer(v core.Point) bool {
	if !validVelocity(v) {
		return false
	}
	if s.length > 1 && v != Idle && v == s.heading.Neg() {
		return false
	}
	s.velocity = v
	return true
}

// Render draws every cell of the snake.
func (s *Snake) Render(c Canvas, cell float64, inset float64, color core.Color) {
	c.SetFill(color)
	for _, p := range s.cells {
		DrawCell(c, cell, inset, p.X, p.Y)
	}
}

// Head returns the head cell.
func (s *Snake) Head() core.Point {
	return s.cells[0]
}

// Len returns the snake length.
func (s *Snake) Len() int {
	return s.length
}

// Velocity returns the current velocity.
func (s *Snake) Velocity() core.Point {
	return s.velocity
}

// Occupies reports whether any cell of the snake is at p.
func (s *Snake) Occupies(p core.Point) bool {
	for _, c := range s.cells {
		if c == p {
			return true
		}
	}
	return false
}

// BitesItself reports whether the head shares a cell with the body.
func (s *Snake) BitesItself() bool {
	head := s.cells[0]
	for _, c := range s.cells[1:] {
		if c == head {
			return true
		}
	}
	return false
}

func validVelocity(v core.Point) bool {
	for _, a := range allowedVs {
		if v == a {
			return true
		}
	}
	return false
}
