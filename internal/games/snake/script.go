package snake

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// ParsePath reads a move script such as "RRDD.L": one logic tick per
// character, U/D/L/R steering before the tick and '.' keeping the current
// direction. Case and whitespace are ignored.
func ParsePath(s string) ([]core.Action, error) {
	var path []core.Action
	for i, r := range strings.ToUpper(s) {
		switch r {
		case 'U':
			path = append(path, core.ActionUp)
		case 'D':
			path = append(path, core.ActionDown)
		case 'L':
			path = append(path, core.ActionLeft)
		case 'R':
			path = append(path, core.ActionRight)
		case '.':
			path = append(path, core.ActionNone)
		case ' ', '\t', '\n', ',':
		default:
			return nil, fmt.Errorf("path: unexpected %q at offset %d", r, i)
		}
	}
	return path, nil
}

// Play runs one logic tick per path step, bypassing the frame throttle.
// It returns every round that ended along the way.
func (g *Game) Play(path []core.Action) []core.RoundResult {
	var rounds []core.RoundResult
	for _, a := range path {
		g.Steer(a)
		if r := g.Tick(); r != nil {
			rounds = append(rounds, *r)
			g.Acknowledge()
		}
	}
	return rounds
}

// ParsePoints reads cells written as "x,y" pairs separated by spaces or
// semicolons, e.g. "5,5 4,5 3,5".
func ParsePoints(s string) ([]core.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ';' || r == '\t' || r == '\n'
	})
	points := make([]core.Point, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("points: %q is not x,y", f)
		}
		x, err := strconv.Atoi(strings.TrimSpace(xs))
		if err != nil {
			return nil, fmt.Errorf("points: bad x in %q: %w", f, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(ys))
		if err != nil {
			return nil, fmt.Errorf("points: bad y in %q: %w", f, err)
		}
		points = append(points, core.Pt(x, y))
	}
	return points, nil
}

// Heading returns the unit velocity that moved the neck cell onto the head,
// wrapping around the grid. It is Idle for a single cell or when the two
// cells are not neighbours.
func Heading(cells []core.Point, grid int) core.Point {
	if len(cells) < 2 {
		return Idle
	}
	head, neck := cells[0].Wrap(grid), cells[1].Wrap(grid)
	for _, v := range []core.Point{VelUp, VelDown, VelLeft, VelRight} {
		if neck.Add(v).Wrap(grid) == head {
			return v
		}
	}
	return Idle
}
