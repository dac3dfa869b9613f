package snake

import "github.com/vovakirdan/gridsnake/internal/core"

const (
	// scorePanelW is the width of the score panel beside a landscape board.
	scorePanelW = 18
	// scorePanelH is the height of the score panel under a portrait board.
	scorePanelH = 2
)

// Layout places the board, its border and the score text on a character
// screen. A grid cell is drawn as 2k columns by k rows so it looks square
// in a terminal.
type Layout struct {
	Landscape bool
	CellW     int       // Columns per grid cell
	CellH     int       // Rows per grid cell
	Board     core.Rect // Board area, in characters
	Border    core.Rect // Border strip right of (landscape) or under (portrait) the board
	Score     core.Point
	TooSmall  bool
}

// ComputeLayout fits a grid×grid board into a screen of the given size.
// Wide screens put the border and score to the right of the board, tall
// screens put them underneath.
func ComputeLayout(screenW, screenH, grid int) Layout {
	var l Layout
	if grid < 1 {
		l.TooSmall = true
		return l
	}

	// Visual width of a terminal column is about half a row.
	l.Landscape = screenW >= 2*screenH

	var k int
	if l.Landscape {
		k = core.Min((screenW-1-scorePanelW)/(2*grid), screenH/grid)
	} else {
		k = core.Min(screenW/(2*grid), (screenH-1-scorePanelH)/grid)
	}
	if k < 1 {
		l.TooSmall = true
		return l
	}

	l.CellW, l.CellH = 2*k, k
	l.Board = core.NewRect(0, 0, l.CellW*grid, l.CellH*grid)
	if l.Landscape {
		l.Border = core.NewRect(l.Board.Right(), 0, 1, l.Board.H)
		l.Score = core.Pt(l.Border.Right()+1, 0)
	} else {
		l.Border = core.NewRect(0, l.Board.Bottom(), l.Board.W, 1)
		l.Score = core.Pt(0, l.Border.Bottom())
	}
	return l
}

// CellRect returns the characters covered by grid cell p.
func (l Layout) CellRect(p core.Point) core.Rect {
	return core.NewRect(l.Board.X+p.X*l.CellW, l.Board.Y+p.Y*l.CellH, l.CellW, l.CellH)
}
