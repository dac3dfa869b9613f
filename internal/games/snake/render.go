package snake

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Render draws the game to a character screen using the current layout.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.layout.TooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue")
		return
	}

	l := g.layout
	colors := g.cfg.Colors

	// Apple, shrunk inside its cell like the canvas circle
	if g.apple.In(g.grid()) {
		r := l.CellRect(g.apple)
		dx, dy := r.W/4, r.H/4
		dst.DrawRect(core.NewRect(r.X+dx, r.Y+dy, r.W-2*dx, r.H-2*dy), '█', colors.Apple)
	}

	for _, p := range g.snake.cells {
		dst.DrawRect(l.CellRect(p), '█', colors.Snake)
	}

	dst.DrawRect(l.Border, '█', colors.Border)
	dst.DrawTextColor(l.Score.X, l.Score.Y, ScoreText(g.score), core.ColorWhite)

	switch {
	case g.notice != nil && g.notice.Won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Your Score: %d", g.notice.Score))
	case g.notice != nil:
		g.renderOverlay(dst, "Game Over!", fmt.Sprintf("Your Score: %d", g.notice.Score))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// ScoreText returns the score line shown next to the board.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// renderOverlay draws a message box centred on the board.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	board := g.layout.Board

	maxLen := len([]rune(line1))
	if n := len([]rune(line2)); n > maxLen {
		maxLen = n
	}
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect(board.X+(board.W-boxW)/2, board.Y+(board.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	drawCenteredIn(dst, box, box.Y+1, line1)
	drawCenteredIn(dst, box, box.Y+3, line2)
}

func drawCenteredIn(dst *core.Screen, r core.Rect, y int, text string) {
	x := r.X + (r.W-len([]rune(text)))/2
	dst.DrawTextColor(x, y, text, core.ColorWhite)
}

// Paint draws the board to a pixel canvas. The cell size follows the
// shorter side of the canvas.
func (g *Game) Paint(c Canvas) {
	w, h := c.Size()
	side := w
	if h < side {
		side = h
	}
	cell := side / float64(g.grid())

	Clear(c)
	c.SetFill(g.cfg.Colors.Background)
	c.FillRect(0, 0, w, h)

	if g.apple.In(g.grid()) {
		DrawApple(c, cell, g.cfg.Canvas.AppleRadius, g.cfg.Colors.Apple, g.apple.X, g.apple.Y)
	}
	g.snake.Render(c, cell, g.cfg.Canvas.CellInset, g.cfg.Colors.Snake)
}
