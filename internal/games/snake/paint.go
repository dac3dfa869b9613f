package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Canvas is a pixel drawing surface. The raster package implements it on
// top of an image context and the browser build on top of a 2D canvas.
type Canvas interface {
	// Size returns the surface size in pixels.
	Size() (w, h float64)
	// Clear wipes the whole surface.
	Clear()
	// SetFill sets the color used by the Fill calls.
	SetFill(c core.Color)
	FillRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64)
}

// DrawCell fills grid cell (x, y), leaving inset pixels empty on every side.
func DrawCell(c Canvas, cell, inset float64, x, y int) {
	c.FillRect(
		float64(x)*cell+inset,
		float64(y)*cell+inset,
		cell-2*inset,
		cell-2*inset,
	)
}

// DrawApple draws a circle centred in grid cell (x, y).
// radius is a fraction of the cell size.
func DrawApple(c Canvas, cell, radius float64, color core.Color, x, y int) {
	c.SetFill(color)
	c.FillCircle(
		(float64(x)+0.5)*cell,
		(float64(y)+0.5)*cell,
		cell*radius,
	)
}

// Clear wipes the canvas.
func Clear(c Canvas) {
	c.Clear()
}
