// Package raster renders the game board into an image using gogpu/gg.
package raster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Canvas is a pixel canvas backed by a gg drawing context.
// Fill errors are kept and reported by Err, so drawing code can stay
// free of error plumbing.
type Canvas struct {
	dc  *gg.Context
	err error
}

// New creates a canvas of the given size in pixels.
func New(width, height int) *Canvas {
	return &Canvas{dc: gg.NewContext(width, height)}
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (float64, float64) {
	return float64(c.dc.Width()), float64(c.dc.Height())
}

// Clear makes the whole canvas transparent.
func (c *Canvas) Clear() {
	c.dc.Clear()
}

// SetFill sets the color of the following fills.
func (c *Canvas) SetFill(col core.Color) {
	c.dc.SetHexColor(col.Hex())
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64) {
	c.dc.DrawRectangle(x, y, w, h)
	c.fill()
}

// FillCircle fills a circle.
func (c *Canvas) FillCircle(cx, cy, r float64) {
	c.dc.DrawCircle(cx, cy, r)
	c.fill()
}

func (c *Canvas) fill() {
	if err := c.dc.Fill(); err != nil && c.err == nil {
		c.err = fmt.Errorf("raster: fill: %w", err)
	}
}

// Err returns the first drawing error, if any.
func (c *Canvas) Err() error {
	return c.err
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.err != nil {
		return c.err
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	if err := c.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("raster: encode: %w", err)
	}
	return nil
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}
