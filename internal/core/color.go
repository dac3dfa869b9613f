package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell or a canvas fill.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorBlack:   "black",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorBlue:    "blue",
	ColorMagenta: "magenta",
	ColorCyan:    "cyan",
	ColorWhite:   "white",
	ColorGray:    "gray",
}

// String returns the config name of the color.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// Hex returns the CSS hex code used by pixel canvases.
func (c Color) Hex() string {
	switch c {
	case ColorBlack:
		return "#000"
	case ColorRed:
		return "#F00"
	case ColorGreen:
		return "#0F0"
	case ColorYellow:
		return "#FF0"
	case ColorBlue:
		return "#00F"
	case ColorMagenta:
		return "#F0F"
	case ColorCyan:
		return "#0FF"
	case ColorGray:
		return "#888"
	default:
		return "#FFF"
	}
}

// ParseColor resolves a color name as written in config files.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("unknown color %q", name)
}

// UnmarshalText implements encoding.TextUnmarshaler so colors can be
// written by name in YAML.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
