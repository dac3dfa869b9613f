// Package config provides YAML-based game configuration loading and
// difficulty management for the snake game.
package config

import "github.com/vovakirdan/gridsnake/internal/core"

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Colors     ColorConfig      `yaml:"colors"`
	Canvas     CanvasConfig     `yaml:"canvas"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the logical playfield.
type GridConfig struct {
	Size int `yaml:"size"` // Cells per side
}

// TimingConfig defines frame and logic tick rates.
type TimingConfig struct {
	FrameRate int `yaml:"frame_rate"` // Display frames per second
	Interval  int `yaml:"interval"`   // Frames per logic tick (bigger - slower)
}

// ScoringConfig defines how much an apple is worth.
type ScoringConfig struct {
	AppleMin int `yaml:"apple_min"` // Inclusive
	AppleMax int `yaml:"apple_max"` // Exclusive
}

// ColorConfig defines the palette.
type ColorConfig struct {
	Snake      core.Color `yaml:"snake"`
	Apple      core.Color `yaml:"apple"`
	Border     core.Color `yaml:"border"`
	Background core.Color `yaml:"background"`
}

// CanvasConfig defines pixel canvas drawing parameters.
type CanvasConfig struct {
	CellInset   float64 `yaml:"cell_inset"`   // Pixels left empty on each side of a cell
	AppleRadius float64 `yaml:"apple_radius"` // Fraction of a cell
	Border      float64 `yaml:"border"`       // Border width as a fraction of a cell
}

// DifficultyConfig defines the optional speed progression.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	MinInterval int               `yaml:"min_interval"` // Fastest interval reached at max difficulty
	Progression ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IntervalForPreset returns the frames-per-tick interval for a preset.
// Returns 0 for presets that keep the configured interval.
func IntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 14
	case DifficultyNormal:
		return 10
	case DifficultyHard:
		return 6
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
