package config

import (
	_ "embed"

	"github.com/vovakirdan/gridsnake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size: 20,
		},
		Timing: TimingConfig{
			FrameRate: 60,
			Interval:  10,
		},
		Scoring: ScoringConfig{
			AppleMin: 80,
			AppleMax: 120,
		},
		Colors: ColorConfig{
			Snake:      core.ColorWhite,
			Apple:      core.ColorRed,
			Border:     core.ColorWhite,
			Background: core.ColorBlack,
		},
		Canvas: CanvasConfig{
			CellInset:   1,
			AppleRadius: 1.0 / 3.0,
			Border:      0.25,
		},
		Difficulty: DifficultyConfig{
			Enabled:     false,
			MinInterval: 4,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
		},
	}
}
