package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "snake.yaml"

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.gridsnake/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
// Files are applied on top of the defaults, so they may set only some fields.
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are skipped.
func tryLoad(path string) (SnakeConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SnakeConfig{}, false
	}
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SnakeConfig{}, false
	}
	if cfg.Validate() != nil {
		return SnakeConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridsnake", "configs", filename)
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Size < 2 {
		errs = append(errs, fmt.Errorf("grid.size must be at least 2, got %d", c.Grid.Size))
	}
	if c.Timing.FrameRate < 1 {
		errs = append(errs, fmt.Errorf("timing.frame_rate must be positive, got %d", c.Timing.FrameRate))
	}
	if c.Timing.Interval < 1 {
		errs = append(errs, fmt.Errorf("timing.interval must be positive, got %d", c.Timing.Interval))
	}
	if c.Scoring.AppleMin < 0 || c.Scoring.AppleMax < c.Scoring.AppleMin {
		errs = append(errs, fmt.Errorf("scoring range [%d, %d) is invalid", c.Scoring.AppleMin, c.Scoring.AppleMax))
	}
	if c.Canvas.CellInset < 0 {
		errs = append(errs, fmt.Errorf("canvas.cell_inset must not be negative, got %g", c.Canvas.CellInset))
	}
	if c.Canvas.AppleRadius <= 0 || c.Canvas.AppleRadius > 0.5 {
		errs = append(errs, fmt.Errorf("canvas.apple_radius must be in (0, 0.5], got %g", c.Canvas.AppleRadius))
	}
	if c.Difficulty.Enabled {
		if c.Difficulty.MinInterval < 1 {
			errs = append(errs, fmt.Errorf("difficulty.min_interval must be positive, got %d", c.Difficulty.MinInterval))
		}
		switch c.Difficulty.Progression.Type {
		case "score", "time", "none":
		default:
			errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, time, none", c.Difficulty.Progression.Type))
		}
	}

	return errors.Join(errs...)
}

// ParsePreset converts a flag value into a difficulty preset.
// The empty string selects the config as written.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
		return
	}
	if interval := IntervalForPreset(preset); interval > 0 {
		cfg.Timing.Interval = interval
		if cfg.Difficulty.MinInterval > interval {
			cfg.Difficulty.MinInterval = interval
		}
	}
}

// Marshal renders the config as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
