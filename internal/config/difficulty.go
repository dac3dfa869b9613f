package config

import "math"

// DifficultyManager calculates the logic tick interval based on score/time.
type DifficultyManager struct {
	cfg      DifficultyConfig
	interval int
}

// NewDifficultyManager creates a new difficulty manager starting from the
// given base interval.
func NewDifficultyManager(cfg DifficultyConfig, baseInterval int) *DifficultyManager {
	return &DifficultyManager{
		cfg:      cfg,
		interval: baseInterval,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks uint64) float64 {
	if !d.IsEnabled() {
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return 0
	}

	return clampF(progress, 0.0, 1.0)
}

// Interval returns the frames-per-tick interval for the current level,
// interpolated from the base interval down to MinInterval.
func (d *DifficultyManager) Interval(score int, ticks uint64) int {
	if !d.IsEnabled() || d.cfg.MinInterval >= d.interval {
		return d.interval
	}
	level := d.Level(score, ticks)
	span := float64(d.interval - d.cfg.MinInterval)
	return d.interval - int(math.Round(level*span))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
