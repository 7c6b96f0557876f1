package config

import "math"

// DifficultyManager calculates enemy wave parameters from run progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
// wave is zero-based; score is the run score so far.
// A disabled manager stays at level 0 so base stats apply unscaled.
func (d *DifficultyManager) Level(wave, score int) float64 {
	if !d.cfg.Enabled {
		return 0
	}
	if d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "wave":
		progress = float64(wave) / maxAt
	case "score":
		progress = float64(score) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales a base enemy speed from base to base * (1 + speedMultiplier).
func (d *DifficultyManager) Speed(base float64, wave, score int) float64 {
	return base * (1.0 + d.Level(wave, score)*d.cfg.Scaling.SpeedMultiplier)
}

// Health scales a base enemy health from base to base * (1 + healthMultiplier).
func (d *DifficultyManager) Health(base float64, wave, score int) float64 {
	return base * (1.0 + d.Level(wave, score)*d.cfg.Scaling.HealthMultiplier)
}

// Count returns the enemy count for a burst.
func (d *DifficultyManager) Count(base, wave, score int) int {
	return base + int(d.Level(wave, score)*float64(d.cfg.Scaling.CountIncrease))
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
