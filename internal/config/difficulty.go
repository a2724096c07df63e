package config

import "math"

// DifficultyManager calculates dynamic spawn parameters based on kill
// count or elapsed time. This is an extension point: with the default
// config it is disabled and every method returns its base value.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on kills
// or elapsed seconds.
func (d *DifficultyManager) Level(kills int, elapsed float64) float64 {
	if !d.IsEnabled() {
		if d.cfg.Enabled {
			return d.initialLevel
		}
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "kills":
		progress = float64(kills) / maxAt
	case "time":
		progress = elapsed / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the raider speed multiplier for the current level.
func (d *DifficultyManager) Speed(base float64, kills int, elapsed float64) float64 {
	level := d.Level(kills, elapsed)
	return base * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// Interval returns the spawn interval scaled for the current level.
// Harder levels spawn faster.
func (d *DifficultyManager) Interval(base float64, kills int, elapsed float64) float64 {
	level := d.Level(kills, elapsed)
	return base * (1.0 - level*d.cfg.Scaling.IntervalReduction)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
