// Package config provides YAML-based game configuration loading and
// the difficulty extension point for the coinstorm simulation.
package config

// Game contains all tunable parameters for a session.
type Game struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Raiders    RaiderConfig     `yaml:"raiders"`
	Coins      CoinConfig       `yaml:"coins"`
	Autosave   AutosaveConfig   `yaml:"autosave"`
	Offers     []OfferConfig    `yaml:"offers"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical play area and the tick guard.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// MaxDelta caps the per-tick delta time in seconds so frame hitches
	// (tab switch, debugger pause) cannot explode the physics.
	MaxDelta float64 `yaml:"max_delta"`
}

// PlayerConfig defines the ship's starting stats and geometry.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	MaxHP       float64 `yaml:"max_hp"`
	Damage      float64 `yaml:"damage"`
	FireRate    float64 `yaml:"fire_rate"` // shots per second
	ReviveDelay float64 `yaml:"revive_delay"`
	EdgeMargin  float64 `yaml:"edge_margin"` // kept distance from the world edges
}

// BulletConfig defines bullet geometry and speed.
type BulletConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// RaiderConfig defines enemy spawn ranges and pacing.
type RaiderConfig struct {
	SpawnMarginX float64 `yaml:"spawn_margin_x"` // horizontal position drawn in [margin, width-margin]
	SpawnOffsetY float64 `yaml:"spawn_offset_y"` // distance above the top edge at spawn
	MinSize      float64 `yaml:"min_size"`
	MaxSize      float64 `yaml:"max_size"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	MinInterval  float64 `yaml:"min_interval"` // seconds between spawns, redrawn after each spawn
	MaxInterval  float64 `yaml:"max_interval"`
	EscapeMargin float64 `yaml:"escape_margin"` // distance past the bottom edge that counts as escaped
}

// CoinConfig defines coin drop kinematics.
type CoinConfig struct {
	Size       float64 `yaml:"size"`
	MinVX      float64 `yaml:"min_vx"`
	MaxVX      float64 `yaml:"max_vx"`
	MinVY      float64 `yaml:"min_vy"`
	MaxVY      float64 `yaml:"max_vy"`
	Gravity    float64 `yaml:"gravity"`
	LostMargin float64 `yaml:"lost_margin"` // distance past the bottom edge that counts as lost
}

// AutosaveConfig defines the autosave cadence in accumulated
// simulation time, not wall clock.
type AutosaveConfig struct {
	Interval float64 `yaml:"interval"`
}

// OfferConfig defines one purchasable upgrade.
type OfferConfig struct {
	ID     string  `yaml:"id"`
	Name   string  `yaml:"name"`
	Cost   int     `yaml:"cost"`
	Stat   string  `yaml:"stat"` // damage, fire_rate, speed, max_hp
	Amount float64 `yaml:"amount"`
}

// DifficultyConfig defines the spawn-scaling extension point.
// Disabled by default: the stated spawn ranges are the contract.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "kills", "time", or "none"
	MaxAt int    `yaml:"max_at"` // kills/seconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // multiplier added to raider speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // fraction shaved off spawn intervals at max difficulty
}
