package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGame returns the default game configuration.
func DefaultGame() Game {
	return Game{
		World: WorldConfig{
			Width:    480,
			Height:   640,
			MaxDelta: 0.05,
		},
		Player: PlayerConfig{
			Width:       40,
			Height:      40,
			Speed:       220,
			MaxHP:       3,
			Damage:      1,
			FireRate:    2.0,
			ReviveDelay: 3.0,
			EdgeMargin:  10,
		},
		Bullet: BulletConfig{
			Width:  6,
			Height: 14,
			Speed:  420,
		},
		Raiders: RaiderConfig{
			SpawnMarginX: 40,
			SpawnOffsetY: 10,
			MinSize:      20,
			MaxSize:      40,
			MinSpeed:     40,
			MaxSpeed:     110,
			MinInterval:  0.6,
			MaxInterval:  1.6,
			EscapeMargin: 40,
		},
		Coins: CoinConfig{
			Size:       12,
			MinVX:      -60,
			MaxVX:      60,
			MinVY:      -140,
			MaxVY:      -40,
			Gravity:    320,
			LostMargin: 80,
		},
		Autosave: AutosaveConfig{
			Interval: 5.0,
		},
		Offers: []OfferConfig{
			{ID: "dmg1", Name: "Heavier Shells", Cost: 10, Stat: "damage", Amount: 1},
			{ID: "rate1", Name: "Rapid Loader", Cost: 15, Stat: "fire_rate", Amount: 0.5},
			{ID: "spd1", Name: "Thruster Tune", Cost: 12, Stat: "speed", Amount: 30},
			{ID: "hp1", Name: "Hull Plating", Cost: 30, Stat: "max_hp", Amount: 1},
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "kills",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 0.3,
			},
		},
	}
}
