package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/coinstorm/internal/config"
	"github.com/vovakirdan/coinstorm/internal/core"
)

// Spawner generates raiders above the top edge with randomized position,
// size and speed, and draws the interval until the next spawn. It is an
// unbounded stream, not a fixed schedule.
type Spawner struct {
	rng        *rand.Rand
	world      config.WorldConfig
	cfg        config.RaiderConfig
	difficulty *config.DifficultyManager
}

// NewSpawner creates a spawner using the given RNG for determinism.
func NewSpawner(rng *rand.Rand, world config.WorldConfig, cfg config.RaiderConfig, difficulty *config.DifficultyManager) *Spawner {
	return &Spawner{
		rng:        rng,
		world:      world,
		cfg:        cfg,
		difficulty: difficulty,
	}
}

// Spawn creates one raider. Horizontal position is uniform in
// [marginX, width-marginX], size uniform in [minSize, maxSize], hp derives
// deterministically from size (ceil(size/10)), speed uniform in
// [minSpeed, maxSpeed]. The raider starts above the visible top edge.
func (s *Spawner) Spawn(kills int, elapsed float64) *Raider {
	x := s.uniform(s.cfg.SpawnMarginX, s.world.Width-s.cfg.SpawnMarginX)
	size := s.uniform(s.cfg.MinSize, s.cfg.MaxSize)
	speed := s.uniform(s.cfg.MinSpeed, s.cfg.MaxSpeed)
	if s.difficulty != nil {
		speed = s.difficulty.Speed(speed, kills, elapsed)
	}

	hp := math.Ceil(size / 10)

	return &Raider{
		Entity: Entity{
			Rect:   core.NewRect(x, -size-s.cfg.SpawnOffsetY, size, size),
			Active: true,
			Cat:    CategoryRaider,
		},
		Speed: speed,
		HP:    hp,
		MaxHP: hp,
	}
}

// NextInterval draws the time until the next spawn, uniform in
// [minInterval, maxInterval], redrawn after each spawn.
func (s *Spawner) NextInterval(kills int, elapsed float64) float64 {
	interval := s.uniform(s.cfg.MinInterval, s.cfg.MaxInterval)
	if s.difficulty != nil {
		interval = s.difficulty.Interval(interval, kills, elapsed)
	}
	return interval
}

// uniform draws a value uniformly from [lo, hi].
func (s *Spawner) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}
