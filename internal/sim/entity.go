// Package sim implements the coinstorm simulation core: entity lifecycle,
// the fixed-order update loop, collision resolution, spawn pacing, and the
// autosave/revival state machine. It contains pure logic with no terminal
// or storage dependencies; the platform drives it one Advance per frame.
package sim

import (
	"github.com/vovakirdan/coinstorm/internal/core"
	"github.com/vovakirdan/coinstorm/internal/economy"
)

// Category tags an entity with its gameplay class. Collision rules
// dispatch on category pairs rather than virtual methods.
type Category int

const (
	CategoryPlayer Category = iota
	CategoryRaider
	CategoryBullet
	CategoryCoin
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryRaider:
		return "raider"
	case CategoryBullet:
		return "bullet"
	case CategoryCoin:
		return "coin"
	default:
		return "unknown"
	}
}

// Entity is the shared movable-rectangle record. An inactive entity is
// collision-inert and is purged from the live set by the end of the tick
// that deactivated it.
type Entity struct {
	Rect   core.Rect
	Active bool
	Cat    Category
}

// Player is the ship. Created once per session; on death it goes
// inactive and is revived after a fixed delay with coins and upgrades
// intact.
type Player struct {
	Entity
	Stats     economy.Stats
	FireTimer float64 // countdown to the next shot, in seconds
}

// Raider is a descending enemy. Destroyed raiders drop a coin; raiders
// that slip past the bottom edge escape with no reward.
type Raider struct {
	Entity
	Speed float64
	HP    float64
	MaxHP float64
}

// Bullet travels straight up. Damage is copied from the firing player at
// fire time, so later upgrades never affect bullets already in flight.
type Bullet struct {
	Entity
	Speed  float64
	Damage float64
}

// Coin is a dropped reward with simple gravity kinematics.
type Coin struct {
	Entity
	Vel   core.Vec2
	Value int
}
