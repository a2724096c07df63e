package sim

import "github.com/vovakirdan/coinstorm/internal/save"

// Event is a discrete outcome of a tick, emitted by the world as plain
// data and drained by the host each Advance. The core never touches
// presentation or storage; events are how those cross the boundary.
type Event interface {
	simEvent()
}

// CosmeticKind identifies a transient visual effect.
type CosmeticKind int

const (
	CosmeticHit CosmeticKind = iota
	CosmeticExplode
)

// String returns a human-readable name for the cosmetic kind.
func (k CosmeticKind) String() string {
	switch k {
	case CosmeticHit:
		return "hit"
	case CosmeticExplode:
		return "explode"
	default:
		return "unknown"
	}
}

// CosmeticEvent requests a transient visual effect at a world position.
// The renderer owns the effect once emitted; its lifetime (~0.5s) has no
// gameplay meaning.
type CosmeticEvent struct {
	Kind CosmeticKind
	X, Y float64
}

func (CosmeticEvent) simEvent() {}

// StatsChangedEvent signals that player stats the HUD shows (coins, hp,
// damage, fire rate, speed) have changed this tick.
type StatsChangedEvent struct{}

func (StatsChangedEvent) simEvent() {}

// ToastEvent carries a transient message for the host to display.
type ToastEvent struct {
	Text    string
	Seconds float64
}

func (ToastEvent) simEvent() {}

// SaveRequestedEvent carries a serialized player record the host should
// persist. Emitted by the autosave accumulator and on explicit saves.
type SaveRequestedEvent struct {
	Record save.Record
}

func (SaveRequestedEvent) simEvent() {}
