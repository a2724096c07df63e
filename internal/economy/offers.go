// Package economy implements the coin ledger and the purchasable upgrade
// catalog. Upgrades are data, not code: each offer carries a stat kind and
// an amount, interpreted by a single apply function.
package economy

import (
	"errors"
	"fmt"
)

// Purchase failure modes. Both are expected outcomes, not fatal conditions.
var (
	// ErrInsufficientFunds is returned when the player cannot afford an
	// offer. No state is mutated.
	ErrInsufficientFunds = errors.New("economy: not enough coins")

	// ErrUnknownOffer is returned for an offer id that is not in the
	// catalog. No state is mutated.
	ErrUnknownOffer = errors.New("economy: unknown offer")
)

// Stat identifies a player stat an upgrade can modify.
type Stat int

const (
	StatDamage Stat = iota
	StatFireRate
	StatSpeed
	StatMaxHP
)

// String returns a human-readable name for the stat.
func (s Stat) String() string {
	switch s {
	case StatDamage:
		return "damage"
	case StatFireRate:
		return "fire rate"
	case StatSpeed:
		return "speed"
	case StatMaxHP:
		return "max hp"
	default:
		return "unknown"
	}
}

// ParseStat converts a config string to a Stat.
func ParseStat(name string) (Stat, error) {
	switch name {
	case "damage":
		return StatDamage, nil
	case "fire_rate":
		return StatFireRate, nil
	case "speed":
		return StatSpeed, nil
	case "max_hp":
		return StatMaxHP, nil
	default:
		return 0, fmt.Errorf("economy: unknown stat %q", name)
	}
}

// Effect is an upgrade's stat transform: add Amount to Stat.
// Re-applying the same effect stacks additively.
type Effect struct {
	Stat   Stat
	Amount float64
}

// Apply mutates the given stats by this effect.
// Raising max hp heals by the same amount so current hp keeps pace.
func (e Effect) Apply(s *Stats) {
	switch e.Stat {
	case StatDamage:
		s.Damage += e.Amount
	case StatFireRate:
		s.FireRate += e.Amount
	case StatSpeed:
		s.Speed += e.Amount
	case StatMaxHP:
		s.MaxHP += e.Amount
		s.HP += e.Amount
		if s.HP > s.MaxHP {
			s.HP = s.MaxHP
		}
	}
}

// Offer is a purchasable upgrade definition.
type Offer struct {
	ID     string
	Name   string
	Cost   int // coins, always > 0
	Effect Effect
}

// Stats is the bundle of player stats the economy and persistence layers
// operate on. The simulation embeds it in the player entity.
type Stats struct {
	Coins    int
	Damage   float64
	FireRate float64 // shots per second, always > 0
	Speed    float64
	MaxHP    float64
	HP       float64
}

// Catalog holds the static set of offers, loaded once per session.
type Catalog struct {
	offers []Offer
	byID   map[string]Offer
}

// NewCatalog builds a catalog from the given offers, preserving order.
func NewCatalog(offers []Offer) *Catalog {
	c := &Catalog{
		offers: make([]Offer, len(offers)),
		byID:   make(map[string]Offer, len(offers)),
	}
	copy(c.offers, offers)
	for _, o := range offers {
		c.byID[o.ID] = o
	}
	return c
}

// DefaultCatalog returns the built-in upgrade catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Offer{
		{ID: "dmg1", Name: "Heavier Shells", Cost: 10, Effect: Effect{Stat: StatDamage, Amount: 1}},
		{ID: "rate1", Name: "Rapid Loader", Cost: 15, Effect: Effect{Stat: StatFireRate, Amount: 0.5}},
		{ID: "spd1", Name: "Thruster Tune", Cost: 12, Effect: Effect{Stat: StatSpeed, Amount: 30}},
		{ID: "hp1", Name: "Hull Plating", Cost: 30, Effect: Effect{Stat: StatMaxHP, Amount: 1}},
	})
}

// Offers returns the offers in catalog order.
func (c *Catalog) Offers() []Offer {
	return c.offers
}

// Lookup finds an offer by id.
func (c *Catalog) Lookup(id string) (Offer, bool) {
	o, ok := c.byID[id]
	return o, ok
}

// Purchase atomically buys the offer with the given id against the stats:
// it decrements coins by the cost and applies the effect exactly once.
// On ErrUnknownOffer or ErrInsufficientFunds the stats are left untouched
// and the coin balance can never go negative.
func (c *Catalog) Purchase(s *Stats, id string) (Offer, error) {
	o, ok := c.byID[id]
	if !ok {
		return Offer{}, fmt.Errorf("%w: %q", ErrUnknownOffer, id)
	}
	if s.Coins < o.Cost {
		return Offer{}, ErrInsufficientFunds
	}
	s.Coins -= o.Cost
	o.Effect.Apply(s)
	return o, nil
}
