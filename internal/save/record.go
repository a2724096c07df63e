// Package save implements the persistence codec: a flat, JSON-serializable
// record of the player's persisted fields. Every numeric field is optional;
// a field absent from a stored record means "leave the current value
// unchanged", which keeps loads backward compatible across versions.
package save

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/coinstorm/internal/economy"
)

// Record is the persisted form of the player state. All fields are
// pointers so that absence is representable and never coerced to zero.
type Record struct {
	X        *float64 `json:"x,omitempty"`
	Y        *float64 `json:"y,omitempty"`
	Coins    *float64 `json:"coins,omitempty"`
	Damage   *float64 `json:"damage,omitempty"`
	FireRate *float64 `json:"fireRate,omitempty"`
	Speed    *float64 `json:"speed,omitempty"`
	MaxHP    *float64 `json:"maxHp,omitempty"`
	HP       *float64 `json:"hp,omitempty"`
}

// Snapshot captures the player's position and stats as a full record.
// Pure and total: every field is present in the result.
func Snapshot(x, y float64, s economy.Stats) Record {
	coins := float64(s.Coins)
	damage := s.Damage
	fireRate := s.FireRate
	speed := s.Speed
	maxHP := s.MaxHP
	hp := s.HP
	return Record{
		X:        &x,
		Y:        &y,
		Coins:    &coins,
		Damage:   &damage,
		FireRate: &fireRate,
		Speed:    &speed,
		MaxHP:    &maxHP,
		HP:       &hp,
	}
}

// Apply merges the record into the given position and stats field by
// field. A nil field leaves the corresponding current value unchanged.
func (r Record) Apply(x, y *float64, s *economy.Stats) {
	if r.X != nil {
		*x = *r.X
	}
	if r.Y != nil {
		*y = *r.Y
	}
	if r.Coins != nil {
		s.Coins = int(*r.Coins)
	}
	if r.Damage != nil {
		s.Damage = *r.Damage
	}
	if r.FireRate != nil {
		s.FireRate = *r.FireRate
	}
	if r.Speed != nil {
		s.Speed = *r.Speed
	}
	if r.MaxHP != nil {
		s.MaxHP = *r.MaxHP
	}
	if r.HP != nil {
		s.HP = *r.HP
	}
}

// Encode serializes the record for storage.
func Encode(r Record) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("save: cannot encode record: %w", err)
	}
	return data, nil
}

// Decode parses a stored record. A decode failure means the stored data
// is malformed; callers treat that as "no save" and proceed with default
// state rather than aborting the session.
func Decode(data []byte) (Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, fmt.Errorf("save: malformed record: %w", err)
	}
	return r, nil
}
