package sim

import (
	"math"

	"github.com/vovakirdan/coinstorm/internal/core"
)

// resolveBulletsRaiders applies bullet damage to raiders. Each bullet
// hits at most one raider and is spent on impact. A raider reduced to
// zero hit points is destroyed and drops one coin worth ceil(maxHp * 2).
func (w *World) resolveBulletsRaiders() {
	for _, b := range w.bullets {
		if !b.Active {
			continue
		}
		for _, r := range w.raiders {
			if !r.Active {
				continue
			}
			if !b.Rect.Intersects(r.Rect) {
				continue
			}

			b.Active = false
			r.HP -= b.Damage
			hit := core.Vec2{X: b.Rect.X + b.Rect.W/2, Y: b.Rect.Y}
			w.emit(CosmeticEvent{Kind: CosmeticHit, X: hit.X, Y: hit.Y})

			if r.HP <= 0 {
				r.Active = false
				w.kills++
				center := r.Rect.Center()
				w.dropCoin(center, int(math.Ceil(r.MaxHP*2)))
				w.emit(CosmeticEvent{Kind: CosmeticExplode, X: center.X, Y: center.Y})
			}
			break
		}
	}
}

// resolveRaidersPlayer handles raiders ramming the ship. The raider is
// destroyed without reward and the ship loses one hit point; at zero the
// ship goes down and a revival is scheduled against the current
// generation.
func (w *World) resolveRaidersPlayer() {
	p := w.player
	if !p.Active {
		return
	}
	for _, r := range w.raiders {
		if !r.Active {
			continue
		}
		if !r.Rect.Intersects(p.Rect) {
			continue
		}

		r.Active = false
		center := r.Rect.Center()
		w.emit(CosmeticEvent{Kind: CosmeticExplode, X: center.X, Y: center.Y})

		p.Stats.HP--
		if p.Stats.HP < 0 {
			p.Stats.HP = 0
		}
		w.emit(StatsChangedEvent{})

		if p.Stats.HP == 0 {
			p.Active = false
			w.revival = &deferredRevival{
				at:         w.simTime + w.game.Player.ReviveDelay,
				generation: w.generation,
			}
			w.emit(ToastEvent{Text: "Ship down", Seconds: 2})
			return
		}
	}
}

// resolveCoinsPlayer collects coins overlapping the ship.
func (w *World) resolveCoinsPlayer() {
	p := w.player
	if !p.Active {
		return
	}
	for _, c := range w.coins {
		if !c.Active {
			continue
		}
		if !c.Rect.Intersects(p.Rect) {
			continue
		}
		c.Active = false
		p.Stats.Coins += c.Value
		w.emit(StatsChangedEvent{})
	}
}
