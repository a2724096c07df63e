package sim

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/coinstorm/internal/config"
	"github.com/vovakirdan/coinstorm/internal/core"
	"github.com/vovakirdan/coinstorm/internal/economy"
	"github.com/vovakirdan/coinstorm/internal/save"
)

// pointerEase is the exponential smoothing factor per second applied when
// steering toward the pointer target. The ship eases in, it never snaps.
const pointerEase = 10.0

// deferredRevival is the one asynchronous effect in the simulation: the
// player's scheduled return after death. It is keyed to the session
// generation so a reset can never resurrect a stale ship.
type deferredRevival struct {
	at         float64 // simulation time at which the player revives
	generation int
}

// TickResult is returned by World.Advance after each tick.
type TickResult struct {
	Tick   uint64
	Events []Event
}

// World owns all entity and ledger state and advances it one synchronous
// tick at a time. No partial tick is ever observable: a full Advance call
// is atomic with respect to entity state, and all mutation happens on the
// caller's goroutine.
type World struct {
	game       config.Game
	rng        *rand.Rand
	difficulty *config.DifficultyManager
	catalog    *economy.Catalog
	spawner    *Spawner

	player  *Player
	raiders []*Raider
	bullets []*Bullet
	coins   []*Coin

	spawnIn   float64
	simTime   float64
	tick      uint64
	saveAccum float64
	paused    bool

	generation int
	revival    *deferredRevival
	kills      int

	events []Event
}

// New creates a world from the given configuration and RNG seed and
// resets it to the initial session state.
func New(game config.Game, seed int64) *World {
	rng := rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness, not crypto
	difficulty := config.NewDifficultyManager(game.Difficulty)

	w := &World{
		game:       game,
		rng:        rng,
		difficulty: difficulty,
		catalog:    buildCatalog(game.Offers),
		spawner:    NewSpawner(rng, game.World, game.Raiders, difficulty),
	}
	w.Reset()
	return w
}

// buildCatalog converts configured offers into the upgrade catalog,
// falling back to the built-in catalog when the config has none.
func buildCatalog(offers []config.OfferConfig) *economy.Catalog {
	converted := make([]economy.Offer, 0, len(offers))
	for _, o := range offers {
		stat, err := economy.ParseStat(o.Stat)
		if err != nil || o.Cost <= 0 {
			continue
		}
		converted = append(converted, economy.Offer{
			ID:     o.ID,
			Name:   o.Name,
			Cost:   o.Cost,
			Effect: economy.Effect{Stat: stat, Amount: o.Amount},
		})
	}
	if len(converted) == 0 {
		return economy.DefaultCatalog()
	}
	return economy.NewCatalog(converted)
}

// Reset starts a fresh session: default player state, empty entity sets,
// zeroed clocks. Any pending revival belongs to the previous generation
// and is discarded.
func (w *World) Reset() {
	w.generation++
	w.revival = nil

	pc := w.game.Player
	sx, sy := w.defaultSpawn()
	w.player = &Player{
		Entity: Entity{
			Rect:   core.NewRect(sx, sy, pc.Width, pc.Height),
			Active: true,
			Cat:    CategoryPlayer,
		},
		Stats: economy.Stats{
			Coins:    0,
			Damage:   pc.Damage,
			FireRate: pc.FireRate,
			Speed:    pc.Speed,
			MaxHP:    pc.MaxHP,
			HP:       pc.MaxHP,
		},
	}

	w.raiders = w.raiders[:0]
	w.bullets = w.bullets[:0]
	w.coins = w.coins[:0]

	w.spawnIn = w.spawner.NextInterval(0, 0)
	w.simTime = 0
	w.tick = 0
	w.saveAccum = 0
	w.kills = 0
	w.paused = false
	w.events = nil
}

// defaultSpawn returns the player's default spawn position.
func (w *World) defaultSpawn() (x, y float64) {
	pc := w.game.Player
	x = (w.game.World.Width - pc.Width) / 2
	y = w.game.World.Height - pc.Height - 40
	return x, y
}

// LoadRecord merges a persisted record into the live player, field by
// field; absent fields keep their current value. Called once at session
// start when a prior record exists.
func (w *World) LoadRecord(rec save.Record) {
	p := w.player
	rec.Apply(&p.Rect.X, &p.Rect.Y, &p.Stats)
	w.sanitizePlayer()
	w.emit(StatsChangedEvent{})
}

// Record captures the player's persisted fields. Pure and total.
func (w *World) Record() save.Record {
	p := w.player
	return save.Snapshot(p.Rect.X, p.Rect.Y, p.Stats)
}

// sanitizePlayer restores structural invariants after an external merge:
// position inside the play area, 0 <= hp <= maxHp, fireRate > 0.
func (w *World) sanitizePlayer() {
	p := w.player
	pc := w.game.Player
	p.Rect.X = core.ClampF(p.Rect.X, pc.EdgeMargin, w.game.World.Width-p.Rect.W-pc.EdgeMargin)
	p.Rect.Y = core.ClampF(p.Rect.Y, pc.EdgeMargin, w.game.World.Height-p.Rect.H-pc.EdgeMargin)
	if p.Stats.MaxHP < 1 {
		p.Stats.MaxHP = pc.MaxHP
	}
	p.Stats.HP = core.ClampF(p.Stats.HP, 0, p.Stats.MaxHP)
	if p.Stats.HP == 0 {
		p.Stats.HP = p.Stats.MaxHP
	}
	if p.Stats.FireRate <= 0 {
		p.Stats.FireRate = pc.FireRate
	}
	if p.Stats.Coins < 0 {
		p.Stats.Coins = 0
	}
}

// Advance runs one simulation tick for the given delta time and input
// snapshot. Steps run in fixed order: revival check, entity integration,
// spawn pacing, collision passes (bullet x raider, raider x player,
// coin x player), one compaction, autosave accounting.
func (w *World) Advance(dt float64, in core.Snapshot) TickResult {
	if w.paused {
		return TickResult{Tick: w.tick}
	}

	// Clamp delta so frame hitches cannot explode the physics.
	if dt < 0 {
		dt = 0
	}
	if max := w.game.World.MaxDelta; max > 0 && dt > max {
		dt = max
	}

	w.tick++
	w.simTime += dt

	w.processRevival()
	w.updatePlayer(dt, in)
	w.updateBullets(dt)
	w.updateRaiders(dt)
	w.updateCoins(dt)
	w.updateSpawner(dt)

	// Collision passes, in fixed order. A raider that dies to a bullet in
	// the first pass is already inactive and cannot also ram the player.
	w.resolveBulletsRaiders()
	w.resolveRaidersPlayer()
	w.resolveCoinsPlayer()

	w.compact()
	w.accumulateAutosave(dt)

	events := w.events
	w.events = nil
	return TickResult{Tick: w.tick, Events: events}
}

// processRevival fires the deferred revival once its time arrives.
// Revivals from an older generation are stale and dropped.
func (w *World) processRevival() {
	if w.revival == nil {
		return
	}
	if w.revival.generation != w.generation {
		w.revival = nil
		return
	}
	if w.simTime < w.revival.at {
		return
	}

	p := w.player
	p.Stats.HP = p.Stats.MaxHP
	p.Rect.X, p.Rect.Y = w.defaultSpawn()
	p.Active = true
	p.FireTimer = 0
	w.revival = nil

	w.emit(StatsChangedEvent{})
	w.emit(ToastEvent{Text: "Ship back online", Seconds: 2})
}

// updatePlayer applies movement from the input snapshot and handles
// auto-fire.
func (w *World) updatePlayer(dt float64, in core.Snapshot) {
	p := w.player
	if !p.Active {
		return
	}

	pc := w.game.Player
	if in.PointerActive {
		// Ease the ship center toward the pointer target.
		tx := in.PointerX - p.Rect.W/2
		ty := in.PointerY - p.Rect.H/2
		blend := core.ClampF(pointerEase*dt, 0, 1)
		p.Rect.X += (tx - p.Rect.X) * blend
		p.Rect.Y += (ty - p.Rect.Y) * blend
	} else {
		dx, dy := in.Direction()
		p.Rect.X += dx * p.Stats.Speed * dt
		p.Rect.Y += dy * p.Stats.Speed * dt
	}

	p.Rect.X = core.ClampF(p.Rect.X, pc.EdgeMargin, w.game.World.Width-p.Rect.W-pc.EdgeMargin)
	p.Rect.Y = core.ClampF(p.Rect.Y, pc.EdgeMargin, w.game.World.Height-p.Rect.H-pc.EdgeMargin)

	// Auto-fire. Damage is copied at fire time so in-flight bullets are
	// unaffected by later upgrades.
	p.FireTimer -= dt
	for p.FireTimer <= 0 {
		w.fireBullet()
		p.FireTimer += 1 / p.Stats.FireRate
	}
}

// fireBullet spawns a bullet at the ship's nose.
func (w *World) fireBullet() {
	p := w.player
	bc := w.game.Bullet
	w.bullets = append(w.bullets, &Bullet{
		Entity: Entity{
			Rect:   core.NewRect(p.Rect.X+(p.Rect.W-bc.Width)/2, p.Rect.Y-bc.Height, bc.Width, bc.Height),
			Active: true,
			Cat:    CategoryBullet,
		},
		Speed:  bc.Speed,
		Damage: p.Stats.Damage,
	})
}

// updateBullets integrates bullet kinematics and drops off-screen bullets.
func (w *World) updateBullets(dt float64) {
	for _, b := range w.bullets {
		if !b.Active {
			continue
		}
		b.Rect.Y -= b.Speed * dt
		if b.Rect.Bottom() < 0 {
			b.Active = false
		}
	}
}

// updateRaiders integrates raider kinematics. A raider past the bottom
// margin has escaped: it deactivates exactly once with no reward.
func (w *World) updateRaiders(dt float64) {
	escaped := w.game.World.Height + w.game.Raiders.EscapeMargin
	for _, r := range w.raiders {
		if !r.Active {
			continue
		}
		r.Rect.Y += r.Speed * dt
		if r.Rect.Y > escaped {
			r.Active = false
		}
	}
}

// updateCoins integrates coin kinematics with downward acceleration and
// drops coins that fall far past the visible area.
func (w *World) updateCoins(dt float64) {
	cc := w.game.Coins
	lost := w.game.World.Height + cc.LostMargin
	for _, c := range w.coins {
		if !c.Active {
			continue
		}
		c.Vel.Y += cc.Gravity * dt
		c.Rect.X += c.Vel.X * dt
		c.Rect.Y += c.Vel.Y * dt
		if c.Rect.Y > lost {
			c.Active = false
		}
	}
}

// updateSpawner counts down the spawn timer and injects a raider when it
// expires, then redraws a fresh random interval.
func (w *World) updateSpawner(dt float64) {
	w.spawnIn -= dt
	if w.spawnIn > 0 {
		return
	}
	w.raiders = append(w.raiders, w.spawner.Spawn(w.kills, w.simTime))
	w.spawnIn = w.spawner.NextInterval(w.kills, w.simTime)
}

// dropCoin spawns the reward coin at a destroyed raider's center with
// randomized initial velocity.
func (w *World) dropCoin(at core.Vec2, value int) {
	cc := w.game.Coins
	w.coins = append(w.coins, &Coin{
		Entity: Entity{
			Rect:   core.NewRect(at.X-cc.Size/2, at.Y-cc.Size/2, cc.Size, cc.Size),
			Active: true,
			Cat:    CategoryCoin,
		},
		Vel: core.Vec2{
			X: w.uniform(cc.MinVX, cc.MaxVX),
			Y: w.uniform(cc.MinVY, cc.MaxVY),
		},
		Value: value,
	})
}

// uniform draws a value uniformly from [lo, hi].
func (w *World) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Float64()*(hi-lo)
}

// compact removes all inactive entities from the live sets. One pass per
// tick; inactive entities never reach the next tick's collision passes.
func (w *World) compact() {
	nr := 0
	for _, r := range w.raiders {
		if r.Active {
			w.raiders[nr] = r
			nr++
		}
	}
	w.raiders = w.raiders[:nr]

	nb := 0
	for _, b := range w.bullets {
		if b.Active {
			w.bullets[nb] = b
			nb++
		}
	}
	w.bullets = w.bullets[:nb]

	nc := 0
	for _, c := range w.coins {
		if c.Active {
			w.coins[nc] = c
			nc++
		}
	}
	w.coins = w.coins[:nc]
}

// accumulateAutosave tracks elapsed simulation time (not wall clock, so
// throttled frame rates stay consistent) and emits a save record each
// time the threshold is crossed.
func (w *World) accumulateAutosave(dt float64) {
	interval := w.game.Autosave.Interval
	if interval <= 0 {
		return
	}
	w.saveAccum += dt
	if w.saveAccum >= interval {
		w.saveAccum -= interval
		w.emit(SaveRequestedEvent{Record: w.Record()})
	}
}

// Purchase buys the offer with the given id for the player. Insufficient
// funds and unknown ids are expected outcomes signaled as errors from the
// economy package; neither mutates any state.
func (w *World) Purchase(id string) (economy.Offer, error) {
	offer, err := w.catalog.Purchase(&w.player.Stats, id)
	if err != nil {
		return economy.Offer{}, err
	}
	w.emit(StatsChangedEvent{})
	w.emit(ToastEvent{Text: fmt.Sprintf("%s installed", offer.Name), Seconds: 2})
	return offer, nil
}

// Offers returns the purchasable upgrade catalog in display order.
func (w *World) Offers() []economy.Offer {
	return w.catalog.Offers()
}

// Stats returns a copy of the player's current stats.
func (w *World) Stats() economy.Stats {
	return w.player.Stats
}

// Kills returns the number of raiders destroyed this session.
func (w *World) Kills() int {
	return w.kills
}

// Tick returns the number of ticks advanced this session.
func (w *World) Tick() uint64 {
	return w.tick
}

// Elapsed returns accumulated simulation time in seconds.
func (w *World) Elapsed() float64 {
	return w.simTime
}

// Paused reports whether the simulation is paused.
func (w *World) Paused() bool {
	return w.paused
}

// TogglePause flips the pause state.
func (w *World) TogglePause() {
	w.paused = !w.paused
}

// ReviveIn returns the seconds until the player revives, or 0 when the
// player is active.
func (w *World) ReviveIn() float64 {
	if w.player.Active || w.revival == nil {
		return 0
	}
	remaining := w.revival.at - w.simTime
	if remaining < 0 {
		return 0
	}
	return remaining
}

// emit queues an event for the current tick's result.
func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}
