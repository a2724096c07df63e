package sim

import (
	"testing"

	"github.com/vovakirdan/coinstorm/internal/core"
)

// injectRaider places a stationary raider at the given rect.
func injectRaider(w *World, rect core.Rect, hp, maxHP float64) *Raider {
	r := &Raider{
		Entity: Entity{Rect: rect, Active: true, Cat: CategoryRaider},
		Speed:  0,
		HP:     hp,
		MaxHP:  maxHP,
	}
	w.raiders = append(w.raiders, r)
	return r
}

// injectBullet places a stationary bullet at the given rect.
func injectBullet(w *World, rect core.Rect, damage float64) *Bullet {
	b := &Bullet{
		Entity: Entity{Rect: rect, Active: true, Cat: CategoryBullet},
		Speed:  0,
		Damage: damage,
	}
	w.bullets = append(w.bullets, b)
	return b
}

// ramRaider places a stationary raider directly on the player.
func ramRaider(w *World) *Raider {
	return injectRaider(w, w.player.Rect, 5, 5)
}

func TestBulletDamagesRaider(t *testing.T) {
	w := quietWorld()
	rect := core.NewRect(100, 100, 30, 30)
	r := injectRaider(w, rect, 3, 3)
	injectBullet(w, rect, 1)

	w.Advance(0.001, core.Snapshot{})

	if r.HP != 2 {
		t.Errorf("raider hp = %v, expected 2", r.HP)
	}
	if len(w.bullets) != 0 {
		t.Error("spent bullet should be purged")
	}
	if len(w.raiders) != 1 {
		t.Error("damaged raider should survive")
	}
}

func TestBulletKillDropsCoin(t *testing.T) {
	w := quietWorld()
	rect := core.NewRect(100, 100, 30, 30)
	injectRaider(w, rect, 1, 3)
	injectBullet(w, rect, 1)

	result := w.Advance(0.001, core.Snapshot{})

	if w.Kills() != 1 {
		t.Errorf("kills = %d, expected 1", w.Kills())
	}
	if len(w.raiders) != 0 {
		t.Error("destroyed raider should be purged")
	}
	if len(w.coins) != 1 {
		t.Fatalf("got %d coins, expected 1 drop", len(w.coins))
	}
	// Reward is ceil(maxHp * 2).
	if w.coins[0].Value != 6 {
		t.Errorf("coin value = %d, expected 6", w.coins[0].Value)
	}

	// Coin appears at the raider's center.
	center := rect.Center()
	cc := w.coins[0].Rect.Center()
	if cc.X != center.X || cc.Y > center.Y+1 || cc.Y < center.Y-1 {
		t.Errorf("coin center = (%v, %v), expected near (%v, %v)", cc.X, cc.Y, center.X, center.Y)
	}

	var sawHit, sawExplode bool
	for _, ev := range result.Events {
		if c, ok := ev.(CosmeticEvent); ok {
			switch c.Kind {
			case CosmeticHit:
				sawHit = true
			case CosmeticExplode:
				sawExplode = true
			}
		}
	}
	if !sawHit || !sawExplode {
		t.Error("kill should emit both hit and explosion cosmetics")
	}
}

func TestFractionalMaxHPRoundsRewardUp(t *testing.T) {
	w := quietWorld()
	rect := core.NewRect(100, 100, 25, 25)
	injectRaider(w, rect, 1, 2.5)
	injectBullet(w, rect, 1)

	w.Advance(0.001, core.Snapshot{})

	if len(w.coins) != 1 || w.coins[0].Value != 5 {
		t.Errorf("coin value for maxHp 2.5 = %v, expected ceil(5.0) = 5", w.coins)
	}
}

func TestBulletStopsAtFirstRaider(t *testing.T) {
	w := quietWorld()
	rect := core.NewRect(100, 100, 30, 30)
	r1 := injectRaider(w, rect, 3, 3)
	r2 := injectRaider(w, rect, 3, 3)
	injectBullet(w, rect, 1)

	w.Advance(0.001, core.Snapshot{})

	if r1.HP != 2 {
		t.Errorf("first raider hp = %v, expected 2", r1.HP)
	}
	if r2.HP != 3 {
		t.Errorf("second raider hp = %v, expected untouched 3", r2.HP)
	}
}

func TestOverkillDamageStillOneCoin(t *testing.T) {
	w := quietWorld()
	rect := core.NewRect(100, 100, 30, 30)
	injectRaider(w, rect, 1, 3)
	injectBullet(w, rect, 50)

	w.Advance(0.001, core.Snapshot{})

	if len(w.coins) != 1 {
		t.Errorf("got %d coins from an overkill hit, expected 1", len(w.coins))
	}
}

func TestRaiderRamsPlayer(t *testing.T) {
	w := quietWorld()
	ramRaider(w)

	result := w.Advance(0.001, core.Snapshot{})

	if w.Stats().HP != 2 {
		t.Errorf("player hp = %v, expected 2 after one ram", w.Stats().HP)
	}
	if !w.player.Active {
		t.Error("player should survive with hit points remaining")
	}
	if w.Kills() != 0 {
		t.Error("a ram is not a kill")
	}
	if len(w.coins) != 0 {
		t.Error("a rammed raider drops no coin")
	}
	if len(w.raiders) != 0 {
		t.Error("rammed raider should be destroyed")
	}

	statsChanged := false
	for _, ev := range result.Events {
		if _, ok := ev.(StatsChangedEvent); ok {
			statsChanged = true
		}
	}
	if !statsChanged {
		t.Error("losing a hit point should emit a stats change")
	}
}

func TestDyingRaiderCannotRamSameTick(t *testing.T) {
	w := quietWorld()
	// Raider overlapping both a bullet and the player, one hit point.
	injectRaider(w, w.player.Rect, 1, 3)
	injectBullet(w, w.player.Rect, 1)

	w.Advance(0.001, core.Snapshot{})

	// The bullet pass runs first; the dead raider never reaches the ram pass.
	if w.Stats().HP != w.player.Stats.MaxHP {
		t.Errorf("player hp = %v, expected untouched %v", w.Stats().HP, w.player.Stats.MaxHP)
	}
	if w.Kills() != 1 {
		t.Errorf("kills = %d, expected 1", w.Kills())
	}
}

func TestEscapedRaiderNoReward(t *testing.T) {
	w := quietWorld()
	y := w.game.World.Height + w.game.Raiders.EscapeMargin + 1
	injectRaider(w, core.NewRect(100, y, 30, 30), 3, 3)

	w.Advance(0.001, core.Snapshot{})

	if len(w.raiders) != 0 {
		t.Error("escaped raider should be purged")
	}
	if w.Kills() != 0 {
		t.Error("an escape is not a kill")
	}
	if len(w.coins) != 0 || w.Stats().Coins != 0 {
		t.Error("an escape yields no reward")
	}
}

func TestCoinCollection(t *testing.T) {
	w := quietWorld()
	w.coins = append(w.coins, &Coin{
		Entity: Entity{Rect: w.player.Rect, Active: true, Cat: CategoryCoin},
		Value:  6,
	})

	w.Advance(0.001, core.Snapshot{})

	if w.Stats().Coins != 6 {
		t.Errorf("coins = %d, expected 6", w.Stats().Coins)
	}
	if len(w.coins) != 0 {
		t.Error("collected coin should be purged")
	}
}

func TestCoinLostOffscreen(t *testing.T) {
	w := quietWorld()
	y := w.game.World.Height + w.game.Coins.LostMargin + 1
	w.coins = append(w.coins, &Coin{
		Entity: Entity{Rect: core.NewRect(100, y, 12, 12), Active: true, Cat: CategoryCoin},
		Value:  6,
	})

	w.Advance(0.001, core.Snapshot{})

	if len(w.coins) != 0 {
		t.Error("lost coin should be purged")
	}
	if w.Stats().Coins != 0 {
		t.Error("a lost coin is never collected")
	}
}

func TestCoinFallsUnderGravity(t *testing.T) {
	w := quietWorld()
	c := &Coin{
		Entity: Entity{Rect: core.NewRect(100, 100, 12, 12), Active: true, Cat: CategoryCoin},
		Vel:    core.Vec2{X: 0, Y: -100},
		Value:  2,
	}
	w.coins = append(w.coins, c)

	// Upward launch decelerates, then falls.
	w.Advance(0.05, core.Snapshot{})
	if c.Rect.Y >= 100 {
		t.Error("coin should move up initially")
	}
	for i := 0; i < 20; i++ {
		w.Advance(0.05, core.Snapshot{})
	}
	if c.Vel.Y <= 0 {
		t.Errorf("coin velocity = %v after 1s, expected falling", c.Vel.Y)
	}
}

func TestTouchingEdgesDoNotCollide(t *testing.T) {
	w := quietWorld()
	p := w.player.Rect
	// Raider exactly flush with the player's right edge.
	injectRaider(w, core.NewRect(p.Right(), p.Y, 30, 30), 3, 3)

	w.Advance(0.001, core.Snapshot{})

	if w.Stats().HP != w.player.Stats.MaxHP {
		t.Error("edge contact must not count as a collision")
	}
	if len(w.raiders) != 1 {
		t.Error("edge-adjacent raider should survive")
	}
}

func TestDownedPlayerIgnoresCoinsAndRaiders(t *testing.T) {
	w := quietWorld()
	w.player.Stats.HP = 1
	ramRaider(w)
	w.Advance(0.001, core.Snapshot{})
	if w.player.Active {
		t.Fatal("player should be down")
	}

	// Entities overlapping the downed ship's position do nothing.
	w.coins = append(w.coins, &Coin{
		Entity: Entity{Rect: w.player.Rect, Active: true, Cat: CategoryCoin},
		Value:  6,
	})
	injectRaider(w, w.player.Rect, 3, 3)

	w.Advance(0.001, core.Snapshot{})

	if w.Stats().Coins != 0 {
		t.Error("downed player must not collect coins")
	}
	if len(w.raiders) != 1 {
		t.Error("raiders pass through a downed player")
	}
}
