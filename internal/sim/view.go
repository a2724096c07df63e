package sim

import "github.com/vovakirdan/coinstorm/internal/core"

// View is a plain-data snapshot of the world for rendering. It carries
// no behavior and no references into live entity state.
type View struct {
	WorldW  float64
	WorldH  float64
	Player  PlayerView
	Raiders []SpriteView
	Bullets []SpriteView
	Coins   []CoinView
	Paused  bool
}

// PlayerView describes the ship for rendering.
type PlayerView struct {
	Rect     core.Rect
	Active   bool
	HP       float64
	MaxHP    float64
	Coins    int
	ReviveIn float64
}

// SpriteView describes a raider or bullet for rendering.
type SpriteView struct {
	Rect core.Rect
	// HPFrac is remaining hit points over maximum, in [0, 1]. Always 1
	// for bullets.
	HPFrac float64
}

// CoinView describes a falling coin for rendering.
type CoinView struct {
	Rect  core.Rect
	Value int
}

// View captures the current renderable state.
func (w *World) View() View {
	p := w.player
	v := View{
		WorldW: w.game.World.Width,
		WorldH: w.game.World.Height,
		Player: PlayerView{
			Rect:     p.Rect,
			Active:   p.Active,
			HP:       p.Stats.HP,
			MaxHP:    p.Stats.MaxHP,
			Coins:    p.Stats.Coins,
			ReviveIn: w.ReviveIn(),
		},
		Paused: w.paused,
	}

	v.Raiders = make([]SpriteView, 0, len(w.raiders))
	for _, r := range w.raiders {
		if !r.Active {
			continue
		}
		frac := 1.0
		if r.MaxHP > 0 {
			frac = core.ClampF(r.HP/r.MaxHP, 0, 1)
		}
		v.Raiders = append(v.Raiders, SpriteView{Rect: r.Rect, HPFrac: frac})
	}

	v.Bullets = make([]SpriteView, 0, len(w.bullets))
	for _, b := range w.bullets {
		if !b.Active {
			continue
		}
		v.Bullets = append(v.Bullets, SpriteView{Rect: b.Rect, HPFrac: 1})
	}

	v.Coins = make([]CoinView, 0, len(w.coins))
	for _, c := range w.coins {
		if !c.Active {
			continue
		}
		v.Coins = append(v.Coins, CoinView{Rect: c.Rect, Value: c.Value})
	}

	return v
}
