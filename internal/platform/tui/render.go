package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/coinstorm/internal/core"
	"github.com/vovakirdan/coinstorm/internal/sim"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// draw paints the whole frame: playfield, HUD, overlays, toasts.
func (m *Model) draw() {
	m.screen.Clear()

	v := m.world.View()
	m.drawWorld(v)
	m.drawParticles(v)
	m.drawHUD(v)

	if v.Paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, "== PAUSED ==")
	}
	if m.shopOpen {
		m.drawShop(v)
	}
	m.drawToasts()
}

// scaleRect converts a world rect to cell coordinates with at least one
// cell of extent so small entities stay visible.
func (m *Model) scaleRect(r core.Rect, worldW, worldH float64) (x, y, w, h int) {
	sw := float64(m.screen.Width()) / worldW
	sh := float64(m.screen.Height()) / worldH
	x = int(r.X * sw)
	y = int(r.Y * sh)
	w = core.Max(int(r.W*sw), 1)
	h = core.Max(int(r.H*sh), 1)
	return x, y, w, h
}

// drawWorld paints the entities.
func (m *Model) drawWorld(v sim.View) {
	for _, r := range v.Raiders {
		x, y, w, h := m.scaleRect(r.Rect, v.WorldW, v.WorldH)
		glyph := '▓'
		color := core.ColorRed
		if r.HPFrac < 0.5 {
			glyph = '▒'
			color = core.ColorBrightRed
		}
		m.screen.FillRect(x, y, w, h, glyph, color)
	}

	for _, b := range v.Bullets {
		x, y, _, _ := m.scaleRect(b.Rect, v.WorldW, v.WorldH)
		m.screen.SetCell(x, y, '|', core.ColorBrightYellow)
	}

	for _, c := range v.Coins {
		x, y, _, _ := m.scaleRect(c.Rect, v.WorldW, v.WorldH)
		m.screen.SetCell(x, y, '$', core.ColorYellow)
	}

	if v.Player.Active {
		x, y, w, h := m.scaleRect(v.Player.Rect, v.WorldW, v.WorldH)
		m.screen.FillRect(x, y, w, h, '█', core.ColorCyan)
		m.screen.SetCell(x+w/2, core.Max(y-1, 0), '^', core.ColorBrightCyan)
	} else if v.Player.ReviveIn > 0 {
		msg := fmt.Sprintf("SHIP DOWN - back in %.1fs", v.Player.ReviveIn)
		m.screen.DrawTextCentered(m.screen.Height()/2+2, msg)
	}
}

// drawParticles paints short-lived hit and explosion markers.
func (m *Model) drawParticles(v sim.View) {
	for _, p := range m.particles {
		x := int(p.x * float64(m.screen.Width()) / v.WorldW)
		y := int(p.y * float64(m.screen.Height()) / v.WorldH)
		switch p.kind {
		case sim.CosmeticHit:
			m.screen.SetCell(x, y, '*', core.ColorBrightWhite)
		case sim.CosmeticExplode:
			m.screen.SetCell(x, y, 'X', core.ColorOrange)
			m.screen.SetCell(x-1, y, '<', core.ColorOrange)
			m.screen.SetCell(x+1, y, '>', core.ColorOrange)
		}
	}
}

// drawHUD paints the status line at the top of the playfield.
func (m *Model) drawHUD(v sim.View) {
	hearts := strings.Repeat("♥", int(v.Player.HP)) + strings.Repeat("·", core.Max(int(v.Player.MaxHP-v.Player.HP), 0))
	left := fmt.Sprintf(" $%d  %s", v.Player.Coins, hearts)
	m.screen.DrawTextColor(0, 0, left, core.ColorBrightYellow)

	right := fmt.Sprintf("raiders %d  %s ", m.world.Kills(), formatDuration(m.world.Elapsed()))
	m.screen.DrawTextColor(core.Max(m.screen.Width()-len([]rune(right)), 0), 0, right, core.ColorGray)
}

// drawShop paints the upgrade shop overlay.
func (m *Model) drawShop(v sim.View) {
	offers := m.world.Offers()
	stats := m.world.Stats()

	boxW := core.Min(44, m.screen.Width()-2)
	boxH := len(offers) + 6
	x := (m.screen.Width() - boxW) / 2
	y := core.Max((m.screen.Height()-boxH)/2, 0)

	m.screen.FillRect(x, y, boxW, boxH, ' ', core.ColorDefault)
	m.screen.DrawBox(x, y, boxW, boxH)
	m.screen.DrawTextColor(x+2, y, " UPGRADES ", core.ColorBrightCyan)
	m.screen.DrawTextColor(x+2, y+1, fmt.Sprintf("coins: %d", v.Player.Coins), core.ColorYellow)

	for i, o := range offers {
		cursor := "  "
		color := core.ColorWhite
		if i == m.shopCursor {
			cursor = "> "
			color = core.ColorBrightGreen
		}
		line := fmt.Sprintf("%s%-18s %4d$", cursor, o.Name, o.Cost)
		m.screen.DrawTextColor(x+2, y+3+i, line, color)
	}

	summary := fmt.Sprintf("dmg %.0f  rate %.1f/s  spd %.0f  hp %.0f/%.0f",
		stats.Damage, stats.FireRate, stats.Speed, stats.HP, stats.MaxHP)
	m.screen.DrawTextColor(x+2, y+boxH-2, summary, core.ColorGray)
}

// drawToasts paints transient notifications above the bottom edge.
func (m *Model) drawToasts() {
	base := m.screen.Height() - 2
	for i := len(m.toasts) - 1; i >= 0; i-- {
		row := base - (len(m.toasts) - 1 - i)
		if row < 1 {
			break
		}
		m.screen.DrawTextCentered(row, "[ "+m.toasts[i].text+" ]")
	}
}

// formatDuration renders elapsed seconds as m:ss.
func formatDuration(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}
