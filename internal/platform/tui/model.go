package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/coinstorm/internal/config"
	"github.com/vovakirdan/coinstorm/internal/core"
	"github.com/vovakirdan/coinstorm/internal/economy"
	"github.com/vovakirdan/coinstorm/internal/save"
	"github.com/vovakirdan/coinstorm/internal/sim"
	"github.com/vovakirdan/coinstorm/internal/storage"
)

// holdWindow is how long a direction key counts as held after its last
// press event. Terminals only deliver repeats, not key-up, so held state
// is reconstructed from press timestamps.
const holdWindow = 200 * time.Millisecond

// particleTTL is how long hit and explosion markers stay on screen.
const particleTTL = 0.5

type particle struct {
	kind sim.CosmeticKind
	x, y float64
	age  float64
}

type toast struct {
	text      string
	remaining float64
}

// Model is the Bubble Tea model for a play session.
type Model struct {
	world  *sim.World
	screen *core.Screen
	store  *storage.Store
	slot   string
	config core.RuntimeConfig
	game   config.Game

	keys KeyMap
	help help.Model

	held          map[string]time.Time
	pointerActive bool
	pointerX      float64
	pointerY      float64

	lastTick  time.Time
	particles []particle
	toasts    []toast

	shopOpen   bool
	shopCursor int

	quitting    bool
	runRecorded bool
}

// NewModel creates a play session model. When the store holds a prior
// save record for the slot it is merged into the fresh world.
func NewModel(game config.Game, store *storage.Store, slot string, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	world := sim.New(game, cfg.Seed)
	if store != nil {
		if data, err := store.LoadSlot(slot); err == nil && data != "" {
			if rec, err := save.Decode([]byte(data)); err == nil {
				world.LoadRecord(rec)
			}
		}
	}

	return Model{
		world:  world,
		screen: core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-1, 1)),
		store:  store,
		slot:   slot,
		config: cfg,
		game:   game,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		held:   make(map[string]time.Time),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		// Bottom row is reserved for the help line.
		m.screen.Resize(msg.Width, core.Max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.finishRun()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.shopOpen {
		return m.handleShopKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Shop):
		m.shopOpen = true
		m.shopCursor = 0
	case key.Matches(msg, m.keys.Pause):
		m.world.TogglePause()
	case key.Matches(msg, m.keys.Restart):
		m.restart()
	case key.Matches(msg, m.keys.Left):
		m.press("left")
	case key.Matches(msg, m.keys.Right):
		m.press("right")
	case key.Matches(msg, m.keys.Up):
		m.press("up")
	case key.Matches(msg, m.keys.Down):
		m.press("down")
	}

	return m, nil
}

// press records a direction key press. Keyboard control always wins over
// a previously set pointer target.
func (m *Model) press(dir string) {
	m.held[dir] = time.Now()
	m.pointerActive = false
}

// handleShopKey processes input while the upgrade shop overlay is open.
func (m Model) handleShopKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	offers := m.world.Offers()

	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Shop):
		m.shopOpen = false
	case key.Matches(msg, m.keys.Up):
		if m.shopCursor > 0 {
			m.shopCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.shopCursor < len(offers)-1 {
			m.shopCursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.shopCursor < len(offers) {
			if _, err := m.world.Purchase(offers[m.shopCursor].ID); err != nil {
				m.toasts = append(m.toasts, toast{text: purchaseErrorText(err), remaining: 2})
			}
		}
	}

	return m, nil
}

// purchaseErrorText maps expected purchase failures to player-facing text.
func purchaseErrorText(err error) string {
	switch {
	case errors.Is(err, economy.ErrInsufficientFunds):
		return "Not enough coins"
	case errors.Is(err, economy.ErrUnknownOffer):
		return "Upgrade unavailable"
	default:
		return "Purchase failed"
	}
}

// handleMouse steers the ship toward the pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.shopOpen {
		return m, nil
	}
	if msg.Action == tea.MouseActionMotion || msg.Action == tea.MouseActionPress {
		m.pointerActive = true
		m.pointerX, m.pointerY = m.cellToWorld(msg.X, msg.Y)
	}
	return m, nil
}

// cellToWorld converts a terminal cell position to world coordinates.
func (m Model) cellToWorld(cx, cy int) (float64, float64) {
	wx := (float64(cx) + 0.5) * m.game.World.Width / float64(core.Max(m.screen.Width(), 1))
	wy := (float64(cy) + 0.5) * m.game.World.Height / float64(core.Max(m.screen.Height(), 1))
	return wx, wy
}

// snapshot builds the input snapshot for this tick from recent key
// presses and the pointer target.
func (m Model) snapshot(now time.Time) core.Snapshot {
	heldSince := func(dir string) bool {
		t, ok := m.held[dir]
		return ok && now.Sub(t) < holdWindow
	}
	return core.Snapshot{
		Left:          heldSince("left"),
		Right:         heldSince("right"),
		Up:            heldSince("up"),
		Down:          heldSince("down"),
		PointerActive: m.pointerActive,
		PointerX:      m.pointerX,
		PointerY:      m.pointerY,
	}
}

// handleTick advances the simulation by the wall-clock delta since the
// previous tick and applies the resulting events.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := time.Now()
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	result := m.world.Advance(dt, m.snapshot(now))
	for _, ev := range result.Events {
		m.applyEvent(ev)
	}

	m.expire(dt)
	return m, tickCmd(m.config.TickRate)
}

// applyEvent reacts to one simulation event.
func (m *Model) applyEvent(ev sim.Event) {
	switch ev := ev.(type) {
	case sim.SaveRequestedEvent:
		m.persist(ev.Record)
	case sim.CosmeticEvent:
		m.particles = append(m.particles, particle{kind: ev.Kind, x: ev.X, y: ev.Y})
	case sim.ToastEvent:
		m.toasts = append(m.toasts, toast{text: ev.Text, remaining: ev.Seconds})
	}
}

// persist writes a save record to the store. Best effort: gameplay never
// stops for a failed save.
func (m *Model) persist(rec save.Record) {
	if m.store == nil {
		return
	}
	data, err := save.Encode(rec)
	if err != nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveSlot(m.slot, string(data))
}

// expire ages particles and toasts and drops the dead ones.
func (m *Model) expire(dt float64) {
	np := 0
	for _, p := range m.particles {
		p.age += dt
		if p.age < particleTTL {
			m.particles[np] = p
			np++
		}
	}
	m.particles = m.particles[:np]

	nt := 0
	for _, t := range m.toasts {
		t.remaining -= dt
		if t.remaining > 0 {
			m.toasts[nt] = t
			nt++
		}
	}
	m.toasts = m.toasts[:nt]
}

// restart records the finished run, then starts a new one keeping the
// persistent record (coins and upgrades survive, entities and clocks
// do not).
func (m *Model) restart() {
	rec := m.world.Record()
	m.recordRun()
	m.world.Reset()
	m.world.LoadRecord(rec)
	m.runRecorded = false
	m.particles = nil
	m.shopOpen = false
}

// finishRun persists the save record and appends the session to run
// history, exactly once.
func (m *Model) finishRun() {
	m.persist(m.world.Record())
	m.recordRun()
}

func (m *Model) recordRun() {
	if m.runRecorded || m.store == nil {
		return
	}
	m.runRecorded = true
	//nolint:errcheck // Best-effort history, quitting proceeds regardless
	m.store.RecordRun(storage.RunEntry{
		Slot:     m.slot,
		Coins:    m.world.Stats().Coins,
		Raiders:  m.world.Kills(),
		Duration: int(m.world.Elapsed()),
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with a play session model.
func Run(game config.Game, store *storage.Store, slot string, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, slot, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer steering
	)

	_, err := p.Run()
	return err
}
