package core

// Snapshot is the normalized input state for a single simulation tick.
// The platform builds one per tick from keyboard and pointer events; the
// simulation only ever reads it. A zero Snapshot means "no input".
type Snapshot struct {
	// Directional movement flags. Diagonals are allowed; the resulting
	// movement vector is unit-normalized by Direction.
	Left  bool
	Right bool
	Up    bool
	Down  bool

	// PointerActive indicates the pointer target should steer the ship
	// instead of the directional flags.
	PointerActive bool

	// Pointer target in world coordinates. Only meaningful when
	// PointerActive is set.
	PointerX float64
	PointerY float64
}

// Direction returns the unit-normalized movement vector for the
// directional flags. Returns (0, 0) when no flag is set.
func (s Snapshot) Direction() (dx, dy float64) {
	if s.Left {
		dx -= 1
	}
	if s.Right {
		dx += 1
	}
	if s.Up {
		dy -= 1
	}
	if s.Down {
		dy += 1
	}
	return Normalize(dx, dy)
}

// Idle returns true when the snapshot carries no movement intent.
func (s Snapshot) Idle() bool {
	return !s.Left && !s.Right && !s.Up && !s.Down && !s.PointerActive
}
