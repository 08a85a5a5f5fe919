package blocks

import "time"

// Snapshot is a read-only view of session state, sufficient for a
// rendering collaborator to redraw after every command or tick, and for
// determinism tests to compare runs.
type Snapshot struct {
	Grid    Grid   // Locked cells only, deep copy
	Current *Piece // Piece in play, nil between spawns
	Next    Tetromino
	GhostY  int // Resting row of the current piece, -1 when no piece

	Score int
	Level int
	Lines int
	Phase Phase

	DropInterval time.Duration
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Grid:         s.grid.Clone(),
		Current:      s.Current(),
		Next:         s.next,
		GhostY:       -1,
		Score:        s.score,
		Level:        s.level,
		Lines:        s.lines,
		Phase:        s.phase,
		DropInterval: s.DropInterval(),
	}
	if s.current != nil {
		snap.GhostY = DropPosition(s.grid, *s.current).Y
	}
	return snap
}
