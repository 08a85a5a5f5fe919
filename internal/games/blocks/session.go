package blocks

import "time"

// Phase is the lifecycle state of a play session.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Rules parameterizes one engine instance: board dimensions, scoring
// constants, and the level speed curve. Both shipped games are built from
// the same engine with their own Rules.
type Rules struct {
	Width  int
	Height int

	// LineScore is the per-line score multiplier; clearing n lines at
	// level L awards n * LineScore * L.
	LineScore int

	// HardDropBonus is the flat score awarded on every hard drop,
	// regardless of lines cleared.
	HardDropBonus int

	// LinesPerLevel controls leveling: level = lines/LinesPerLevel + 1.
	LinesPerLevel int

	// BaseInterval is the automatic drop interval at level 1.
	// Each level up subtracts IntervalStep, floored at MinInterval.
	BaseInterval time.Duration
	IntervalStep time.Duration
	MinInterval  time.Duration
}

// DefaultRules returns the standard 10x20 rules both games start from.
func DefaultRules() Rules {
	return Rules{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		LineScore:     100,
		HardDropBonus: 20,
		LinesPerLevel: 10,
		BaseInterval:  time.Second,
		IntervalStep:  50 * time.Millisecond,
		MinInterval:   50 * time.Millisecond,
	}
}

// msToDuration converts config milliseconds into a duration.
func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// CollisionFunc has the shape of IsValidMove. Tests may install a
// substitute to force specific code paths deterministically.
type CollisionFunc func(Grid, Tetromino, Position) bool

// Events are optional notifications emitted by the session. Any collaborator
// (renderer, persistence, sound) can subscribe; nil callbacks are skipped.
type Events struct {
	// LineCleared fires after rows are removed, with the count from this
	// placement and the session total.
	LineCleared func(count, total int)

	// LevelUp fires when the level increases.
	LevelUp func(level int)

	// GameOver fires once on the transition into PhaseGameOver, with the
	// final score. Persistence failures in the handler are the handler's
	// concern; the transition itself never depends on it.
	GameOver func(score int)
}

// Session is the falling-block state machine: it owns the grid and piece
// state and exposes the command API an input layer drives. All methods
// must be called from a single goroutine; the session does no locking.
type Session struct {
	rules   Rules
	rng     RandomSource
	isValid CollisionFunc
	events  Events

	grid    Grid
	current *Piece
	next    Tetromino

	score int
	level int
	lines int
	phase Phase
}

// NewSession creates an idle session with the given rules and random
// source. Call Start to begin playing.
func NewSession(rules Rules, rng RandomSource) *Session {
	return &Session{
		rules:   rules,
		rng:     rng,
		isValid: IsValidMove,
		phase:   PhaseIdle,
		grid:    NewGrid(rules.Width, rules.Height),
		level:   1,
	}
}

// SetEvents installs the event callbacks.
func (s *Session) SetEvents(ev Events) {
	s.events = ev
}

// SetCollisionFunc overrides the collision predicate. Intended for tests.
func (s *Session) SetCollisionFunc(f CollisionFunc) {
	if f != nil {
		s.isValid = f
	}
}

// Start resets the session to a fresh playing state from any phase:
// empty grid, zero score, level 1, no current piece. The nil current
// piece makes the next tick spawn immediately.
func (s *Session) Start() {
	s.grid = NewGrid(s.rules.Width, s.rules.Height)
	s.current = nil
	s.next = RandomTetromino(s.rng)
	s.score = 0
	s.level = 1
	s.lines = 0
	s.phase = PhasePlaying
}

// Pause suspends play. No-op outside PhasePlaying.
func (s *Session) Pause() {
	if s.phase == PhasePlaying {
		s.phase = PhasePaused
	}
}

// Resume continues a paused session. No-op outside PhasePaused, so a
// finished game stays finished.
func (s *Session) Resume() {
	if s.phase == PhasePaused {
		s.phase = PhasePlaying
	}
}

// Tick is the automatic-descent entry point the timing driver calls every
// DropInterval. It spawns a piece when none is in play, otherwise it
// behaves like MoveDown.
func (s *Session) Tick() {
	if s.phase != PhasePlaying {
		return
	}
	if s.current == nil {
		s.spawn()
		return
	}
	s.descend(false)
}

// MoveDown performs a single soft drop. A blocked descent locks the piece.
func (s *Session) MoveDown() {
	if !s.accepting() {
		return
	}
	s.descend(false)
}

// MoveLeft shifts the piece one column left; blocked moves are ignored.
func (s *Session) MoveLeft() {
	s.shift(-1)
}

// MoveRight shifts the piece one column right; blocked moves are ignored.
func (s *Session) MoveRight() {
	s.shift(1)
}

func (s *Session) shift(dx int) {
	if !s.accepting() {
		return
	}
	candidate := Position{X: s.current.Pos.X + dx, Y: s.current.Pos.Y}
	if s.isValid(s.grid, s.current.Tetromino, candidate) {
		s.current.Pos = candidate
	}
}

// Rotate turns the piece 90 degrees clockwise if the rotated shape fits at
// the current position. There is no wall kick: a blocked rotation is
// dropped silently.
func (s *Session) Rotate() {
	if !s.accepting() {
		return
	}
	rotated := s.current.Tetromino.Rotated()
	if s.isValid(s.grid, rotated, s.current.Pos) {
		s.current.Tetromino = rotated
	}
}

// HardDrop moves the piece straight to its resting position and locks it,
// awarding the flat hard-drop bonus.
func (s *Session) HardDrop() {
	if !s.accepting() {
		return
	}
	s.current.Pos = DropPosition(s.grid, *s.current)
	s.lock(true)
}

// accepting reports whether piece commands may mutate state right now.
func (s *Session) accepting() bool {
	return s.phase == PhasePlaying && s.current != nil
}

// descend moves the piece one row down, locking it when blocked.
func (s *Session) descend(hardDrop bool) {
	candidate := Position{X: s.current.Pos.X, Y: s.current.Pos.Y + 1}
	if s.isValid(s.grid, s.current.Tetromino, candidate) {
		s.current.Pos = candidate
		return
	}
	s.lock(hardDrop)
}

// lock commits the current piece into the grid, clears and scores complete
// rows, and spawns the next piece.
func (s *Session) lock(hardDrop bool) {
	s.grid = Place(s.grid, *s.current)

	grid, cleared := ClearLines(s.grid)
	s.grid = grid

	if cleared > 0 {
		// Score uses the level in effect when the lines were completed.
		s.score += cleared * s.rules.LineScore * s.level
		s.lines += cleared

		level := s.lines/s.rules.LinesPerLevel + 1
		if level != s.level {
			s.level = level
			if s.events.LevelUp != nil {
				s.events.LevelUp(level)
			}
		}

		if s.events.LineCleared != nil {
			s.events.LineCleared(cleared, s.lines)
		}
	}

	if hardDrop {
		s.score += s.rules.HardDropBonus
	}

	s.spawn()
}

// spawn brings the preview piece into play and draws a new preview.
// A spawn that immediately collides ends the session.
func (s *Session) spawn() {
	piece := Piece{
		Tetromino: s.next,
		Pos:       s.spawnPosition(),
	}
	s.next = RandomTetromino(s.rng)
	s.current = &piece

	if !s.isValid(s.grid, piece.Tetromino, piece.Pos) {
		s.phase = PhaseGameOver
		if s.events.GameOver != nil {
			s.events.GameOver(s.score)
		}
	}
}

func (s *Session) spawnPosition() Position {
	return Position{X: s.rules.Width/2 - 1, Y: 0}
}

// DropInterval returns the current automatic-descent period. The timing
// driver must re-read it after line clears, since level ups shorten it.
func (s *Session) DropInterval() time.Duration {
	interval := s.rules.BaseInterval - time.Duration(s.level-1)*s.rules.IntervalStep
	if interval < s.rules.MinInterval {
		return s.rules.MinInterval
	}
	return interval
}

// Grid returns a copy of the locked-cell grid.
func (s *Session) Grid() Grid {
	return s.grid.Clone()
}

// Current returns a copy of the piece in play, or nil between spawns.
func (s *Session) Current() *Piece {
	if s.current == nil {
		return nil
	}
	p := *s.current
	return &p
}

// Next returns the preview tetromino.
func (s *Session) Next() Tetromino {
	return s.next
}

// Score returns the accumulated session score.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level, starting at 1.
func (s *Session) Level() int {
	return s.level
}

// Lines returns the total lines cleared this session.
func (s *Session) Lines() int {
	return s.lines
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Rules returns the rules this session was built with.
func (s *Session) Rules() Rules {
	return s.rules
}
