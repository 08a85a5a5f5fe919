// Package blocks implements the falling-block puzzle engine and the two
// game variants built on it. The engine (grid, collision, line clearing,
// session state machine) is pure; this file adapts it to the platform's
// Game interface and draws it into a screen buffer.
package blocks

import (
	"fmt"
	"math/rand"

	"github.com/blockfall/blockfall/internal/config"
	"github.com/blockfall/blockfall/internal/core"
	"github.com/blockfall/blockfall/internal/registry"
)

// Variant selects which of the two shipped games an instance is.
type Variant string

const (
	VariantTetris        Variant = "tetris"
	VariantLineDestroyer Variant = "linedestroyer"
)

// Rendering glyphs.
const (
	lockedGlyph = '█'
	pieceGlyph  = '█'
	ghostGlyph  = '░'
)

// Sidebar width for the next-piece preview and stats.
const sidebarWidth = 16

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Session to the platform's fixed-tick Game interface.
type Game struct {
	variant Variant

	session *Session
	rules   Rules
	record  bool // Persist game-over scores (Line Destroyer)

	runtime     core.RuntimeConfig
	tick        uint64
	dropCounter int

	// Layout (computed from screen size)
	boardX   int
	boardY   int
	tooSmall bool
}

// New creates the Tetris variant.
func New() *Game {
	return &Game{variant: VariantTetris}
}

// NewLineDestroyer creates the Line Destroyer variant.
func NewLineDestroyer() *Game {
	return &Game{variant: VariantLineDestroyer}
}

func init() {
	registry.Register(string(VariantTetris), func() registry.Game {
		return New()
	})
	registry.Register(string(VariantLineDestroyer), func() registry.Game {
		return NewLineDestroyer()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantLineDestroyer {
		return "Line Destroyer"
	}
	return "Tetris"
}

// RecordsScores reports whether game-over scores should be persisted.
// Only the Line Destroyer variant feeds the high-score board.
func (g *Game) RecordsScores() bool {
	return g.record
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.tick = 0
	g.dropCounter = 0

	var (
		fileCfg config.BlocksConfig
		err     error
	)
	if g.variant == VariantLineDestroyer {
		fileCfg, err = config.LoadLineDestroyer(configPath)
		if err != nil {
			fileCfg = config.DefaultLineDestroyerConfig()
		}
	} else {
		fileCfg, err = config.LoadTetris(configPath)
		if err != nil {
			fileCfg = config.DefaultTetrisConfig()
		}
	}

	g.rules = rulesFromConfig(fileCfg)
	g.record = fileCfg.HighScores.Enabled

	g.session = NewSession(g.rules, rand.New(rand.NewSource(cfg.Seed)))
	g.session.Start()

	g.layout()
}

// rulesFromConfig converts the YAML configuration into engine rules.
func rulesFromConfig(c config.BlocksConfig) Rules {
	rules := DefaultRules()
	rules.Width = c.Board.Width
	rules.Height = c.Board.Height
	rules.LineScore = c.Scoring.LineScore
	rules.HardDropBonus = c.Scoring.HardDropBonus
	rules.LinesPerLevel = c.Scoring.LinesPerLevel
	rules.BaseInterval = msToDuration(c.Speed.BaseIntervalMs)
	rules.IntervalStep = msToDuration(c.Speed.IntervalStepMs)
	rules.MinInterval = msToDuration(c.Speed.MinIntervalMs)
	return rules
}

// layout computes board placement and the too-small flag.
func (g *Game) layout() {
	boardW := g.rules.Width*2 + 2 // Cells are two columns wide plus border
	boardH := g.rules.Height + 2

	requiredW := boardW + sidebarWidth + 2
	requiredH := boardH + 2 // HUD lines on top
	g.tooSmall = g.runtime.ScreenW < requiredW || g.runtime.ScreenH < requiredH

	g.boardX = (g.runtime.ScreenW - boardW - sidebarWidth) / 2
	if g.boardX < 0 {
		g.boardX = 0
	}
	g.boardY = 2
}

// Session exposes the underlying state machine, mainly for events wiring
// and tests. The platform drives the game through Step.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns the engine snapshot for rendering and determinism tests.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Pause toggles between playing and paused; a finished game is
	// unaffected because both transitions guard on phase.
	if in.Has(core.ActionPause) {
		if g.session.Phase() == PhasePaused {
			g.session.Resume()
		} else {
			g.session.Pause()
		}
	}

	if g.session.Phase() != PhasePlaying {
		return core.StepResult{State: g.State()}
	}

	// The fresh session has no piece in play; spawn before handling input
	// so the first visible frame already shows a falling piece.
	if g.session.Current() == nil {
		g.session.Tick()
	}

	switch {
	case in.Has(core.ActionLeft):
		g.session.MoveLeft()
	case in.Has(core.ActionRight):
		g.session.MoveRight()
	}
	if in.Has(core.ActionRotate) {
		g.session.Rotate()
	}

	switch {
	case in.Has(core.ActionHardDrop):
		g.session.HardDrop()
		g.dropCounter = 0
	case in.Has(core.ActionDown):
		g.session.MoveDown()
		g.dropCounter = 0
	default:
		g.dropCounter++
		if g.dropCounter >= g.ticksPerDrop() {
			g.session.Tick()
			g.dropCounter = 0
		}
	}

	return core.StepResult{State: g.State()}
}

// ticksPerDrop converts the session's drop interval into simulation ticks.
// Re-evaluated every tick, so a level up re-arms the descent timer.
func (g *Game) ticksPerDrop() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	ticks := int(g.session.DropInterval().Milliseconds()) * rate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Phase() == PhaseGameOver,
		Paused:   g.session.Phase() == PhasePaused,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	snap := g.session.Snapshot()

	g.renderBoard(dst, snap)
	g.renderSidebar(dst, snap)

	switch snap.Phase {
	case PhaseGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d", snap.Score))
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.session != nil {
		hud = fmt.Sprintf(" %s — Score: %d  Level: %d  Lines: %d",
			g.Title(), g.session.Score(), g.session.Level(), g.session.Lines())
	} else {
		hud = " " + g.Title()
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the playfield: border, locked cells, ghost, piece.
func (g *Game) renderBoard(dst *core.Screen, snap Snapshot) {
	boardW := g.rules.Width*2 + 2

	dst.DrawBox(core.NewRect(g.boardX, g.boardY, boardW, g.rules.Height+2))

	for y, row := range snap.Grid {
		for x, v := range row {
			if v != CellEmpty {
				g.setBoardCell(dst, x, y, lockedGlyph, core.ColorGray)
			}
		}
	}

	if snap.Current == nil {
		return
	}
	piece := *snap.Current

	// Ghost: the hard-drop resting position, drawn before the piece so a
	// low piece overdraws its own ghost.
	ghost := piece
	ghost.Pos.Y = snap.GhostY
	g.renderPiece(dst, ghost, ghostGlyph, core.ColorGray)
	g.renderPiece(dst, piece, pieceGlyph, piece.Tetromino.Color)
}

// renderPiece draws every occupied, visible cell of a piece.
func (g *Game) renderPiece(dst *core.Screen, p Piece, glyph rune, color core.Color) {
	for y, row := range p.Tetromino.Shape {
		for x, v := range row {
			if v == 0 {
				continue
			}
			boardX := p.Pos.X + x
			boardY := p.Pos.Y + y
			if boardY < 0 {
				continue // Spawning above the ceiling
			}
			g.setBoardCell(dst, boardX, boardY, glyph, color)
		}
	}
}

// setBoardCell draws one grid cell as a two-column block.
func (g *Game) setBoardCell(dst *core.Screen, x, y int, glyph rune, color core.Color) {
	sx := g.boardX + 1 + x*2
	sy := g.boardY + 1 + y
	dst.SetCell(sx, sy, glyph, color)
	dst.SetCell(sx+1, sy, glyph, color)
}

// renderSidebar draws the next-piece preview and session stats.
func (g *Game) renderSidebar(dst *core.Screen, snap Snapshot) {
	x := g.boardX + g.rules.Width*2 + 4
	y := g.boardY

	dst.DrawText(x, y, "Next:")
	for py, row := range snap.Next.Shape {
		for px, v := range row {
			if v != 0 {
				dst.SetCell(x+px*2, y+2+py, pieceGlyph, snap.Next.Color)
				dst.SetCell(x+px*2+1, y+2+py, pieceGlyph, snap.Next.Color)
			}
		}
	}

	dst.DrawText(x, y+7, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawText(x, y+8, fmt.Sprintf("Level: %d", snap.Level))
	dst.DrawText(x, y+9, fmt.Sprintf("Lines: %d", snap.Lines))

	dst.DrawText(x, y+12, "←/→ move")
	dst.DrawText(x, y+13, "↑ rotate")
	dst.DrawText(x, y+14, "↓ soft drop")
	dst.DrawText(x, y+15, "space drop")
	dst.DrawText(x, y+16, "p pause")
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			isTopOrBottom := y == boxY || y == boxY+boxH-1
			isLeftOrRight := x == boxX || x == boxX+boxW-1
			switch {
			case isTopOrBottom && isLeftOrRight:
				dst.Set(x, y, '+')
			case isTopOrBottom:
				dst.Set(x, y, '-')
			case isLeftOrRight:
				dst.Set(x, y, '|')
			default:
				dst.Set(x, y, ' ')
			}
		}
	}

	g.drawCenteredText(dst, line1, boxY+1)
	g.drawCenteredText(dst, line2, boxY+3)
}

// drawCenteredText draws text centered horizontally.
func (g *Game) drawCenteredText(dst *core.Screen, text string, y int) {
	if y < 0 || y >= dst.Height() {
		return
	}
	x := (dst.Width() - len(text)) / 2
	for i, ch := range text {
		px := x + i
		if px >= 0 && px < dst.Width() {
			dst.Set(px, y, ch)
		}
	}
}
