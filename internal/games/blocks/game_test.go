package blocks

import (
	"strings"
	"testing"

	"github.com/blockfall/blockfall/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Given the same seed and inputs, two runs produce identical states.
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		switch {
		case i%17 == 0:
			inputSequence[i].Set(core.ActionLeft)
		case i%23 == 0:
			inputSequence[i].Set(core.ActionRotate)
		case i%41 == 0:
			inputSequence[i].Set(core.ActionHardDrop)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime(12345))
		for _, in := range inputSequence {
			g.Step(in)
		}
		return g.Snapshot()
	}

	s1 := run()
	s2 := run()

	if s1.Score != s2.Score || s1.Lines != s2.Lines || s1.Phase != s2.Phase {
		t.Errorf("determinism failed: run1={score %d lines %d %v} run2={score %d lines %d %v}",
			s1.Score, s1.Lines, s1.Phase, s2.Score, s2.Lines, s2.Phase)
	}
	if s1.Next.Kind != s2.Next.Kind {
		t.Error("determinism failed: piece sequences diverged")
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime(42))

	for i := 0; i < 200; i++ {
		in := core.NewInputFrame()
		if i%9 == 0 {
			in.Set(core.ActionHardDrop)
		}
		g.Step(in)
	}

	g.Reset(testRuntime(42))

	state := g.State()
	if state.Score != 0 {
		t.Errorf("Reset should clear score, got %d", state.Score)
	}
	if state.GameOver || state.Paused {
		t.Error("Reset should clear game over and paused flags")
	}
	if g.tick != 0 {
		t.Errorf("Reset should clear tick count, got %d", g.tick)
	}
}

func TestGameSpawnsOnFirstStep(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	g.Step(core.NewInputFrame())

	if g.Snapshot().Current == nil {
		t.Error("a piece should be in play after the first step")
	}
}

func TestGameAutoDropCadence(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	// At level 1 the drop interval is 1s; at 60 ticks per second the piece
	// descends every 60 ticks.
	for i := 0; i < 59; i++ {
		g.Step(core.NewInputFrame())
	}
	if y := g.Snapshot().Current.Pos.Y; y != 0 {
		t.Fatalf("piece moved early: y = %d after 59 ticks", y)
	}

	g.Step(core.NewInputFrame())
	if y := g.Snapshot().Current.Pos.Y; y != 1 {
		t.Errorf("y = %d after 60 ticks, want 1", y)
	}
}

func TestGameSoftDropResetsCadence(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}

	in := core.NewInputFrame()
	in.Set(core.ActionDown)
	g.Step(in)
	if y := g.Snapshot().Current.Pos.Y; y != 1 {
		t.Fatalf("y = %d after soft drop, want 1", y)
	}

	// The automatic counter restarted: another descent needs a full
	// interval, not the 30 ticks left over.
	for i := 0; i < 59; i++ {
		g.Step(core.NewInputFrame())
	}
	if y := g.Snapshot().Current.Pos.Y; y != 1 {
		t.Errorf("y = %d, soft drop should reset the auto-drop counter", y)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())
	x := g.Snapshot().Current.Pos.X

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	// Movement is rejected while paused.
	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	g.Step(left)
	if got := g.Snapshot().Current.Pos.X; got != x {
		t.Errorf("x = %d, want unchanged %d while paused", got, x)
	}

	resume := core.NewInputFrame()
	resume.Set(core.ActionPause)
	g.Step(resume)
	if g.State().Paused {
		t.Fatal("pause should toggle off")
	}

	g.Step(left)
	if got := g.Snapshot().Current.Pos.X; got != x-1 {
		t.Errorf("x = %d, want %d after resume", got, x-1)
	}
}

func TestGameHardDropScores(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.Set(core.ActionHardDrop)
	g.Step(in)

	if g.State().Score < 20 {
		t.Errorf("score = %d, want at least the hard-drop bonus", g.State().Score)
	}
}

func TestGameVariants(t *testing.T) {
	tetris := New()
	tetris.Reset(testRuntime(1))
	if tetris.ID() != "tetris" || tetris.Title() != "Tetris" {
		t.Errorf("tetris identity = %q/%q", tetris.ID(), tetris.Title())
	}
	if tetris.RecordsScores() {
		t.Error("tetris should not persist scores by default")
	}

	ld := NewLineDestroyer()
	ld.Reset(testRuntime(1))
	if ld.ID() != "linedestroyer" || ld.Title() != "Line Destroyer" {
		t.Errorf("line destroyer identity = %q/%q", ld.ID(), ld.Title())
	}
	if !ld.RecordsScores() {
		t.Error("line destroyer should persist scores by default")
	}

	// Both variants run the same rules out of the box.
	if tetris.rules != ld.rules {
		t.Error("default rules should match between variants")
	}
}

func TestGameTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}

	// The simulation is held while the window is too small.
	if g.Snapshot().Current != nil {
		t.Error("no piece should spawn while the screen is too small")
	}

	dst := core.NewScreen(20, 10)
	g.Render(dst)
	// The overlay is the only thing drawn besides the HUD.
	if !containsText(dst, "Window too small") {
		t.Error("render should show the too-small overlay")
	}
}

func TestGameRenderShowsBoardAndHUD(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.Step(core.NewInputFrame())

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	if !containsText(dst, "Tetris") {
		t.Error("HUD should contain the game title")
	}
	if !containsText(dst, "Next:") {
		t.Error("sidebar should contain the preview label")
	}
	if dst.Get(g.boardX, g.boardY) != '┌' {
		t.Error("board border should be drawn")
	}
}

// containsText reports whether any screen row contains the string.
func containsText(s *core.Screen, text string) bool {
	for y := 0; y < s.Height(); y++ {
		if strings.Contains(s.Row(y), text) {
			return true
		}
	}
	return false
}
