package blocks

import (
	"reflect"
	"testing"
)

func TestIsValidMoveBounds(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)
	i := TetrominoFor(KindI) // 1x4 horizontal

	tests := []struct {
		name  string
		pos   Position
		valid bool
	}{
		{"inside", Position{X: 4, Y: 0}, true},
		{"left edge", Position{X: 0, Y: 0}, true},
		{"right edge", Position{X: 6, Y: 0}, true},
		{"past left wall", Position{X: -1, Y: 0}, false},
		{"past right wall", Position{X: 7, Y: 0}, false},
		{"on the floor", Position{X: 4, Y: 19}, true},
		{"below the floor", Position{X: 4, Y: 20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsValidMove(g, i, tc.pos); got != tc.valid {
				t.Errorf("IsValidMove(%+v) = %v, want %v", tc.pos, got, tc.valid)
			}
		})
	}
}

func TestIsValidMoveAboveCeiling(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)
	o := TetrominoFor(KindO) // 2x2

	// Entirely above the visible grid: tolerated while spawning.
	if !IsValidMove(g, o, Position{X: 4, Y: -2}) {
		t.Error("a piece fully above the ceiling should be a valid position")
	}

	// Straddling the ceiling: only the visible rows are checked.
	if !IsValidMove(g, o, Position{X: 4, Y: -1}) {
		t.Error("a piece straddling the ceiling should be a valid position")
	}

	// The visible row still collides with locked cells.
	g[0][4] = CellLocked
	if IsValidMove(g, o, Position{X: 4, Y: -1}) {
		t.Error("the visible part of a straddling piece must respect occupancy")
	}
}

func TestIsValidMoveOccupancy(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)
	g[10][5] = CellLocked
	o := TetrominoFor(KindO)

	if IsValidMove(g, o, Position{X: 5, Y: 9}) {
		t.Error("move onto a locked cell should be rejected")
	}
	if IsValidMove(g, o, Position{X: 4, Y: 9}) {
		t.Error("overlap via the right column should be rejected")
	}
	if !IsValidMove(g, o, Position{X: 6, Y: 9}) {
		t.Error("adjacent position should be accepted")
	}
}

func TestIsValidMoveIgnoresEmptyShapeCells(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)
	g[10][4] = CellLocked

	// The S piece's bottom-right local cell is empty; a locked board cell
	// underneath it must not reject the move.
	s := TetrominoFor(KindS) // [[0,1,1],[1,1,0]]
	if !IsValidMove(g, s, Position{X: 2, Y: 9}) {
		t.Error("empty shape cells must be exempt from occupancy checks")
	}
}

func TestPlaceLocksCells(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)
	p := Piece{Tetromino: TetrominoFor(KindI), Pos: Position{X: 4, Y: 19}}

	placed := Place(g, p)

	for x := 4; x <= 7; x++ {
		if placed[19][x] != CellLocked {
			t.Errorf("cell (%d, 19) should be locked", x)
		}
	}

	// The input grid is an immutable snapshot.
	if !reflect.DeepEqual(g, NewGrid(DefaultWidth, DefaultHeight)) {
		t.Error("Place must not mutate its input grid")
	}
}

func TestPlaceDropsCellsAboveCeiling(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)
	p := Piece{Tetromino: TetrominoFor(KindO), Pos: Position{X: 4, Y: -1}}

	placed := Place(g, p)

	// Only the visible row is committed.
	if placed[0][4] != CellLocked || placed[0][5] != CellLocked {
		t.Error("visible row of a straddling piece should be locked")
	}
	locked := 0
	for _, row := range placed {
		for _, v := range row {
			if v != CellEmpty {
				locked++
			}
		}
	}
	if locked != 2 {
		t.Errorf("expected 2 locked cells, got %d", locked)
	}
}

func TestDropPositionEmptyGrid(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)
	p := Piece{Tetromino: TetrominoFor(KindI), Pos: Position{X: 4, Y: 0}}

	rest := DropPosition(g, p)

	if rest != (Position{X: 4, Y: 19}) {
		t.Errorf("rest = %+v, want {4 19}", rest)
	}
}

func TestDropPositionOntoStack(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)
	fillRow(g, 19)

	p := Piece{Tetromino: TetrominoFor(KindO), Pos: Position{X: 4, Y: 0}}
	rest := DropPosition(g, p)

	// The 2x2 O piece rests with its bottom row on top of the stack.
	if rest != (Position{X: 4, Y: 17}) {
		t.Errorf("rest = %+v, want {4 17}", rest)
	}
}

func TestDropPositionAlreadyResting(t *testing.T) {
	g := NewGrid(DefaultWidth, DefaultHeight)
	p := Piece{Tetromino: TetrominoFor(KindI), Pos: Position{X: 4, Y: 19}}

	if rest := DropPosition(g, p); rest != p.Pos {
		t.Errorf("rest = %+v, want unchanged %+v", rest, p.Pos)
	}
}
