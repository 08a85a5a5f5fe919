package blocks

import "github.com/blockfall/blockfall/internal/core"

// Kind identifies one of the seven tetromino shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// String returns the conventional one-letter name of the shape.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	default:
		return "?"
	}
}

// Tetromino is an immutable piece definition: a shape kind, an occupancy
// matrix in local coordinates, and a display color for the renderer.
// Shape matrices are rectangular but not necessarily square; rotation
// swaps their dimensions (the I piece is 1x4 or 4x1).
type Tetromino struct {
	Kind  Kind
	Shape [][]int
	Color core.Color
}

// tetrominoes holds the spawn orientation of each of the seven shapes.
var tetrominoes = [...]Tetromino{
	{
		Kind:  KindI,
		Shape: [][]int{{1, 1, 1, 1}},
		Color: core.ColorCyan,
	},
	{
		Kind: KindO,
		Shape: [][]int{
			{1, 1},
			{1, 1},
		},
		Color: core.ColorYellow,
	},
	{
		Kind: KindT,
		Shape: [][]int{
			{0, 1, 0},
			{1, 1, 1},
		},
		Color: core.ColorMagenta,
	},
	{
		Kind: KindS,
		Shape: [][]int{
			{0, 1, 1},
			{1, 1, 0},
		},
		Color: core.ColorGreen,
	},
	{
		Kind: KindZ,
		Shape: [][]int{
			{1, 1, 0},
			{0, 1, 1},
		},
		Color: core.ColorRed,
	},
	{
		Kind: KindJ,
		Shape: [][]int{
			{1, 0, 0},
			{1, 1, 1},
		},
		Color: core.ColorBlue,
	},
	{
		Kind: KindL,
		Shape: [][]int{
			{0, 0, 1},
			{1, 1, 1},
		},
		Color: core.ColorOrange,
	},
}

// TetrominoFor returns the spawn orientation of the given shape kind.
func TetrominoFor(k Kind) Tetromino {
	return tetrominoes[k]
}

// RandomSource supplies random numbers to the piece generator.
// *rand.Rand satisfies it; tests can substitute a scripted sequence.
type RandomSource interface {
	Intn(n int) int
}

// RandomTetromino picks one of the seven shapes uniformly.
func RandomTetromino(rng RandomSource) Tetromino {
	return tetrominoes[rng.Intn(len(tetrominoes))]
}

// Rotated returns a copy of the tetromino rotated 90 degrees clockwise:
// cell (i, j) of an RxC shape maps to (j, R-1-i) of the resulting CxR shape.
func (t Tetromino) Rotated() Tetromino {
	rows := len(t.Shape)
	cols := len(t.Shape[0])

	rotated := make([][]int, cols)
	for j := range rotated {
		rotated[j] = make([]int, rows)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			rotated[j][rows-1-i] = t.Shape[i][j]
		}
	}

	return Tetromino{Kind: t.Kind, Shape: rotated, Color: t.Color}
}

// Width returns the shape's width in cells.
func (t Tetromino) Width() int {
	if len(t.Shape) == 0 {
		return 0
	}
	return len(t.Shape[0])
}

// Height returns the shape's height in cells.
func (t Tetromino) Height() int {
	return len(t.Shape)
}

// Position locates a shape's local origin (top-left) on the grid.
// Y may be negative while a piece is spawning partially above the
// visible grid; that is tracked state, not an error.
type Position struct {
	X, Y int
}

// Piece is a tetromino placed at a grid position: the only mutable
// per-tick entity besides the grid itself.
type Piece struct {
	Tetromino Tetromino
	Pos       Position
}
