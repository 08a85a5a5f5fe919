package blocks

// Standard playfield dimensions. Rules may override them, but these are
// the defaults both shipped games use.
const (
	DefaultWidth  = 10
	DefaultHeight = 20
)

// Cell values stored in the grid.
const (
	CellEmpty  = 0
	CellLocked = 1
)

// Grid is a rectangular occupancy matrix indexed [y][x]. Grids are treated
// as immutable snapshots: every mutating operation returns a new Grid, so
// callers can compare references to detect change and swap states atomically.
type Grid [][]int

// NewGrid returns an empty width x height grid.
func NewGrid(width, height int) Grid {
	g := make(Grid, height)
	for y := range g {
		g[y] = make([]int, width)
	}
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for y, row := range g {
		c[y] = make([]int, len(row))
		copy(c[y], row)
	}
	return c
}

// rowComplete reports whether every cell in the row is locked.
func rowComplete(row []int) bool {
	for _, v := range row {
		if v == CellEmpty {
			return false
		}
	}
	return true
}

// ClearLines removes every complete row, preserving the relative order of
// the remainder, and prepends empty rows at the top until the original
// height is restored. Returns the compacted grid and the number of rows
// removed. With zero complete rows the content is returned unchanged.
func ClearLines(g Grid) (Grid, int) {
	height := g.Height()
	width := g.Width()

	remaining := make(Grid, 0, height)
	for _, row := range g {
		if !rowComplete(row) {
			kept := make([]int, width)
			copy(kept, row)
			remaining = append(remaining, kept)
		}
	}

	cleared := height - len(remaining)
	if cleared == 0 {
		return g, 0
	}

	result := make(Grid, 0, height)
	for i := 0; i < cleared; i++ {
		result = append(result, make([]int, width))
	}
	result = append(result, remaining...)

	return result, cleared
}
