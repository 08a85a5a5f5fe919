package blocks

// IsValidMove reports whether the tetromino can occupy pos on the grid.
// For every occupied local cell, the resolved board coordinate must lie
// inside the horizontal bounds, above the floor, and on an empty cell.
// Cells resolving above the visible grid (boardY < 0) are exempt from all
// checks, which permits spawning and rotation overlap above the ceiling.
//
// This predicate is the single source of truth for every movement,
// rotation, spawn, and drop decision. It is pure and side-effect-free.
func IsValidMove(g Grid, t Tetromino, pos Position) bool {
	for y, row := range t.Shape {
		for x, v := range row {
			if v == 0 {
				continue
			}

			boardX := pos.X + x
			boardY := pos.Y + y

			if boardY < 0 {
				continue
			}
			if boardX < 0 || boardX >= g.Width() || boardY >= g.Height() {
				return false
			}
			if g[boardY][boardX] != CellEmpty {
				return false
			}
		}
	}
	return true
}

// Place returns a new grid with every occupied cell of the piece locked in.
// Cells that resolve above the visible grid are silently dropped; a game
// reaching placement through normal collision checks never produces them.
func Place(g Grid, p Piece) Grid {
	placed := g.Clone()
	for y, row := range p.Tetromino.Shape {
		for x, v := range row {
			if v == 0 {
				continue
			}

			boardX := p.Pos.X + x
			boardY := p.Pos.Y + y

			if boardY < 0 {
				continue
			}
			if boardX >= 0 && boardX < placed.Width() && boardY < placed.Height() {
				placed[boardY][boardX] = CellLocked
			}
		}
	}
	return placed
}

// DropPosition returns the lowest valid position reachable by moving the
// piece straight down: the resting position for a hard drop. Terminates
// because the floor check bounds the descent.
func DropPosition(g Grid, p Piece) Position {
	pos := p.Pos
	for IsValidMove(g, p.Tetromino, Position{X: pos.X, Y: pos.Y + 1}) {
		pos.Y++
	}
	return pos
}
