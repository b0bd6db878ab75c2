package engine

// Board dimensions are fixed for the lifetime of a game.
const (
	BoardWidth  = 10
	BoardHeight = 20
)

// Cell is the content of one board cell. Zero means empty; otherwise the
// cell holds the type of the piece that locked there.
type Cell uint8

// CellEmpty is an unoccupied cell.
const CellEmpty Cell = 0

// cellFor returns the cell tag for a locked piece of the given type.
func cellFor(p PieceType) Cell {
	return Cell(p) + 1
}

// Piece returns the piece type stored in a non-empty cell.
func (c Cell) Piece() PieceType {
	return PieceType(c - 1)
}

// Board is the fixed 10x20 playfield. Only locked cells persist across
// piece spawns; the active piece is tracked separately by the game.
type Board [BoardHeight][BoardWidth]Cell

// Clear empties every cell.
func (b *Board) Clear() {
	*b = Board{}
}

// Fits reports whether a piece of the given type and rotation, anchored
// at (x, y), occupies only in-bounds, empty cells.
func (b *Board) Fits(p PieceType, rotation, x, y int) bool {
	for _, o := range p.Blocks(rotation) {
		cx := x + o.X
		cy := y + o.Y
		if cx < 0 || cx >= BoardWidth || cy < 0 || cy >= BoardHeight {
			return false
		}
		if b[cy][cx] != CellEmpty {
			return false
		}
	}
	return true
}

// Lock writes the piece's occupied cells into the board. The caller must
// have verified the placement with Fits.
func (b *Board) Lock(p PieceType, rotation, x, y int) {
	for _, o := range p.Blocks(rotation) {
		b[y+o.Y][x+o.X] = cellFor(p)
	}
}

// ClearFullRows removes every completely filled row, shifting the rows
// above down and inserting empty rows at the top. Returns the number of
// rows removed.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for y := BoardHeight - 1; y >= 0; y-- {
		full := true
		for x := 0; x < BoardWidth; x++ {
			if b[y][x] == CellEmpty {
				full = false
				break
			}
		}
		if !full {
			continue
		}
		cleared++
		for pull := y; pull > 0; pull-- {
			b[pull] = b[pull-1]
		}
		b[0] = [BoardWidth]Cell{}
		y++ // Re-examine this row: it now holds the row that was above
	}
	return cleared
}
