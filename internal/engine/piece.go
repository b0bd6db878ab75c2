// Package engine implements the blockfall simulation core: the board,
// the active piece state machine, gravity, locking, line clearing, and
// scoring. It contains pure logic with no TUI dependencies; the platform
// drives it through operation calls and a periodic clock callback and
// observes it through the event bus.
package engine

// PieceType identifies one of the seven tetrominoes.
type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceT
	PieceS
	PieceZ
	PieceJ
	PieceL

	// PieceCount is the number of distinct piece types.
	PieceCount = 7
)

// String returns the conventional one-letter name of the piece.
func (p PieceType) String() string {
	switch p {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceT:
		return "T"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	default:
		return "?"
	}
}

// Offset is a cell offset relative to a piece's anchor position.
type Offset struct {
	X, Y int
}

// pieceRotations holds the fixed rotation table for every piece type.
// Each entry lists the four occupied cells for one rotation state.
// Rotation cycles through the table; there is no wall-kick compensation.
// Pieces with rotational symmetry carry fewer entries (O has one,
// I/S/Z have two).
var pieceRotations = [PieceCount][][]Offset{
	PieceI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
	},
	PieceO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	PieceT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	PieceS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
	},
	PieceZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
	},
	PieceJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	PieceL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// RotationCount returns how many distinct rotation states the piece has.
func (p PieceType) RotationCount() int {
	return len(pieceRotations[p])
}

// Blocks returns the occupied cell offsets for the given rotation state.
// The rotation index is normalized into the piece's table, so callers may
// pass any non-negative value.
func (p PieceType) Blocks(rotation int) []Offset {
	table := pieceRotations[p]
	return table[rotation%len(table)]
}
