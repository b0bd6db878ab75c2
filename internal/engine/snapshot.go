package engine

import "time"

// Snapshot captures the complete observable game state for rendering,
// determinism testing, and replay.
type Snapshot struct {
	Board       Board
	Active      PieceType
	Rotation    int
	X, Y        int
	Next        PieceType
	Score       int
	Level       int
	Lines       int
	TetrisCount int
	Combo       int
	State       State
	TimePlayed  time.Duration
}

// Snapshot returns the current game snapshot. The board copy excludes the
// falling piece; use ActiveBlocks to overlay it.
func (g *Game) Snapshot(now time.Time) Snapshot {
	return Snapshot{
		Board:       g.board,
		Active:      g.active,
		Rotation:    g.rotation,
		X:           g.x,
		Y:           g.y,
		Next:        g.next,
		Score:       g.score,
		Level:       g.level,
		Lines:       g.lines,
		TetrisCount: g.tetrisCount,
		Combo:       g.combo,
		State:       g.state,
		TimePlayed:  g.TimePlayed(now),
	}
}

// ActiveBlocks returns the absolute board coordinates occupied by the
// falling piece in this snapshot.
func (s Snapshot) ActiveBlocks() []Offset {
	blocks := s.Active.Blocks(s.Rotation)
	out := make([]Offset, len(blocks))
	for i, o := range blocks {
		out[i] = Offset{X: s.X + o.X, Y: s.Y + o.Y}
	}
	return out
}
