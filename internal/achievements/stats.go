// Package achievements implements the event-driven achievement rule
// engine: a declarative catalog of unlock conditions evaluated against a
// running stats tally fed by game events, with prerequisite chains,
// cascading resolution, a durable unlocked set, and a bounded
// notification queue.
package achievements

// Field names a stat the catalog can condition on.
type Field string

const (
	FieldScore       Field = "score"
	FieldLevel       Field = "level"
	FieldLines       Field = "lines"
	FieldTetrisCount Field = "tetris_count"
	FieldCombo       Field = "combo"
	FieldTimePlayed  Field = "time_played" // whole seconds
)

// Stats is the mutable per-game tally the rule engine evaluates against.
// It is rebuilt from zero on every new game and updated incrementally
// from engine events. Only unlock records and the aggregate session stats
// are persisted, never the tally itself.
type Stats struct {
	Score       int
	Level       int
	Lines       int
	TetrisCount int
	Combo       int
	TimePlayed  int // seconds
}

// Value returns the named stat, clamped to a non-negative floor.
// The second return is false for fields this tally does not carry, which
// callers treat as "skip, do not unlock".
func (s Stats) Value(f Field) (int, bool) {
	switch f {
	case FieldScore:
		return clampNonNegative(s.Score), true
	case FieldLevel:
		return clampNonNegative(s.Level), true
	case FieldLines:
		return clampNonNegative(s.Lines), true
	case FieldTetrisCount:
		return clampNonNegative(s.TetrisCount), true
	case FieldCombo:
		return clampNonNegative(s.Combo), true
	case FieldTimePlayed:
		return clampNonNegative(s.TimePlayed), true
	default:
		return 0, false
	}
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// SessionStats is the aggregate record persisted across games.
type SessionStats struct {
	GamesPlayed int
	TotalLines  int
	TetrisCount int
	MaxCombo    int
	TimePlayed  int // seconds, cumulative
}
