package engine

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/events"
)

// State is the lifecycle state of a game.
type State int

const (
	StateNotStarted State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// baseScoreTable maps rows cleared in one lock to the base score award.
// The award is multiplied by the current level.
var baseScoreTable = [5]int{0, 100, 300, 500, 800}

// linesPerLevel is how many cumulative cleared lines advance the level.
const linesPerLevel = 10

// Piece spawn anchor. A fresh piece appears at the top center.
const (
	spawnX = 3
	spawnY = 0
)

// Gravity interval clamps in milliseconds.
const (
	minLevelIntervalMS = 100 // Floor before the speed multiplier is applied
	minIntervalMS      = 50  // Absolute floor after the speed multiplier
)

// Game is the falling-block state machine. All operations mutate state
// synchronously on the caller's turn; the step loop is driven externally
// through Advance. Lifecycle and gameplay events are published on the bus
// before the mutating call returns.
type Game struct {
	cfg config.GameConfig
	bus *events.Bus
	rng *rand.Rand

	board    Board
	active   PieceType
	rotation int
	x, y     int
	next     PieceType
	bag      []PieceType

	score       int
	level       int
	lines       int
	tetrisCount int
	combo       int
	speedMult   float64

	state       State
	startedAt   time.Time
	pausedAt    time.Time
	pausedAccum time.Duration
	finalTime   time.Duration
	lastFall    time.Time
	lastSecond  int
}

// New creates a game publishing on bus, tuned by cfg and seeded for
// deterministic piece draws.
func New(cfg config.GameConfig, bus *events.Bus, seed int64) *Game {
	cfg.Normalize()
	if bus == nil {
		bus = events.NewBus()
	}
	return &Game{
		cfg:       cfg,
		bus:       bus,
		rng:       rand.New(rand.NewSource(seed)),
		speedMult: 1.0,
	}
}

// Bus returns the event bus the game publishes on.
func (g *Game) Bus() *events.Bus {
	return g.bus
}

// Start clears the board, zeros all counters, draws the initial and next
// pieces, and enters Playing. Only valid from NotStarted; a finished or
// running game must go through Reset first.
func (g *Game) Start(now time.Time) {
	if g.state != StateNotStarted {
		return
	}
	g.board.Clear()
	g.score = 0
	g.level = 1
	g.lines = 0
	g.tetrisCount = 0
	g.combo = 0
	g.bag = g.bag[:0]

	g.active = g.draw()
	g.next = g.draw()
	g.rotation = 0
	g.x, g.y = spawnX, spawnY

	g.state = StatePlaying
	g.startedAt = now
	g.pausedAccum = 0
	g.finalTime = 0
	g.lastFall = now
	g.lastSecond = 0

	g.bus.Publish(events.GameStarted{Timestamp: now})
}

// Move translates the active piece by (dx, dy) if every resulting cell is
// in-bounds and unoccupied. Returns false and leaves state unchanged on
// rejection or when no piece is falling.
func (g *Game) Move(dx, dy int) bool {
	if g.state != StatePlaying {
		return false
	}
	if !g.board.Fits(g.active, g.rotation, g.x+dx, g.y+dy) {
		return false
	}
	g.x += dx
	g.y += dy
	return true
}

// Rotate advances the active piece to the next entry of its rotation
// table if the result is legal. Illegal rotations are silently rejected;
// there is no wall-kick compensation.
func (g *Game) Rotate() bool {
	if g.state != StatePlaying {
		return false
	}
	next := (g.rotation + 1) % g.active.RotationCount()
	if !g.board.Fits(g.active, next, g.x, g.y) {
		return false
	}
	g.rotation = next
	return true
}

// HardDrop moves the active piece straight down to its lowest legal
// resting position. The lock itself happens on the next clock callback:
// the gravity timer is expired so the following Advance locks the piece.
func (g *Game) HardDrop() {
	if g.state != StatePlaying {
		return
	}
	for g.Move(0, 1) {
	}
	g.lastFall = time.Time{}
}

// TogglePause suspends or resumes the step loop. Paused spans accumulate
// so played time excludes them exactly.
func (g *Game) TogglePause(now time.Time) {
	switch g.state {
	case StatePlaying:
		g.state = StatePaused
		g.pausedAt = now
		g.bus.Publish(events.GamePaused{IsPaused: true, TimePlayed: g.TimePlayed(now)})
	case StatePaused:
		paused := now.Sub(g.pausedAt)
		g.pausedAccum += paused
		// Shift the gravity timer so the pause does not count as fall time.
		if !g.lastFall.IsZero() {
			g.lastFall = g.lastFall.Add(paused)
		}
		g.state = StatePlaying
		g.bus.Publish(events.GamePaused{IsPaused: false, TimePlayed: g.TimePlayed(now)})
	}
}

// Reset halts the loop and returns to a non-playing, non-game-over,
// zero-duration state without starting a new game.
func (g *Game) Reset(now time.Time) {
	g.board.Clear()
	g.score = 0
	g.level = 1
	g.lines = 0
	g.tetrisCount = 0
	g.combo = 0
	g.bag = g.bag[:0]
	g.state = StateNotStarted
	g.pausedAccum = 0
	g.finalTime = 0
	g.lastSecond = 0
	g.bus.Publish(events.GameReset{Timestamp: now})
}

// SetSpeedMultiplier adjusts the gravity speed. Values are clamped to a
// sane range; 1.0 is normal speed.
func (g *Game) SetSpeedMultiplier(v float64) {
	g.speedMult = core.ClampF(v, 0.1, 10)
}

// SpeedMultiplier returns the current gravity speed multiplier.
func (g *Game) SpeedMultiplier() float64 {
	return g.speedMult
}

// FallInterval returns the current gravity interval:
// max(50ms, floor(max(100, baseFall-(level-1)*levelStep) / speedMultiplier)).
func (g *Game) FallInterval() time.Duration {
	ms := g.cfg.Gravity.BaseFallMS - (g.level-1)*g.cfg.Gravity.LevelStepMS
	if ms < minLevelIntervalMS {
		ms = minLevelIntervalMS
	}
	ms = int(float64(ms) / g.speedMult)
	if ms < minIntervalMS {
		ms = minIntervalMS
	}
	return time.Duration(ms) * time.Millisecond
}

// Advance is the external clock callback driving the step loop. If the
// gravity interval has elapsed the piece falls one row; a rejected fall
// locks the piece, clears lines, updates counters, and spawns the next
// piece. A colliding spawn ends the game.
func (g *Game) Advance(now time.Time) {
	if g.state != StatePlaying {
		return
	}

	tp := g.TimePlayed(now)
	if sec := int(tp / time.Second); sec != g.lastSecond {
		g.lastSecond = sec
		g.bus.Publish(events.TimeTick{TimePlayed: tp})
	}

	if g.lastFall.IsZero() || now.Sub(g.lastFall) >= g.FallInterval() {
		g.lastFall = now
		if !g.Move(0, 1) {
			g.lockActive(now)
		}
	}
}

// TimePlayed returns elapsed played time, excluding paused spans.
func (g *Game) TimePlayed(now time.Time) time.Duration {
	switch g.state {
	case StateNotStarted:
		return 0
	case StatePaused:
		return g.pausedAt.Sub(g.startedAt) - g.pausedAccum
	case StateGameOver:
		return g.finalTime
	default:
		return now.Sub(g.startedAt) - g.pausedAccum
	}
}

// lockActive makes the falling piece permanent board content and runs the
// post-lock sequence: line clearing, scoring, level and combo updates,
// and the next spawn.
func (g *Game) lockActive(now time.Time) {
	g.board.Lock(g.active, g.rotation, g.x, g.y)

	cleared := g.board.ClearFullRows()
	if cleared > 0 {
		if cleared > 4 {
			cleared = 4
		}
		delta := baseScoreTable[cleared] * g.level
		g.score += delta
		g.lines += cleared
		isTetris := cleared == 4
		if isTetris {
			g.tetrisCount++
		}

		prevLevel := g.level
		g.level = g.lines/linesPerLevel + 1

		g.bus.Publish(events.LinesCleared{
			Count:    cleared,
			IsTetris: isTetris,
			NewTotal: g.lines,
			NewLevel: g.level,
		})
		g.bus.Publish(events.ScoreUpdated{Score: g.score, Delta: delta, Level: g.level})
		if g.level > prevLevel {
			g.bus.Publish(events.LevelUp{Level: g.level, PreviousLevel: prevLevel})
		}

		g.combo++
		g.bus.Publish(events.ComboUpdated{Combo: g.combo, IsReset: false})
	} else if g.combo > 0 {
		g.combo = 0
		g.bus.Publish(events.ComboUpdated{Combo: 0, IsReset: true})
	}

	g.spawnNext(now)
}

// spawnNext promotes the queued piece and draws a fresh replacement.
// If the spawn position is already illegal the game is over.
func (g *Game) spawnNext(now time.Time) {
	g.active = g.next
	g.next = g.draw()
	g.rotation = 0
	g.x, g.y = spawnX, spawnY

	if g.board.Fits(g.active, g.rotation, g.x, g.y) {
		return
	}

	g.finalTime = now.Sub(g.startedAt) - g.pausedAccum
	g.state = StateGameOver
	g.bus.Publish(events.GameOver{
		Score:       g.score,
		Level:       g.level,
		Lines:       g.lines,
		TetrisCount: g.tetrisCount,
		TimePlayed:  g.finalTime,
	})
}

// draw produces the next piece type, either from a shuffled 7-bag or as
// an independent uniform draw.
func (g *Game) draw() PieceType {
	if !g.cfg.Randomizer.UseBag {
		return PieceType(g.rng.Intn(PieceCount))
	}
	if len(g.bag) == 0 {
		g.bag = append(g.bag,
			PieceI, PieceO, PieceT, PieceS, PieceZ, PieceJ, PieceL)
		g.rng.Shuffle(len(g.bag), func(i, j int) {
			g.bag[i], g.bag[j] = g.bag[j], g.bag[i]
		})
	}
	p := g.bag[0]
	g.bag = g.bag[1:]
	return p
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}
