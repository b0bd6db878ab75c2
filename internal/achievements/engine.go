package achievements

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/events"
)

// UnlockRecord is the durable trace of a single unlock. Created at most
// once per achievement id and never mutated; cleared only by a full reset.
type UnlockRecord struct {
	ID         string
	UnlockedAt time.Time
	Stats      Stats // Tally snapshot at unlock time
}

// Store persists the unlocked set and the aggregate session stats.
// Implementations must treat malformed stored data as absent rather than
// returning it as an error that would halt the game.
type Store interface {
	LoadUnlocked() ([]UnlockRecord, error)
	SaveUnlock(UnlockRecord) error
	LoadSessionStats() (SessionStats, error)
	SaveSessionStats(SessionStats) error
	ClearAchievements() error
}

// Progress reports how far a stat value is toward an achievement's
// primary threshold.
type Progress struct {
	Current int
	Target  int
	Percent float64 // Capped at 100
}

// Engine evaluates the achievement catalog against the running tally.
// All operations are synchronous; persistence failures are logged and
// never propagate into gameplay.
type Engine struct {
	catalog  []Achievement
	index    map[string]int
	unlocked map[string]UnlockRecord

	stats   Stats
	session SessionStats

	queue    []Achievement
	queueCap int

	store  Store
	logger *log.Logger
	bus    *events.Bus
	now    func() time.Time
}

// NewEngine creates an engine with the built-in catalog. The store may be
// nil for a purely in-memory engine (used by tests); load failures keep
// the last-good in-memory state.
func NewEngine(store Store, logger *log.Logger, queueCap int) *Engine {
	return NewEngineWithCatalog(DefaultCatalog(), store, logger, queueCap)
}

// NewEngineWithCatalog creates an engine with a custom catalog.
func NewEngineWithCatalog(catalog []Achievement, store Store, logger *log.Logger, queueCap int) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	if queueCap <= 0 {
		queueCap = 5
	}

	e := &Engine{
		catalog:  catalog,
		index:    make(map[string]int, len(catalog)),
		unlocked: make(map[string]UnlockRecord),
		queueCap: queueCap,
		store:    store,
		logger:   logger,
		now:      time.Now,
	}
	for i, a := range catalog {
		e.index[a.ID] = i
	}

	if store != nil {
		records, err := store.LoadUnlocked()
		if err != nil {
			logger.Warn("could not load unlocked achievements, starting empty", "error", err)
		} else {
			for _, r := range records {
				if _, known := e.index[r.ID]; known {
					e.unlocked[r.ID] = r
				}
			}
		}

		session, err := store.LoadSessionStats()
		if err != nil {
			logger.Warn("could not load session stats, starting empty", "error", err)
		} else {
			e.session = session
		}
	}

	return e
}

// Attach subscribes the engine to a game event bus. Unlocks are announced
// back on the same bus.
func (e *Engine) Attach(bus *events.Bus) {
	e.bus = bus
	bus.Subscribe(e.HandleEvent)
}

// Catalog returns the full achievement catalog in evaluation order.
func (e *Engine) Catalog() []Achievement {
	out := make([]Achievement, len(e.catalog))
	copy(out, e.catalog)
	return out
}

// Stats returns the current per-game tally.
func (e *Engine) Stats() Stats {
	return e.stats
}

// Session returns the persisted aggregate session stats.
func (e *Engine) Session() SessionStats {
	return e.session
}

// IsUnlocked reports whether the achievement has been unlocked.
func (e *Engine) IsUnlocked(id string) bool {
	_, ok := e.unlocked[id]
	return ok
}

// Unlocked returns all unlock records.
func (e *Engine) Unlocked() []UnlockRecord {
	out := make([]UnlockRecord, 0, len(e.unlocked))
	for _, a := range e.catalog {
		if r, ok := e.unlocked[a.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

// HandleEvent updates the tally from a game event and runs cascading
// evaluation. Delivery is synchronous, so by the time the emitting engine
// call returns, every unlock triggered by the event has been recorded.
func (e *Engine) HandleEvent(ev events.Event) {
	switch ev := ev.(type) {
	case events.GameStarted:
		e.stats = Stats{Level: 1}
		return

	case events.ScoreUpdated:
		e.stats.Score = ev.Score
		e.stats.Level = ev.Level

	case events.LinesCleared:
		e.stats.Lines = ev.NewTotal
		e.stats.Level = ev.NewLevel
		if ev.IsTetris {
			e.stats.TetrisCount++
		}

	case events.LevelUp:
		e.stats.Level = ev.Level

	case events.ComboUpdated:
		e.stats.Combo = ev.Combo
		if ev.Combo > e.session.MaxCombo {
			e.session.MaxCombo = ev.Combo
		}

	case events.TimeTick:
		e.stats.TimePlayed = int(ev.TimePlayed / time.Second)

	case events.GameOver:
		e.stats.Score = ev.Score
		e.stats.Level = ev.Level
		e.stats.Lines = ev.Lines
		e.stats.TetrisCount = ev.TetrisCount
		e.stats.TimePlayed = int(ev.TimePlayed / time.Second)
		e.recordGameOver(ev)

	default:
		// Reset and unlock announcements do not feed the tally.
		return
	}

	e.Resolve(e.stats)
}

// recordGameOver folds the final game stats into the aggregate session
// record and persists it.
func (e *Engine) recordGameOver(ev events.GameOver) {
	e.session.GamesPlayed++
	e.session.TotalLines += clampNonNegative(ev.Lines)
	e.session.TetrisCount += clampNonNegative(ev.TetrisCount)
	e.session.TimePlayed += clampNonNegative(int(ev.TimePlayed / time.Second))
	if e.store != nil {
		if err := e.store.SaveSessionStats(e.session); err != nil {
			e.logger.Error("could not persist session stats", "error", err)
		}
	}
}

// Unlock records the achievement as unlocked, enqueues a notification,
// and persists the record. Calling it again for the same id is a no-op.
// Returns true when the unlock was newly recorded.
func (e *Engine) Unlock(id string, snapshot Stats) bool {
	if _, done := e.unlocked[id]; done {
		return false
	}
	i, known := e.index[id]
	if !known {
		e.logger.Warn("unlock requested for unknown achievement", "id", id)
		return false
	}

	rec := UnlockRecord{ID: id, UnlockedAt: e.now(), Stats: snapshot}
	e.unlocked[id] = rec
	e.enqueue(e.catalog[i])

	if e.store != nil {
		if err := e.store.SaveUnlock(rec); err != nil {
			e.logger.Error("could not persist unlock", "id", id, "error", err)
		}
	}
	if e.bus != nil {
		e.bus.Publish(events.AchievementUnlocked{
			ID:        id,
			Rarity:    string(e.catalog[i].Rarity),
			Timestamp: rec.UnlockedAt,
		})
	}
	return true
}

// enqueue adds a pending notification, dropping the oldest entry when the
// queue is at capacity.
func (e *Engine) enqueue(a Achievement) {
	if len(e.queue) >= e.queueCap {
		dropped := e.queue[0]
		e.queue = e.queue[1:]
		e.logger.Warn("notification queue full, dropping oldest",
			"dropped", dropped.ID, "enqueued", a.ID)
	}
	e.queue = append(e.queue, a)
}

// Check runs one evaluation pass over the catalog. Prerequisites are
// checked against a snapshot of the unlocked set taken at the start of
// the pass, so at most one link of any dependency chain unlocks per pass.
// Returns the achievements newly unlocked by this pass.
func (e *Engine) Check(s Stats) []Achievement {
	passStart := make(map[string]bool, len(e.unlocked))
	for id := range e.unlocked {
		passStart[id] = true
	}

	var newly []Achievement
	for _, a := range e.catalog {
		if _, done := e.unlocked[a.ID]; done {
			continue
		}
		if a.Requires != "" && !passStart[a.Requires] {
			continue
		}
		holds, ok := a.Condition.Holds(s)
		if !ok || !holds {
			continue
		}
		allExtra := true
		for _, c := range a.Extra {
			h, ok := c.Holds(s)
			if !ok || !h {
				allExtra = false
				break
			}
		}
		if !allExtra {
			continue
		}
		if e.Unlock(a.ID, s) {
			newly = append(newly, a)
		}
	}
	return newly
}

// Resolve runs Check to a fixed point so a single stat jump resolves an
// entire prerequisite chain. The loop is capped at the catalog size: each
// pass unlocks at most one new link per chain, so no chain can need more
// passes than there are entries. Returns the total number of new unlocks.
func (e *Engine) Resolve(s Stats) int {
	total := 0
	for range e.catalog {
		n := len(e.Check(s))
		if n == 0 {
			break
		}
		total += n
	}
	return total
}

// GetProgress reports progress of currentValue toward the achievement's
// primary threshold. Unknown ids yield a zero-valued result.
func (e *Engine) GetProgress(id string, currentValue int) Progress {
	i, known := e.index[id]
	if !known {
		return Progress{}
	}
	target := e.catalog[i].Condition.Threshold
	current := clampNonNegative(currentValue)
	p := Progress{Current: current, Target: target}
	if target <= 0 {
		p.Percent = 100
		return p
	}
	p.Percent = float64(current) / float64(target) * 100
	if p.Percent > 100 {
		p.Percent = 100
	}
	return p
}

// ProgressStats returns the best stat values the engine can attest to
// outside a running game: the live tally merged field-wise with the
// aggregate session record and the snapshots captured at unlock time.
// For display only; unlock evaluation always uses the live tally.
func (e *Engine) ProgressStats() Stats {
	s := e.stats
	merge := func(dst *int, v int) {
		if v > *dst {
			*dst = v
		}
	}
	merge(&s.Lines, e.session.TotalLines)
	merge(&s.TetrisCount, e.session.TetrisCount)
	merge(&s.Combo, e.session.MaxCombo)
	merge(&s.TimePlayed, e.session.TimePlayed)
	for _, r := range e.unlocked {
		merge(&s.Score, r.Stats.Score)
		merge(&s.Level, r.Stats.Level)
		merge(&s.Lines, r.Stats.Lines)
		merge(&s.TetrisCount, r.Stats.TetrisCount)
		merge(&s.Combo, r.Stats.Combo)
		merge(&s.TimePlayed, r.Stats.TimePlayed)
	}
	return s
}

// NextNotification dequeues the oldest pending achievement.
func (e *Engine) NextNotification() (Achievement, bool) {
	if len(e.queue) == 0 {
		return Achievement{}, false
	}
	a := e.queue[0]
	e.queue = e.queue[1:]
	return a, true
}

// PendingNotifications returns how many notifications are queued.
func (e *Engine) PendingNotifications() int {
	return len(e.queue)
}

// ResetAll clears the unlocked set, the tally, the session aggregate, and
// the notification queue, and persists the cleared state.
func (e *Engine) ResetAll() {
	e.unlocked = make(map[string]UnlockRecord)
	e.stats = Stats{}
	e.session = SessionStats{}
	e.queue = nil
	if e.store != nil {
		if err := e.store.ClearAchievements(); err != nil {
			e.logger.Error("could not clear persisted achievements", "error", err)
		}
		if err := e.store.SaveSessionStats(e.session); err != nil {
			e.logger.Error("could not persist cleared session stats", "error", err)
		}
	}
}
