// Package storage provides SQLite-based persistence for unlocked
// achievements, aggregate session stats, and high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/blockfall/internal/achievements"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	Score     int
	Level     int
	Lines     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			lines INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS unlocked_achievements (
			id TEXT PRIMARY KEY,
			unlocked_at DATETIME NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 0,
			lines INTEGER NOT NULL DEFAULT 0,
			tetris_count INTEGER NOT NULL DEFAULT 0,
			combo INTEGER NOT NULL DEFAULT 0,
			time_played INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS session_stats (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			games_played INTEGER NOT NULL DEFAULT 0,
			total_lines INTEGER NOT NULL DEFAULT 0,
			tetris_count INTEGER NOT NULL DEFAULT 0,
			max_combo INTEGER NOT NULL DEFAULT 0,
			time_played INTEGER NOT NULL DEFAULT 0
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished game's final score.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(score, level, lines int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (score, level, lines) VALUES (?, ?, ?)",
		score, level, lines,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores, ordered by score descending.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, level, lines, created_at
		 FROM scores
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Score, &e.Level, &e.Lines, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score, or 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// LoadUnlocked implements achievements.Store. Rows that cannot be scanned
// are skipped so one corrupted record does not lose the whole set.
func (s *Store) LoadUnlocked() ([]achievements.UnlockRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, unlocked_at, score, level, lines, tetris_count, combo, time_played
		 FROM unlocked_achievements
		 ORDER BY unlocked_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query unlocked achievements: %w", err)
	}
	defer rows.Close()

	var records []achievements.UnlockRecord
	for rows.Next() {
		var r achievements.UnlockRecord
		var unlockedAt any
		if err := rows.Scan(
			&r.ID,
			&unlockedAt,
			&r.Stats.Score,
			&r.Stats.Level,
			&r.Stats.Lines,
			&r.Stats.TetrisCount,
			&r.Stats.Combo,
			&r.Stats.TimePlayed,
		); err != nil {
			// Skip malformed rows rather than dropping the whole set
			continue
		}
		r.UnlockedAt = parseTimestamp(unlockedAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// SaveUnlock implements achievements.Store. Re-saving an id is a no-op,
// preserving the original unlock record.
func (s *Store) SaveUnlock(r achievements.UnlockRecord) error {
	_, err := s.db.Exec(
		`INSERT OR IGNORE INTO unlocked_achievements
		 (id, unlocked_at, score, level, lines, tetris_count, combo, time_played)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.UnlockedAt.UTC().Format("2006-01-02 15:04:05"),
		r.Stats.Score,
		r.Stats.Level,
		r.Stats.Lines,
		r.Stats.TetrisCount,
		r.Stats.Combo,
		r.Stats.TimePlayed,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save unlock: %w", err)
	}
	return nil
}

// LoadSessionStats implements achievements.Store. A missing row yields
// zero-valued stats.
func (s *Store) LoadSessionStats() (achievements.SessionStats, error) {
	var st achievements.SessionStats
	err := s.db.QueryRow(
		`SELECT games_played, total_lines, tetris_count, max_combo, time_played
		 FROM session_stats WHERE id = 1`,
	).Scan(&st.GamesPlayed, &st.TotalLines, &st.TetrisCount, &st.MaxCombo, &st.TimePlayed)

	if err == sql.ErrNoRows {
		return achievements.SessionStats{}, nil
	}
	if err != nil {
		return achievements.SessionStats{}, fmt.Errorf("storage: cannot query session stats: %w", err)
	}

	return st, nil
}

// SaveSessionStats implements achievements.Store.
func (s *Store) SaveSessionStats(st achievements.SessionStats) error {
	_, err := s.db.Exec(
		`INSERT INTO session_stats (id, games_played, total_lines, tetris_count, max_combo, time_played)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			games_played = excluded.games_played,
			total_lines = excluded.total_lines,
			tetris_count = excluded.tetris_count,
			max_combo = excluded.max_combo,
			time_played = excluded.time_played`,
		st.GamesPlayed, st.TotalLines, st.TetrisCount, st.MaxCombo, st.TimePlayed,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save session stats: %w", err)
	}
	return nil
}

// ClearAchievements implements achievements.Store. Removes every unlock
// record and the aggregate session row.
func (s *Store) ClearAchievements() error {
	if _, err := s.db.Exec("DELETE FROM unlocked_achievements"); err != nil {
		return fmt.Errorf("storage: cannot clear achievements: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM session_stats"); err != nil {
		return fmt.Errorf("storage: cannot clear session stats: %w", err)
	}
	return nil
}

// parseTimestamp handles the datetime forms the driver may return.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Ensure Store implements achievements.Store
var _ achievements.Store = (*Store)(nil)
