package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/blockfall/internal/achievements"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestOpenCreatesParentDirectories(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSaveAndRetrieveScores(t *testing.T) {
	store := testStore(t)

	for _, sc := range []int{500, 1500, 1000} {
		if _, err := store.SaveScore(sc, 2, 12); err != nil {
			t.Fatalf("SaveScore(%d): %v", sc, err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("got %d scores, want 3", len(scores))
	}
	if scores[0].Score != 1500 || scores[1].Score != 1000 || scores[2].Score != 500 {
		t.Errorf("scores not descending: %d, %d, %d",
			scores[0].Score, scores[1].Score, scores[2].Score)
	}

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 1500 {
		t.Errorf("HighScore = %d, want 1500", high)
	}
}

func TestHighScoreEmptyDatabase(t *testing.T) {
	store := testStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore = %d on empty database, want 0", high)
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := testStore(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore(i*100, 1, 0); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	scores, err := store.TopScores(5)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("got %d scores, want 5", len(scores))
	}
}

func TestUnlockRoundTrip(t *testing.T) {
	store := testStore(t)

	rec := achievements.UnlockRecord{
		ID:         "first_clear",
		UnlockedAt: time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC),
		Stats: achievements.Stats{
			Score: 100, Level: 1, Lines: 1, TetrisCount: 0, Combo: 1, TimePlayed: 42,
		},
	}
	if err := store.SaveUnlock(rec); err != nil {
		t.Fatalf("SaveUnlock: %v", err)
	}

	records, err := store.LoadUnlocked()
	if err != nil {
		t.Fatalf("LoadUnlocked: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	got := records[0]
	if got.ID != rec.ID {
		t.Errorf("ID = %q, want %q", got.ID, rec.ID)
	}
	if got.Stats != rec.Stats {
		t.Errorf("Stats = %+v, want %+v", got.Stats, rec.Stats)
	}
	if !got.UnlockedAt.Equal(rec.UnlockedAt) {
		t.Errorf("UnlockedAt = %v, want %v", got.UnlockedAt, rec.UnlockedAt)
	}
}

func TestSaveUnlockPreservesOriginal(t *testing.T) {
	store := testStore(t)

	first := achievements.UnlockRecord{
		ID:         "first_clear",
		UnlockedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Stats:      achievements.Stats{Score: 100},
	}
	second := first
	second.Stats.Score = 9999

	if err := store.SaveUnlock(first); err != nil {
		t.Fatalf("SaveUnlock: %v", err)
	}
	if err := store.SaveUnlock(second); err != nil {
		t.Fatalf("re-SaveUnlock: %v", err)
	}

	records, err := store.LoadUnlocked()
	if err != nil {
		t.Fatalf("LoadUnlocked: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Stats.Score != 100 {
		t.Errorf("original record was overwritten: Score = %d", records[0].Stats.Score)
	}
}

func TestLoadUnlockedSkipsMalformedRows(t *testing.T) {
	store := testStore(t)

	good := achievements.UnlockRecord{
		ID:         "first_clear",
		UnlockedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := store.SaveUnlock(good); err != nil {
		t.Fatalf("SaveUnlock: %v", err)
	}

	// Inject a row whose numeric columns hold text. SQLite's dynamic
	// typing stores it happily; the scan must skip it, not fail the load.
	if _, err := store.db.Exec(
		`INSERT INTO unlocked_achievements
		 (id, unlocked_at, score, level, lines, tetris_count, combo, time_played)
		 VALUES ('mangled', '2026-01-02 00:00:00', 'garbage', 0, 0, 0, 0, 0)`,
	); err != nil {
		t.Fatalf("inject malformed row: %v", err)
	}

	records, err := store.LoadUnlocked()
	if err != nil {
		t.Fatalf("LoadUnlocked: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 (malformed skipped)", len(records))
	}
	if records[0].ID != "first_clear" {
		t.Errorf("surviving record = %q, want first_clear", records[0].ID)
	}
}

func TestSessionStatsRoundTrip(t *testing.T) {
	store := testStore(t)

	// Missing row reads as zero values.
	empty, err := store.LoadSessionStats()
	if err != nil {
		t.Fatalf("LoadSessionStats: %v", err)
	}
	if empty != (achievements.SessionStats{}) {
		t.Errorf("empty stats = %+v, want zero", empty)
	}

	first := achievements.SessionStats{
		GamesPlayed: 1, TotalLines: 12, TetrisCount: 1, MaxCombo: 3, TimePlayed: 90,
	}
	if err := store.SaveSessionStats(first); err != nil {
		t.Fatalf("SaveSessionStats: %v", err)
	}

	// A second save must update in place, not add a row.
	updated := first
	updated.GamesPlayed = 2
	updated.TotalLines = 20
	if err := store.SaveSessionStats(updated); err != nil {
		t.Fatalf("re-SaveSessionStats: %v", err)
	}

	got, err := store.LoadSessionStats()
	if err != nil {
		t.Fatalf("LoadSessionStats: %v", err)
	}
	if got != updated {
		t.Errorf("stats = %+v, want %+v", got, updated)
	}
}

func TestClearAchievements(t *testing.T) {
	store := testStore(t)

	if err := store.SaveUnlock(achievements.UnlockRecord{
		ID: "first_clear", UnlockedAt: time.Now(),
	}); err != nil {
		t.Fatalf("SaveUnlock: %v", err)
	}
	if err := store.SaveSessionStats(achievements.SessionStats{GamesPlayed: 5}); err != nil {
		t.Fatalf("SaveSessionStats: %v", err)
	}
	if _, err := store.SaveScore(1000, 2, 10); err != nil {
		t.Fatalf("SaveScore: %v", err)
	}

	if err := store.ClearAchievements(); err != nil {
		t.Fatalf("ClearAchievements: %v", err)
	}

	records, err := store.LoadUnlocked()
	if err != nil {
		t.Fatalf("LoadUnlocked: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("%d unlock records after clear, want 0", len(records))
	}
	stats, err := store.LoadSessionStats()
	if err != nil {
		t.Fatalf("LoadSessionStats: %v", err)
	}
	if stats != (achievements.SessionStats{}) {
		t.Errorf("session stats = %+v after clear, want zero", stats)
	}

	// Scores survive an achievements reset.
	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 1000 {
		t.Errorf("HighScore = %d after clear, want 1000", high)
	}
}
