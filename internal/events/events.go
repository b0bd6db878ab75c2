// Package events defines the typed event stream the game engine publishes
// and the achievement engine consumes. Events form a closed set: every
// variant carries a strongly-typed payload and implements the unexported
// marker method, so subscribers can switch exhaustively without string
// comparisons.
package events

import "time"

// Event is the closed interface implemented by all game events.
type Event interface {
	gameEvent()
}

// GameStarted is published when a new game begins.
type GameStarted struct {
	Timestamp time.Time
}

func (GameStarted) gameEvent() {}

// GamePaused is published on every pause toggle.
type GamePaused struct {
	IsPaused   bool
	TimePlayed time.Duration
}

func (GamePaused) gameEvent() {}

// GameOver is published when a spawn collides and the game ends.
// Carries the final stats of the session.
type GameOver struct {
	Score       int
	Level       int
	Lines       int
	TetrisCount int
	TimePlayed  time.Duration
}

func (GameOver) gameEvent() {}

// GameReset is published when the game returns to its initial state.
type GameReset struct {
	Timestamp time.Time
}

func (GameReset) gameEvent() {}

// LinesCleared is published after a lock that completed one or more rows.
type LinesCleared struct {
	Count    int
	IsTetris bool
	NewTotal int
	NewLevel int
}

func (LinesCleared) gameEvent() {}

// ScoreUpdated is published whenever the score changes.
type ScoreUpdated struct {
	Score int
	Delta int
	Level int
}

func (ScoreUpdated) gameEvent() {}

// LevelUp is published when the level counter increases.
type LevelUp struct {
	Level         int
	PreviousLevel int
}

func (LevelUp) gameEvent() {}

// ComboUpdated is published when a lock extends a combo streak, or with
// IsReset set when a non-clearing lock breaks one.
type ComboUpdated struct {
	Combo   int
	IsReset bool
}

func (ComboUpdated) gameEvent() {}

// TimeTick is published when the whole-second value of played time changes.
type TimeTick struct {
	TimePlayed time.Duration
}

func (TimeTick) gameEvent() {}

// AchievementUnlocked is published by the achievement engine when a
// catalog entry unlocks for the first time.
type AchievementUnlocked struct {
	ID        string
	Rarity    string
	Timestamp time.Time
}

func (AchievementUnlocked) gameEvent() {}
