package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/achievements"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// toastDuration is how long an unlocked achievement stays on screen.
const toastDuration = 3 * time.Second

// Model is the Bubble Tea model for a blockfall session. It owns the
// simulation clock: every tick calls engine.Advance and key presses map
// directly to engine operations.
type Model struct {
	game   *engine.Game
	ach    *achievements.Engine
	screen *core.Screen
	store  *storage.Store
	config core.RuntimeConfig

	snap       engine.Snapshot
	highScore  int
	scoreSaved bool
	quitting   bool

	toast      *achievements.Achievement
	toastUntil time.Time
}

// NewModel creates a Bubble Tea model wrapping a game and its achievement
// engine. The caller resolves cfg.Seed before constructing the game; the
// model only displays state. The store may be nil; scores are then simply
// not persisted.
func NewModel(game *engine.Game, ach *achievements.Engine, store *storage.Store, cfg core.RuntimeConfig) Model {
	m := Model{
		game:   game,
		ach:    ach,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		config: cfg,
	}
	if store != nil {
		if hs, err := store.HighScore(); err == nil {
			m.highScore = hs
		}
	}
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Start(time.Now())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps key presses to engine operations.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	now := time.Now()

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "left", "h":
		m.game.Move(-1, 0)
	case "right", "l":
		m.game.Move(1, 0)
	case "down", "j":
		m.game.Move(0, 1)
	case "up", "k", "x":
		m.game.Rotate()
	case " ":
		m.game.HardDrop()
	case "p", "esc":
		m.game.TogglePause(now)
	case "+", "=":
		m.game.SetSpeedMultiplier(m.game.SpeedMultiplier() + 0.1)
	case "-":
		m.game.SetSpeedMultiplier(m.game.SpeedMultiplier() - 0.1)
	case "r":
		switch m.game.State() {
		case engine.StateGameOver:
			m.scoreSaved = false
			m.game.Reset(now)
			m.game.Start(now)
		case engine.StateNotStarted:
			m.game.Start(now)
		}
	}

	return m, nil
}

// handleTick advances the simulation and refreshes derived view state.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.game.Advance(now)
	m.snap = m.game.Snapshot(now)

	// Save score on game over (once)
	if m.snap.State == engine.StateGameOver && !m.scoreSaved {
		if m.store != nil && m.snap.Score > 0 {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.snap.Score, m.snap.Level, m.snap.Lines)
			if m.snap.Score > m.highScore {
				m.highScore = m.snap.Score
			}
		}
		m.scoreSaved = true
	}

	// Rotate the achievement toast
	if m.toast != nil && now.After(m.toastUntil) {
		m.toast = nil
	}
	if m.toast == nil && m.ach != nil {
		if a, ok := m.ach.NextNotification(); ok {
			m.toast = &a
			m.toastUntil = now.Add(toastDuration)
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	drawGame(m.screen, m.snap, m.highScore, m.toast)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *engine.Game, ach *achievements.Engine, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game, ach, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
