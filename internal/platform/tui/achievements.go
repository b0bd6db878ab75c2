package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/achievements"
	"github.com/vovakirdan/blockfall/internal/core"
)

// AchievementsKeyMap defines the key bindings for the achievements browser.
type AchievementsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k AchievementsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k AchievementsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultAchievementsKeyMap returns default key bindings.
func DefaultAchievementsKeyMap() AchievementsKeyMap {
	return AchievementsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// AchievementsModel is the Bubble Tea model for the achievements browser.
type AchievementsModel struct {
	engine   *achievements.Engine
	table    table.Model
	help     help.Model
	keys     AchievementsKeyMap
	width    int
	height   int
	quitting bool
}

// NewAchievementsModel creates a browser over the engine's catalog.
func NewAchievementsModel(engine *achievements.Engine, width, height int) AchievementsModel {
	keys := DefaultAchievementsKeyMap()
	h := help.New()
	h.ShowAll = false

	m := AchievementsModel{
		engine: engine,
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable builds the catalog table with unlock status rows.
func (m *AchievementsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Achievement", Width: 22},
		{Title: "Category", Width: 10},
		{Title: "Rarity", Width: 10},
		{Title: "Status", Width: 20},
	}

	stats := m.engine.ProgressStats()
	var rows []table.Row
	for _, a := range m.engine.Catalog() {
		status := "locked"
		if m.engine.IsUnlocked(a.ID) {
			status = "unlocked"
		} else if v, ok := stats.Value(a.Condition.Field); ok {
			p := m.engine.GetProgress(a.ID, v)
			if p.Percent > 0 {
				status = fmt.Sprintf("%.0f%%", p.Percent)
			}
		}
		rows = append(rows, table.Row{a.Name, string(a.Category), string(a.Rarity), status})
	}

	height := core.Clamp(m.height-6, 5, len(rows)+1)

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init implements tea.Model.
func (m AchievementsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m AchievementsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m AchievementsModel) View() string {
	if m.quitting {
		return ""
	}

	unlocked := len(m.engine.Unlocked())
	total := len(m.engine.Catalog())
	title := lipgloss.NewStyle().Bold(true).
		Render(fmt.Sprintf("Achievements (%d/%d unlocked)", unlocked, total))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.table.View(),
		m.help.View(m.keys),
	)
}

// RunAchievementsBrowser starts the interactive achievements browser.
func RunAchievementsBrowser(engine *achievements.Engine, width, height int) error {
	model := NewAchievementsModel(engine, width, height)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
