package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flamin-maze/internal/core"
	"github.com/vovakirdan/flamin-maze/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores   = 100 // Max scores to load
	tabAchieved = "Achievements"
)

// boardTitles maps board ids to tab captions.
var boardTitles = map[string]string{
	core.BoardHighScores:  "High Scores",
	core.BoardHighLevels:  "High Levels",
	core.BoardPlayedGames: "Played Games",
}

// achievementTitles maps achievement ids to their captions.
var achievementTitles = map[string]string{
	core.AchievementFirstSteps: "First Steps (level 10)",
	core.AchievementMazeMaster: "Maze Master (level 25)",
	core.AchievementGodOfMaze:  "God of Maze (level 50)",
	core.AchievementExplorer:   "Explorer (10 games)",
	core.AchievementAdventurer: "Adventurer (50 games)",
	core.AchievementHero:       "Hero (100 games)",
	core.AchievementLoser:      "Loser (lost on level 1)",
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.PrevTab, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next board"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev board"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the leaderboards and the achievements of one
// player. It runs standalone or as an overlay of the game Model.
type ScoreboardModel struct {
	tabs      []string
	tab       int
	store     *storage.Store
	playerID  string
	overlay   bool
	scores    []storage.ScoreEntry
	achieved  []storage.Achievement
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard. playerID marks the rows of the
// viewing player and selects the achievements shown; it may be empty.
func NewScoreboardModel(store *storage.Store, playerID string, width, height int) ScoreboardModel {
	tabs := append([]string{}, core.Boards...)
	if playerID != "" {
		tabs = append(tabs, tabAchieved)
	}

	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		tabs:     tabs,
		store:    store,
		playerID: playerID,
		keys:     DefaultScoreboardKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
	m.load()
	return m
}

func (m ScoreboardModel) current() string {
	return m.tabs[m.tab]
}

func (m *ScoreboardModel) columns() []table.Column {
	if m.current() == tabAchieved {
		return []table.Column{
			{Title: "Achievement", Width: 26},
			{Title: "Progress", Width: 10},
			{Title: "Updated", Width: 14},
		}
	}
	nameWidth := 16
	if m.width > 64 {
		nameWidth = min(m.width-48, 28)
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: nameWidth},
		{Title: "Value", Width: 10},
		{Title: "Date", Width: 14},
	}
}

// createTable creates a new table with the columns of the current tab.
func (m *ScoreboardModel) createTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for header, tabs and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("202")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load reads the rows of the current tab from the store.
func (m *ScoreboardModel) load() {
	m.scores, m.achieved, m.loadErr = nil, nil, nil
	m.table = m.createTable()
	if m.store == nil {
		m.table.SetRows(nil)
		return
	}

	if m.current() == tabAchieved {
		m.achieved, m.loadErr = m.store.Achievements(m.playerID)
	} else {
		m.scores, m.loadErr = m.store.TopScores(m.current(), maxScores)
	}
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m ScoreboardModel) rows() []table.Row {
	if m.current() == tabAchieved {
		rows := make([]table.Row, len(m.achieved))
		for i, a := range m.achieved {
			name, ok := achievementTitles[a.ID]
			if !ok {
				name = a.ID
			}
			progress := fmt.Sprintf("%.0f%%", a.Percent)
			if a.Completed() {
				progress = "unlocked"
			}
			rows[i] = table.Row{name, progress, a.UpdatedAt.Format("Jan 02 15:04")}
		}
		return rows
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		name := s.PlayerName
		if s.PlayerID == m.playerID {
			name += " (you)"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", s.Rank),
			name,
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			if m.overlay {
				return m, nil
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % len(m.tabs)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + len(m.tabs) - 1) % len(m.tabs)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.load()
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || (m.goingBack && !m.overlay) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("208"))
	b.WriteString(titleStyle.Render(centerText("FLAMIN MAZE LEADERBOARDS", m.width)))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.renderTableContent())))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the board tabs, or only the current one with
// arrows when they do not fit.
func (m ScoreboardModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("202")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	plain := 0
	for i, id := range m.tabs {
		name := tabTitle(id)
		plain += len(name) + 3
		if i == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(" " + name + " ")
		}
	}

	if plain > m.width-4 {
		return centerText(fmt.Sprintf("< %s >", tabTitle(m.current())), m.width)
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, strings.Join(tabs, " "))
}

func tabTitle(id string) string {
	if title, ok := boardTitles[id]; ok {
		return title
	}
	return id
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load the leaderboard.\n" + m.loadErr.Error())
	case m.current() == tabAchieved && len(m.achieved) == 0:
		return emptyStyle.Render("No achievements yet.\nReach level 10 for the first one!")
	case m.current() != tabAchieved && len(m.scores) == 0:
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to the game.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text so it is centered in width columns.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// RunScoreboard runs the scoreboard screen on its own.
func RunScoreboard(store *storage.Store, playerID string, width, height int) error {
	model := NewScoreboardModel(store, playerID, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
