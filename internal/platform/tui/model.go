package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flamin-maze/internal/config"
	"github.com/vovakirdan/flamin-maze/internal/core"
	"github.com/vovakirdan/flamin-maze/internal/registry"
	"github.com/vovakirdan/flamin-maze/internal/social"
	"github.com/vovakirdan/flamin-maze/internal/storage"
)

// adsConfigured is implemented by games that configure the intermission.
type adsConfigured interface {
	AdsConfig() config.AdsConfig
}

// resumable is implemented by games that react to the player coming back.
type resumable interface {
	Resume()
}

// Options configures a game Model.
type Options struct {
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil plays without leaderboards or saved progress
	Player  social.Player
	Logger  *log.Logger

	// Renderer styles the output; nil uses the local terminal.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	player     social.Player
	config     core.RuntimeConfig
	logger     *log.Logger
	keys       KeyMap
	renderer   *ScreenRenderer
	inputFrame core.InputFrame
	gameState  core.GameState

	leaderboard *social.Local
	ads         *Intermission
	audio       *Audio
	showBoards  chan struct{}
	scoreboard  *ScoreboardModel

	// releasePending holds back a mouse release until the press has been
	// seen by at least one tick.
	pressTicked    bool
	releasePending bool
	quitting       bool
}

// NewModel creates a model for game and binds the platform services to it.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		player:     opts.Player,
		config:     cfg,
		logger:     logger,
		keys:       DefaultKeyMap(),
		renderer:   NewScreenRenderer(opts.Renderer),
		inputFrame: core.NewInputFrame(),
		audio:      NewAudio(logger),
		showBoards: make(chan struct{}, 1),
	}

	var adsCfg config.AdsConfig
	if ac, ok := game.(adsConfigured); ok {
		adsCfg = ac.AdsConfig()
	}
	m.ads = NewIntermission(adsCfg, logger)

	svc := core.Services{Ads: m.ads, Audio: m.audio}
	if opts.Store != nil {
		m.leaderboard = social.NewLocal(opts.Store, opts.Player, logger)
		m.leaderboard.OnShowBoards(func() {
			select {
			case m.showBoards <- struct{}{}:
			default:
			}
		})
		svc.Leaderboard = m.leaderboard
		svc.Players = opts.Store.Prefs(opts.Player.ID)
	}
	if b, ok := game.(registry.Binder); ok {
		b.Bind(svc.WithDefaults(), logger)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.FocusMsg:
		if r, ok := m.game.(resumable); ok {
			r.Resume()
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		sb, cmd := m.scoreboard.Update(msg)
		board := sb.(ScoreboardModel)
		m.scoreboard = &board
		if board.IsQuitting() {
			m.quitting = true
		}
		if board.IsGoingBack() {
			m.scoreboard = nil
		}
		return m, cmd
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.ads.Showing() {
			m.ads.Skip()
		}
		return m, nil
	case core.ActionNone:
		return m, nil
	}

	m.inputFrame.IntroDone = true
	if !m.ads.Showing() {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse tracks the left button as the game pointer.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil || m.ads.Showing() {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.inputFrame.Pointer = core.Pointer{Held: true, X: float64(msg.X), Y: float64(msg.Y)}
		m.inputFrame.IntroDone = true
		m.pressTicked = false
		m.releasePending = false
	case tea.MouseActionMotion:
		if m.inputFrame.Pointer.Held {
			m.inputFrame.Pointer.X = float64(msg.X)
			m.inputFrame.Pointer.Y = float64(msg.Y)
		}
	case tea.MouseActionRelease:
		if m.pressTicked {
			m.inputFrame.Pointer.Held = false
		} else {
			m.releasePending = true
		}
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if m.scoreboard != nil {
		sb, _ := m.scoreboard.Update(msg)
		board := sb.(ScoreboardModel)
		m.scoreboard = &board
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, tea.Quit
	}

	result := m.game.Step(m.inputFrame)
	if result.State.Phase != m.gameState.Phase {
		m.logger.Debug("phase", "from", m.gameState.Phase, "to", result.State.Phase)
	}
	m.gameState = result.State

	m.pressTicked = true
	if m.releasePending {
		m.inputFrame.Pointer.Held = false
		m.releasePending = false
	}
	m.inputFrame.Clear()

	select {
	case <-m.showBoards:
		board := NewScoreboardModel(m.store, m.player.ID, m.config.ScreenW, m.config.ScreenH)
		board.overlay = true
		m.scoreboard = &board
		m.inputFrame.Pointer.Held = false
	default:
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".flaminmaze", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	m.drawAudio()
	if m.ads.Showing() {
		m.drawIntermission()
	}
	return m.renderer.Render(m.screen)
}

// drawAudio shows the music track and the audible effect on the last row.
func (m Model) drawAudio() {
	track, effect, playing := m.audio.Status()
	text := ""
	if track != "" {
		text = "♪ " + track
	}
	if playing {
		text += " (" + effect.String() + ")"
	}
	if text == "" {
		return
	}
	x := m.screen.Width() - utf8.RuneCountInString(text) - 1
	m.screen.DrawTextColor(x, m.screen.Height()-1, text, core.ColorGray)
}

// drawIntermission draws the intermission box over the game.
func (m Model) drawIntermission() {
	const w, h = 34, 7
	x := (m.screen.Width() - w) / 2
	y := (m.screen.Height() - h) / 2
	box := core.NewRect(x, y, w, h)
	m.screen.DrawRect(box, ' ', core.ColorDefault)
	m.screen.DrawBox(box, core.ColorOrange)

	left := int(m.ads.Remaining().Seconds() + 0.999)
	lines := []struct {
		text  string
		color core.Color
	}{
		{"INTERMISSION", core.ColorBrightYellow},
		{fmt.Sprintf("more time in %d s", left), core.ColorWhite},
		{"esc to skip", core.ColorGray},
	}
	for i, l := range lines {
		lx := x + (w-utf8.RuneCountInString(l.text))/2
		m.screen.DrawTextColor(lx, y+2+i, l.text, l.color)
	}
}

// Close waits for pending leaderboard calls and stops the intermission.
func (m Model) Close() {
	m.ads.Close()
	if m.leaderboard != nil {
		m.leaderboard.Close()
	}
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
