package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

// helpLines is the number of rows below the board used by the help bar.
const helpLines = 1

// Options configures the terminal frontend.
type Options struct {
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional session round history
	Logger  *log.Logger    // Optional; discarded when nil
}

// Model is the Bubble Tea model running the snake game.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	clock      *core.FrameClock
	store      *storage.Store
	logger     *log.Logger
	keys       *KeyMapper
	swipe      *snake.Swipe
	help       help.Model
	scores     Scoreboard
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	showScores bool
	wasPaused  bool // Pause state before the scoreboard was opened
	best       int // Session best, read from the store when there is one
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *snake.Game, opts Options) Model {
	cfg := opts.Runtime
	cfg.Seed = core.ResolveSeed(cfg.Seed, time.Now())

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(max(cfg.ScreenW, 0), max(cfg.ScreenH-helpLines, 0)),
		clock:      core.NewFrameClock(cfg.TickRate),
		store:      opts.Store,
		logger:     logger,
		keys:       NewKeyMapper(),
		swipe:      &snake.Swipe{},
		help:       help.New(),
		scores:     NewScoreboard(opts.Store, cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	m.refreshBest()
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	rc := m.config
	rc.ScreenH -= helpLines
	m.game.Reset(rc)
	m.logger.Debug("game started", "seed", rc.Seed, "grid", m.game.Config().Grid.Size,
		"interval", m.game.Interval())

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.showScores {
			m.inputFrame.Set(MapMouse(msg, m.swipe))
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showScores {
		var cmd tea.Cmd
		var back, quit bool
		m.scores, cmd, back, quit = m.scores.Update(msg)
		switch {
		case quit:
			m.quitting = true
			return m, tea.Quit
		case back:
			m.showScores = false
			m.game.SetPaused(m.wasPaused)
		}
		return m, cmd
	}

	if key.Matches(msg, m.keys.Keys().Shot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	switch action {
	case core.ActionScores:
		m.openScores()
		return m, nil
	case core.ActionBack:
		action = core.ActionPause
	}

	m.inputFrame.Set(action)
	return m, nil
}

// openScores pauses the game and shows the session rounds.
func (m *Model) openScores() {
	m.wasPaused = m.game.State().Paused
	m.game.SetPaused(true)
	m.scores.Reload()
	m.showScores = true
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	h := max(msg.Height-helpLines, 0)
	m.screen.Resize(msg.Width, h)
	m.scores.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	// A resize starts a new snake; the score stays
	m.game.Resize(msg.Width, h)
	m.logger.Debug("resized", "width", msg.Width, "height", msg.Height,
		"landscape", m.game.Layout().Landscape, "too_small", m.game.Layout().TooSmall)

	return m, nil
}

// handleTick turns elapsed time into display frames and steps the game.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frames := m.clock.Advance(now)

	for i := range frames {
		result := m.game.Step(m.inputFrame)
		if i == 0 {
			// Input belongs to the first frame only
			m.inputFrame.Clear()
		}
		if result.Round != nil {
			m.recordRound(*result.Round, now)
		}
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// recordRound keeps a finished round in the session history.
// Without a store the model tracks the best score itself.
func (m *Model) recordRound(r core.RoundResult, now time.Time) {
	m.logger.Info("round over", "score", r.Score, "length", r.Length, "moves", r.Ticks, "won", r.Won)

	if m.store == nil {
		m.best = max(m.best, r.Score)
		return
	}
	if _, err := m.store.RecordRound(r, now); err != nil {
		m.logger.Warn("cannot record round", "err", err)
		m.best = max(m.best, r.Score)
		return
	}
	m.refreshBest()
}

// refreshBest reloads the session best from the store.
func (m *Model) refreshBest() {
	if m.store == nil {
		return
	}
	best, err := m.store.BestScore()
	if err != nil {
		m.logger.Warn("cannot read best score", "err", err)
		return
	}
	m.best = best
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".gridsnake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("snake_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scores.View()
	}

	// Render game to screen buffer
	m.game.Render(m.screen)
	if l := m.game.Layout(); !l.TooSmall && m.best > 0 {
		m.screen.DrawTextColor(l.Score.X, l.Score.Y+1, fmt.Sprintf("Best: %d", m.best), core.ColorGray)
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given model.
func Run(game *snake.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Drag to steer
	)

	_, err := p.Run()
	return err
}
