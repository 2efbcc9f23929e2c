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

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a running game.
type Model struct {
	session   *tetris.Session
	screen    *core.Screen
	recorder  *storage.Recorder
	logger    *log.Logger
	keys      GameKeyMap
	help      help.Model
	gameState core.GameState
	quitting  bool
	// quit is set when the player asked to end the program rather than
	// return to the menu.
	quit bool
}

// NewModel creates a new Bubble Tea model driving the given session.
func NewModel(session *tetris.Session, store *storage.Store, keys GameKeyMap, logger *log.Logger, width, height int) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.Width = width

	return Model{
		session:   session,
		screen:    core.NewScreen(width, height-1),
		recorder:  storage.NewRecorder(store, tetris.ID, logger),
		logger:    logger,
		keys:      keys,
		help:      h,
		gameState: session.State(),
	}
}

// Init starts listening for session changes.
func (m Model) Init() tea.Cmd {
	return waitForChange(m.session)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case ChangeMsg:
		m.observe(m.session.State())
		return m, waitForChange(m.session)

	case DoneMsg:
		m.quitting = true
		m.quit = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Snapshot) {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keys.Menu) {
		m.quitting = true
		return m, tea.Quit
	}

	action := m.keys.MapKey(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.session.Do(core.ActionQuit)
		m.quitting = true
		m.quit = true
		return m, tea.Quit
	}

	res := m.session.Do(action)
	m.observe(res.State)
	return m, nil
}

// observe records the latest state and saves the score once per game over.
func (m *Model) observe(state core.GameState) {
	m.gameState = state
	m.recorder.Observe(state)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot dir", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", tetris.ID, timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// QuitRequested reports whether the player pressed Quit. A game left with
// the menu key reports false.
func (m Model) QuitRequested() bool {
	return m.quit
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Options configures a terminal game.
type Options struct {
	Config  config.TetrisConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store
	Logger  *log.Logger
}

// Result is the outcome of one terminal game.
type Result struct {
	State core.GameState
	// Quit is true when the player pressed Quit; the program should exit
	// instead of returning to the menu.
	Quit bool
}

// Run plays one terminal game until the player quits or leaves for the menu.
func Run(opts Options) (Result, error) {
	theme, err := opts.Config.Theme.Build()
	if err != nil {
		return Result{}, err
	}

	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	session := tetris.NewSession(opts.Runtime, tetris.WithLogger(opts.Logger), tetris.WithTheme(theme))
	defer session.Close()

	model := NewModel(session, opts.Store, NewGameKeyMap(opts.Config.Keys), opts.Logger,
		opts.Runtime.ScreenW, opts.Runtime.ScreenH)

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	res := Result{State: session.State()}
	if err != nil {
		return res, err
	}
	if m, ok := final.(Model); ok {
		res.Quit = m.QuitRequested()
	}
	return res, nil
}
