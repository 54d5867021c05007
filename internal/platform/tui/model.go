package tui

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-pusher/internal/config"
	"github.com/vovakirdan/tile-pusher/internal/core"
	"github.com/vovakirdan/tile-pusher/internal/game"
	"github.com/vovakirdan/tile-pusher/internal/level"
	"github.com/vovakirdan/tile-pusher/internal/storage"
)

// saveEcho is how long watcher events are ignored after the editor saved
// the level itself.
const saveEcho = 500 * time.Millisecond

// Options configure the play front end.
type Options struct {
	Store   *storage.Store // nil disables run recording
	Logger  *log.Logger
	Runtime core.RuntimeConfig
	Theme   Theme
	Watch   bool // reload the level when its file changes on disk
}

// LevelChangedMsg reports that the file of a watched level changed.
type LevelChangedMsg struct {
	Path string
}

type watchErrMsg struct {
	err error
}

// Model is the Bubble Tea model for a play session.
type Model struct {
	state   *game.GameState
	board   *Board
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	watcher *level.Watcher
	theme   Theme
	keys    KeyMap
	help    help.Model
	runtime core.RuntimeConfig
	input   core.InputFrame

	lastTick    time.Time
	ignoreUntil time.Time
	status      string
	err         error
	quitting    bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(state *game.GameState, cfg config.GameConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt = core.DefaultConfig()
	}
	theme := opts.Theme
	if theme.HUDMode == nil {
		theme = DefaultTheme()
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		state:   state,
		board:   NewBoard(cfg.Tiles.Glyphs),
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:   opts.Store,
		logger:  logger,
		theme:   theme,
		keys:    DefaultKeyMap(),
		help:    h,
		runtime: rt,
		input:   core.NewInputFrame(),
	}
}

// Init starts the tick loop and, when watching, the first watcher read.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.runtime.TickRate), m.waitForChange())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case LevelChangedMsg:
		return m.handleLevelChanged(msg)

	case watchErrMsg:
		m.logger.Warn("level watcher", "err", msg.err)
		return m, m.waitForChange()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick advances the session by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.runtime.FrameTime())
	m.lastTick = now

	res, err := m.state.Update(dt, m.input)
	m.input.Clear()
	if err != nil {
		m.logger.Error("session stopped", "err", err)
		m.err = err
		return m, tea.Quit
	}
	for _, ev := range res.Events {
		m.handleEvent(ev)
	}
	return m, tickCmd(m.runtime.TickRate)
}

func (m *Model) handleEvent(ev game.Event) {
	switch ev.Kind {
	case game.EventPlateClicked:
		m.status = fmt.Sprintf("click (%d/%d)", m.state.Triggers().Activated(), m.state.Triggers().Total())
	case game.EventLevelComplete:
		m.status = "every plate is pressed, the portal is open"
	case game.EventPortalEntered:
		m.recordRun(ev)
		m.status = ""
	case game.EventLevelLoaded:
		m.watchLevel()
		m.logger.Info("level loaded", "level", ev.Level, "path", m.state.Level().Path())
	case game.EventLevelSaved:
		m.ignoreUntil = time.Now().Add(saveEcho)
		m.status = "saved " + m.state.Level().Path()
	case game.EventEditRejected:
		m.status = ev.Err.Error()
	case game.EventModeChanged:
		m.status = ""
	}
}

// recordRun stores a completed level. Storage failures are logged and
// otherwise ignored.
func (m *Model) recordRun(ev game.Event) {
	if m.store == nil {
		return
	}
	run := storage.Run{
		LevelID:  ev.Level,
		Moves:    ev.Stats.Moves,
		Pushes:   ev.Stats.Pushes,
		Restarts: ev.Stats.Restarts,
		Duration: ev.Stats.Duration(),
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Warn("cannot record run", "level", ev.Level, "err", err)
	}
}

func (m *Model) watchLevel() {
	if m.watcher == nil {
		return
	}
	path := m.state.Level().Path()
	if path == "" {
		return
	}
	if err := m.watcher.Add(path); err != nil {
		m.logger.Warn("cannot watch level", "path", path, "err", err)
	}
}

// waitForChange reads the next watcher event or error.
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return LevelChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

// handleLevelChanged reloads the current level when its file was changed by
// someone other than the editor.
func (m Model) handleLevelChanged(msg LevelChangedMsg) (tea.Model, tea.Cmd) {
	if time.Now().Before(m.ignoreUntil) {
		return m, m.waitForChange()
	}
	current, err := filepath.Abs(m.state.Level().Path())
	if err != nil || current != msg.Path {
		return m, m.waitForChange()
	}
	m.logger.Info("level changed on disk", "path", msg.Path)
	m.state.Restart()
	m.status = "reloaded from disk"
	return m, m.waitForChange()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	v := m.state.View()
	hud := m.theme.HUD(v)
	footer := m.theme.Help.Render(m.help.View(m.keys))
	if m.status != "" {
		footer = m.theme.Status.Render(m.status) + "\n" + footer
	}

	boardH := m.runtime.ScreenH - lipgloss.Height(hud) - lipgloss.Height(footer)
	m.screen.Resize(m.runtime.ScreenW, max(boardH, 0))
	m.board.Draw(m.screen, v)

	return lipgloss.JoinVertical(lipgloss.Left, hud, RenderScreen(m.screen), footer)
}

// Err returns the error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program for a session.
func Run(state *game.GameState, cfg config.GameConfig, opts Options) error {
	model := NewModel(state, cfg, opts)

	if opts.Watch {
		w, err := level.NewWatcher()
		if err != nil {
			return fmt.Errorf("tui: cannot watch levels: %w", err)
		}
		defer w.Close()
		model.watcher = w
		model.watchLevel()
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := finalModel.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
