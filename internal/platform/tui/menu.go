package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-pusher/internal/core"
	"github.com/vovakirdan/tile-pusher/internal/game"
	"github.com/vovakirdan/tile-pusher/internal/storage"
)

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	entries   []game.CatalogEntry
	best      map[int]storage.LevelStats
	cursor    int
	width     int
	height    int
	theme     Theme
	config    core.RuntimeConfig
	quitting  bool
	selected  *game.CatalogEntry
	openStats bool // True if user pressed Tab for the run board
}

// NewMenuModel creates a new menu model. store may be nil.
func NewMenuModel(entries []game.CatalogEntry, store *storage.Store, theme Theme, cfg core.RuntimeConfig) MenuModel {
	best := make(map[int]storage.LevelStats)
	if store != nil {
		if all, err := store.AllLevelStats(); err == nil {
			for _, st := range all {
				best[st.LevelID] = st
			}
		}
	}
	return MenuModel{
		entries: entries,
		best:    best,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		theme:   theme,
		config:  cfg,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.entries) > 0 && m.entries[m.cursor].OK() {
			selected := m.entries[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionStats:
		m.openStats = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("T I L E   P U S H E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level"), m.width))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := cursor + m.describe(e)
		style := m.theme.MenuItemNormal
		switch {
		case !e.OK():
			style = m.theme.MenuItemBroken
		case i == m.cursor:
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Runs  |  Q: Quit"
	b.WriteString(centerText(m.theme.MenuDescription.Render(controls), m.width))
	b.WriteString("\n")
	return b.String()
}

func (m MenuModel) describe(e game.CatalogEntry) string {
	if !e.OK() {
		return fmt.Sprintf("Level %d  (unavailable)", e.ID)
	}
	line := fmt.Sprintf("Level %d  %dx%d  plates %d", e.ID, e.Columns, e.Rows, e.Plates)
	if st, ok := m.best[e.ID]; ok {
		line += fmt.Sprintf("  best %d moves", st.FewestMoves)
	}
	return line
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	LevelID   int
	Config    core.RuntimeConfig
	WantsRuns bool
	Quit      bool
}

// RunMenu runs the level picker and returns the selection result.
func RunMenu(entries []game.CatalogEntry, store *storage.Store, theme Theme, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(entries, store, theme, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.config}
	switch {
	case m.openStats:
		result.WantsRuns = true
	case m.quitting || m.selected == nil:
		result.Quit = true
	default:
		result.LevelID = m.selected.ID
	}
	return result, nil
}
