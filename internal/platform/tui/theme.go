package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-pusher/internal/game"
)

// Theme contains the styles for everything drawn around the board.
type Theme struct {
	// HUD styles
	HUDTitle     lipgloss.Style
	HUDValue     lipgloss.Style
	HUDSeparator lipgloss.Style
	HUDMode      map[game.Mode]lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style

	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemBroken  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		HUDTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDValue:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		HUDSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		HUDMode: map[game.Mode]lipgloss.Style{
			game.ModePlay:       lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("46")).Padding(0, 1),
			game.ModeEdit:       lipgloss.NewStyle().Foreground(lipgloss.Color("16")).Background(lipgloss.Color("226")).Padding(0, 1),
			game.ModeTransition: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("57")).Padding(0, 1),
		},
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuItemBroken:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.HUDTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	for mode := range theme.HUDMode {
		theme.HUDMode[mode] = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	}
	theme.MenuTitle = theme.HUDTitle
	theme.MenuItemActive = lipgloss.NewStyle().Reverse(true)
	theme.MenuItemBroken = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	return theme
}

// ThemeByName returns the named theme; unknown names get the default.
func ThemeByName(name string) Theme {
	if strings.EqualFold(name, "mono") || strings.EqualFold(name, "monochrome") {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// HUD renders the status line above the board.
func (t Theme) HUD(v game.View) string {
	sep := t.HUDSeparator.Render(" | ")
	field := func(label string, value any) string {
		return t.HUDTitle.Render(label+" ") + t.HUDValue.Render(fmt.Sprint(value))
	}

	parts := []string{
		t.HUDMode[v.Mode].Render(strings.ToUpper(v.Mode.String())),
		field("LEVEL", v.LevelID),
	}
	switch v.Mode {
	case game.ModeEdit:
		parts = append(parts,
			field("CURSOR", v.Editor.Cursor),
			field("LAYER", fmt.Sprintf("%d/%d", v.Editor.Layer, v.Layers-1)),
			field("TILE", v.Editor.TileID),
		)
	default:
		parts = append(parts,
			field("MOVES", v.Stats.Moves),
			field("PUSHES", v.Stats.Pushes),
			field("PLATES", fmt.Sprintf("%d/%d", v.PlatesActive, v.PlatesTotal)),
			field("TIME", v.Stats.Duration().Truncate(100*time.Millisecond)),
		)
	}
	return strings.Join(parts, sep)
}
