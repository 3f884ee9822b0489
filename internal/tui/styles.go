package tui

import "github.com/charmbracelet/lipgloss"

var (
	baseFg   = lipgloss.Color("252")
	accentFg = lipgloss.Color("75")
	dimFg    = lipgloss.Color("241")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentFg)
	statusStyle = lipgloss.NewStyle().Foreground(baseFg)
	dimStyle    = lipgloss.NewStyle().Foreground(dimFg)
	canvasStyle = lipgloss.NewStyle().Foreground(accentFg)
	pasteStyle  = lipgloss.NewStyle().Padding(1, 2)
)
