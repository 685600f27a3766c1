package tui

import "github.com/charmbracelet/lipgloss"

// Color Palette (Dracula-inspired)
var (
	colorPurple = lipgloss.Color("#BD93F9")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorRed    = lipgloss.Color("#FF5555")
	colorPink   = lipgloss.Color("#FF79C6")
	colorGray   = lipgloss.Color("#6272A4")
	colorYellow = lipgloss.Color("#F1FA8C")
)

// Shared Styles
var (
	// Section headings ("Project setup", "Available styles", ...)
	titleStyle = lipgloss.NewStyle().
			Foreground(colorPurple).
			Bold(true)

	ruleStyle = lipgloss.NewStyle().Foreground(colorGray)

	// Status lines
	stepStyle    = lipgloss.NewStyle().Foreground(colorCyan)
	successStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorYellow)

	subtleStyle = lipgloss.NewStyle().Foreground(colorGray)

	// Catalog menu rows
	idStyle   = lipgloss.NewStyle().Foreground(colorPink).Bold(true)
	nameStyle = lipgloss.NewStyle().Foreground(colorCyan)

	// Picker title bar
	pickerTitleStyle = lipgloss.NewStyle().
				Background(colorPurple).
				Foreground(lipgloss.Color("#282a36")).
				Bold(true).
				Padding(0, 2)
)
