package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gophersatwork/calcpro"
)

type palette struct {
	display    lipgloss.Style
	expression lipgloss.Style
	errorText  lipgloss.Style
	flag       lipgloss.Style
	flagOn     lipgloss.Style
	label      lipgloss.Style
	history    lipgloss.Style
	notice     lipgloss.Style
	frame      lipgloss.Style
}

var palettes = map[calcpro.Theme]palette{
	calcpro.ThemeDark: {
		display: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4e7")).
			Bold(true),
		expression: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")),
		errorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Bold(true),
		flag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b")),
		flagOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00d4ff")),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa")),
		history: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")),
		notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Italic(true),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7b2fff")).
			Padding(0, 1),
	},
	calcpro.ThemeLight: {
		display: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#18181b")).
			Bold(true),
		expression: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b")),
		errorText: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b91c1c")).
			Bold(true),
		flag: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa")),
		flagOn: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0369a1")),
		label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3f3f46")),
		history: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#334155")),
		notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a16207")).
			Italic(true),
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#0369a1")).
			Padding(0, 1),
	},
}
