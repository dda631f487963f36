package tui

import "github.com/charmbracelet/lipgloss"

// The demo's visual language: green-on-black terminal phosphor.
var (
	colorGreen = lipgloss.Color("10")
	colorDim   = lipgloss.Color("22")
	colorRed   = lipgloss.Color("9")

	titleStyle  = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	subtleStyle = lipgloss.NewStyle().Foreground(colorDim)
	labelStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	errorStyle  = lipgloss.NewStyle().Foreground(colorRed)

	tabActiveStyle   = lipgloss.NewStyle().Foreground(colorGreen).Bold(true).Underline(true)
	tabInactiveStyle = lipgloss.NewStyle().Foreground(colorDim)

	padStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGreen)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	badgeVerifiedStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true).
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorGreen).
				Padding(0, 1)

	badgeTamperedStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Bold(true).
				Border(lipgloss.NormalBorder()).
				BorderForeground(colorRed).
				Padding(0, 1)
)
