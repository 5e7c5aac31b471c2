package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))
	styleAppBar = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#3C4A6B")).
			Padding(0, 1)
	styleHeading = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	styleLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	styleFocused = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("#777777"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F5F"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB86C"))
	styleButton  = lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#444444"))
	styleButtonFocused = styleButton.
				BorderForeground(lipgloss.Color("#5B8DEF")).
				Foreground(lipgloss.Color("#5B8DEF")).
				Bold(true)
	styleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(1, 2)
)
