package tui

import "github.com/charmbracelet/lipgloss"

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8F9FA"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#212529")).
			Background(lipgloss.Color("#E7E5E4")).
			Padding(0, 1)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	navBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8F9FA")).
			Background(lipgloss.Color("#292524")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#57534E")).
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				BorderForeground(lipgloss.Color("#4ECDC4"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#44403C"))

	placeholderPulseStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#57534E"))

	sharedBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#212529")).
				Background(lipgloss.Color("#A8DADC")).
				Padding(0, 1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4")).
			Bold(true)
)
