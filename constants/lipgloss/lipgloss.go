package lipgloss

import (
	"github.com/charmbracelet/lipgloss"
)

// Shared terminal styles used across commands.
var (
	Red    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	Green  = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71"))
	Yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("#F1C40F"))
	Cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CED1"))
	Gray   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7F8C8D"))
)
