// Package styles provides the lipgloss styles shared by CLI commands.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Title renders command section headers.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#4ade80"))

	// Subtle renders secondary information.
	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#909090"))

	// Error renders failure messages.
	Error = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ef4444"))

	// Success renders confirmation messages.
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#4ade80"))

	// Warning renders cautionary messages.
	Warning = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b"))

	// Badge renders short inline labels.
	Badge = lipgloss.NewStyle().
		Padding(0, 1).
		Background(lipgloss.Color("#2d2d2d")).
		Foreground(lipgloss.Color("#ffffff"))
)
