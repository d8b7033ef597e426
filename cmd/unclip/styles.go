package main

import "charm.land/lipgloss/v2"

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8A8A"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	warnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFB86C"))

	hudStyle       = lipgloss.NewStyle().Background(lipgloss.Color("#000000")).Foreground(lipgloss.Color("#FFFFFF"))
	hudAccentStyle = hudStyle.Foreground(lipgloss.Color("#00FF87"))
	hudWarnStyle   = hudStyle.Bold(true).Foreground(lipgloss.Color("#FFFF5F"))
)

// field renders one "label value" output line.
func field(label, value string) string {
	return "  " + labelStyle.Render(label) + " " + value
}
