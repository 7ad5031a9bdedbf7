package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/cti-tui/internal/ui"
)

// RenderStatusBar draws the bottom line. Error statuses are highlighted.
func RenderStatusBar(status, hints string, width int) string {
	statusStyle := lipgloss.NewStyle().Foreground(ui.ColorMuted)
	if strings.HasPrefix(status, "Error") {
		statusStyle = lipgloss.NewStyle().Foreground(ui.ColorFailure)
	}
	left := statusStyle.Render("  " + status)

	help := lipgloss.NewStyle().Foreground(ui.ColorMuted).
		Render(hints + " ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#111827")).
		Width(width).
		Render(left + padding + help)
}
