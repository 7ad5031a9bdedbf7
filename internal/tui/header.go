package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/cti-tui/internal/ui"
)

// HeaderInfo is what the top bar shows about the signed-in operator.
type HeaderInfo struct {
	Username  string
	Name      string
	Extension string
	Presence  string
	Unread    int
	Connected bool
}

func RenderHeader(info HeaderInfo, width int) string {
	user := info.Username
	if info.Name != "" {
		user = info.Name
	}
	title := fmt.Sprintf(" NethVoice CTI | %s", user)
	if info.Extension != "" {
		title += fmt.Sprintf(" (%s)", info.Extension)
	}
	left := lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color("#F9FAFB")).
		Render(title)
	if info.Presence != "" {
		left += " " + ui.PresenceStyle(info.Presence).
			Render(ui.PresenceIcon(info.Presence)+" "+info.Presence)
	}

	right := ""
	if info.Unread > 0 {
		right += ui.StyleWarning.Render(fmt.Sprintf("%d unread  ", info.Unread))
	}
	if info.Connected {
		right += lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render("live ")
	} else {
		right += lipgloss.NewStyle().Foreground(ui.ColorFailure).Render("offline ")
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.NewStyle().
		Background(lipgloss.Color("#1F2937")).
		Width(width).
		Render(left + padding + right)
}
