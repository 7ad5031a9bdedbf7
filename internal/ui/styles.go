package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/altinukshini/cti-tui/internal/model"
)

var (
	ColorPrimary   = lipgloss.Color("#7C3AED")
	ColorSuccess   = lipgloss.Color("#10B981")
	ColorFailure   = lipgloss.Color("#EF4444")
	ColorWarning   = lipgloss.Color("#F59E0B")
	ColorInfo      = lipgloss.Color("#3B82F6")
	ColorMuted     = lipgloss.Color("#6B7280")
	ColorBorder    = lipgloss.Color("#374151")
	ColorHighlight = lipgloss.Color("#1F2937")

	StylePane = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StylePaneFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary)

	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(ColorPrimary).
			Padding(0, 1)

	StyleSuccess = lipgloss.NewStyle().Foreground(ColorSuccess)
	StyleFailure = lipgloss.NewStyle().Foreground(ColorFailure)
	StyleWarning = lipgloss.NewStyle().Foreground(ColorWarning)
	StyleInfo    = lipgloss.NewStyle().Foreground(ColorInfo)
	StyleMuted   = lipgloss.NewStyle().Foreground(ColorMuted)
	StyleBold    = lipgloss.NewStyle().Bold(true)

	StyleSelected = lipgloss.NewStyle().Background(ColorHighlight)

	StyleBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9FAFB")).
			Background(ColorInfo).
			Padding(0, 1)

	StyleErrorBanner = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F9FAFB")).
				Background(ColorFailure).
				Padding(0, 1)
)

func PresenceStyle(presence string) lipgloss.Style {
	switch presence {
	case model.PresenceOnline, model.PresenceAvailable:
		return StyleSuccess
	case model.PresenceBusy, model.PresenceIncoming, model.PresenceRinging:
		return StyleFailure
	case model.PresenceDND:
		return StyleWarning
	case model.PresenceVoicemail, model.PresenceCellphone, model.PresenceCallForward:
		return StyleInfo
	default:
		return StyleMuted
	}
}

// PresenceIcon renders a dot coloured by presence.
func PresenceIcon(presence string) string {
	return PresenceStyle(presence).Render("●")
}

// CallIcon renders the direction arrow of a queue call, green when the
// outcome was positive and red otherwise.
func CallIcon(call model.QueueCall) string {
	icon := "?"
	switch call.Direction {
	case "IN":
		icon = "↙"
	case "OUT":
		icon = "↗"
	}
	if call.Answered() {
		return StyleSuccess.Render(icon)
	}
	return StyleFailure.Render(icon)
}

// FormatAgo renders d as a compact age such as "5m ago".
func FormatAgo(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
