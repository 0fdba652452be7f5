package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"studylog/internal/ui/theme"
)

var (
	badgeStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Surface1).
			Background(theme.Mantle).
			Padding(0, 2).
			Align(lipgloss.Center)

	badgeLabel = lipgloss.NewStyle().Foreground(theme.Subtext0)
	badgeValue = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
)

// StatBadge renders a small bordered box with a big value over a
// muted label, used by the dashboard header row.
func StatBadge(label, value string) string {
	inner := badgeValue.Render(value) + "\n" + badgeLabel.Render(label)
	return badgeStyle.Render(inner)
}

// ProgressBar renders a fixed-width bar for a 0-100 percentage.
// Values above 100 fill the whole bar rather than overflowing it.
func ProgressBar(width, pct int) string {
	if width < 1 {
		width = 1
	}
	filled := width * pct / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return lipgloss.NewStyle().Foreground(theme.Lavender).Render(bar)
}
