package commands

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorBorder        = "#3A3F55"
	colorPrimaryText   = "#E6EAF2"
	colorSecondaryText = "#B1B8C7"
	colorMuted         = "#6D7383"
	colorAccent        = "#0EA5E9" // pool blue
	colorMeet          = "#F59E0B"
	colorSuccess       = "#22C55E"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorSecondaryText))
	textStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPrimaryText))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMuted))
	meetStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color(colorMeet))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(colorSuccess))
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorBorder)).
			Padding(0, 2)
)

// cell обрезает s до width и дополняет пробелами; стиль применяется после, чтобы не ломать выравнивание.
func cell(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		if width > 3 {
			r = append(r[:width-3], []rune("...")...)
		} else {
			r = r[:width]
		}
	}
	return string(r) + strings.Repeat(" ", width-len(r))
}
