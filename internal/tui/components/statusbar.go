package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmoreaux/budgetpilot/internal/tui/theme"
)

// StatusBar renders the bottom bar: left context text, right key hints.
func StatusBar(left, right string, width int) string {
	t := theme.Active

	bar := lipgloss.NewStyle().Background(t.Surface)
	leftStr := bar.Foreground(t.Text).Padding(0, 1).Render(left)
	rightStr := bar.Foreground(t.TextMuted).Padding(0, 1).Render(right)

	gap := width - lipgloss.Width(leftStr) - lipgloss.Width(rightStr)
	if gap < 1 {
		gap = 1
	}
	return leftStr + bar.Render(strings.Repeat(" ", gap)) + rightStr
}
