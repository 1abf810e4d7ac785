package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmoreaux/budgetpilot/internal/tui/theme"
)

// TabBar renders the top tab row. The active tab is highlighted.
func TabBar(titles []string, active, width int) string {
	t := theme.Active

	activeStyle := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true).
		Padding(0, 2)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Padding(0, 2)

	tabs := make([]string, 0, len(titles))
	for i, title := range titles {
		if i == active {
			tabs = append(tabs, activeStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveStyle.Render(title))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
	if gap := width - lipgloss.Width(row); gap > 0 {
		row += lipgloss.NewStyle().Foreground(t.TextDim).Render(strings.Repeat(" ", gap))
	}
	return row
}
