// Package components holds the reusable rendering blocks for the dashboard.
package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jmoreaux/budgetpilot/internal/tui/theme"
)

// MetricCard renders a compact stat: title, big value, optional subtitle.
func MetricCard(title, value, sub string, width int, accent lipgloss.Color) string {
	t := theme.Active
	if accent == "" {
		accent = t.Accent
	}

	inner := width - 4 // border + padding
	if inner < 4 {
		inner = 4
	}

	titleLine := lipgloss.NewStyle().Foreground(t.TextMuted).Render(truncate(title, inner))
	valueLine := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(truncate(value, inner))

	body := titleLine + "\n" + valueLine
	if sub != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(truncate(sub, inner))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width - 2).
		Render(body)
}

// ContentCard renders a bordered card with a title row and free-form body.
func ContentCard(title, body string, width int) string {
	t := theme.Active

	inner := width - 4
	if inner < 4 {
		inner = 4
	}

	titleLine := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true).Render(truncate(title, inner))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1).
		Width(width - 2).
		Render(titleLine + "\n" + body)
}

// LayoutRow joins cards horizontally, top-aligned.
func LayoutRow(cards ...string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func truncate(s string, max int) string {
	if max <= 0 || lipgloss.Width(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}
