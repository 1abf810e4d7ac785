package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmoreaux/budgetpilot/internal/tui/theme"
)

// ProgressBar renders a percent bar at the given width.
func ProgressBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 4 {
		width = 4
	}

	bar := progress.New(
		progress.WithSolidFill(string(ColorForPct(pct))),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	return bar.ViewAs(float64(pct) / 100)
}

// LabeledBar renders "label  [bar]  42%" on one line.
func LabeledBar(label string, pct, labelWidth, barWidth int) string {
	t := theme.Active

	l := lipgloss.NewStyle().Foreground(t.Text).Width(labelWidth).Render(truncate(label, labelWidth))
	p := lipgloss.NewStyle().Foreground(t.TextMuted).Render(fmt.Sprintf(" %3d%%", pct))
	return l + " " + ProgressBar(pct, barWidth) + p
}

// ColorForPct maps a completion percentage to a palette color.
func ColorForPct(pct int) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 100:
		return t.Green
	case pct >= 50:
		return t.Yellow
	default:
		return t.Orange
	}
}
