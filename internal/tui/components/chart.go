package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmoreaux/budgetpilot/internal/tui/theme"
)

var barRunes = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// BarChart renders twelve monthly values as a labeled column chart.
// The column for highlightMonth (1-12) is drawn in the accent color.
func BarChart(values [12]float64, highlightMonth, height int) string {
	t := theme.Active
	if height < 2 {
		height = 2
	}

	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}

	cols := make([][]rune, 12)
	for i, v := range values {
		cols[i] = column(v, max, height)
	}

	var b strings.Builder
	for row := 0; row < height; row++ {
		for i := 0; i < 12; i++ {
			cell := string(cols[i][row])
			style := lipgloss.NewStyle().Foreground(t.Cyan)
			if i+1 == highlightMonth {
				style = style.Foreground(t.AccentBright)
			}
			if cell == " " {
				b.WriteString("   ")
				continue
			}
			b.WriteString(" " + style.Render(cell) + " ")
		}
		b.WriteString("\n")
	}

	labels := []string{"J", "F", "M", "A", "M", "J", "J", "A", "S", "O", "N", "D"}
	for i, l := range labels {
		style := lipgloss.NewStyle().Foreground(t.TextDim)
		if i+1 == highlightMonth {
			style = lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
		}
		b.WriteString(" " + style.Render(l) + " ")
	}
	return b.String()
}

// column builds one chart column top to bottom.
func column(v, max float64, height int) []rune {
	col := make([]rune, height)
	for i := range col {
		col[i] = ' '
	}
	if max <= 0 || v <= 0 {
		return col
	}

	// total eighths of a cell to fill, bottom-up
	eighths := int(v / max * float64(height*8))
	if eighths < 1 {
		eighths = 1
	}
	for i := 0; i < height; i++ {
		row := height - 1 - i
		switch {
		case eighths >= 8:
			col[row] = '█'
			eighths -= 8
		case eighths > 0:
			col[row] = barRunes[eighths-1]
			eighths = 0
		}
	}
	return col
}
