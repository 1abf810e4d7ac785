package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	badStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// RenderTitle renders a section title.
func RenderTitle(s string) string {
	return "  " + titleStyle.Render(s)
}

// Dim renders muted text.
func Dim(s string) string { return dimStyle.Render(s) }

// Good, Warn and Bad color a value by severity.
func Good(s string) string { return goodStyle.Render(s) }
func Warn(s string) string { return warnStyle.Render(s) }
func Bad(s string) string  { return badStyle.Render(s) }

// separator marks a horizontal rule row inside a table.
const separator = "---"

// Table accumulates rows and renders them with aligned columns.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a data row.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// AddSeparator appends a horizontal rule.
func (t *Table) AddSeparator() {
	t.rows = append(t.rows, []string{separator})
}

// Render lays the table out with two-space indentation. The first column
// is left-aligned, the rest right-aligned.
func (t *Table) Render() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		if len(row) == 1 && row[0] == separator {
			continue
		}
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	total := 0
	for _, w := range widths {
		total += w + 2
	}

	var b strings.Builder
	b.WriteString("  ")
	for i, h := range t.headers {
		b.WriteString(headerStyle.Render(pad(h, widths[i], i == 0)))
		b.WriteString("  ")
	}
	b.WriteString("\n  ")
	b.WriteString(dimStyle.Render(strings.Repeat("─", total)))
	b.WriteString("\n")

	for _, row := range t.rows {
		if len(row) == 1 && row[0] == separator {
			b.WriteString("  ")
			b.WriteString(dimStyle.Render(strings.Repeat("─", total)))
			b.WriteString("\n")
			continue
		}
		b.WriteString("  ")
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			b.WriteString(pad(cell, widths[i], i == 0))
			b.WriteString("  ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// pad aligns a cell without disturbing ANSI sequences.
func pad(s string, width int, left bool) string {
	gap := width - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if left {
		return s + strings.Repeat(" ", gap)
	}
	return strings.Repeat(" ", gap) + s
}

// Bar renders a plain text progress bar for command output.
func Bar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct * float64(width))
	return fmt.Sprintf("%s%s", strings.Repeat("█", filled), strings.Repeat("░", width-filled))
}

// StatusBadge colors a budget status for terminal output.
func StatusBadge(status string) string {
	switch status {
	case "comfortable":
		return Good(status)
	case "balanced":
		return Warn(status)
	default:
		return Bad(status)
	}
}
