package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmoreaux/budgetpilot/internal/cli"
	"github.com/jmoreaux/budgetpilot/internal/model"
	"github.com/jmoreaux/budgetpilot/internal/tui/components"
	"github.com/jmoreaux/budgetpilot/internal/tui/theme"
)

func (a *App) viewItems() string {
	t := theme.Active

	if len(a.items) == 0 {
		body := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("No budget items yet.\nAdd some with `budgetpilot items add`.")
		return "\n" + components.ContentCard("Items", body, min(a.width, 56))
	}

	width := min(a.width, 84)
	rowStyle := lipgloss.NewStyle().Foreground(t.Text)
	selStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	body := dim.Render(fmt.Sprintf("  %-24s %10s  %-8s %-8s %s",
		"Title", "Amount", "Kind", "Freq", "Detail"))
	for i, it := range a.items {
		row := fmt.Sprintf("  %-24s %10s  %-8s %-8s %s",
			clip(it.Title, 24), cli.FormatMoney(it.Amount),
			string(it.Kind), string(it.Frequency), itemDetail(it))
		style := rowStyle
		if i == a.itemCursor {
			style = selStyle
		}
		body += "\n" + style.Render(row)
	}
	body += "\n\n" + dim.Render("↑/↓ select  d remove")

	return "\n" + components.ContentCard(fmt.Sprintf("Items (%d)", len(a.items)), body, width)
}

func itemDetail(it model.Item) string {
	switch {
	case it.IsUnplanned:
		return "unplanned " + cli.MonthShort(it.UnplannedMonth)
	case it.Kind == model.KindIncome && it.Frequency == model.FrequencyYearly:
		if it.GoesToSavings {
			return cli.MonthShort(it.PaymentMonth) + " → savings"
		}
		return cli.MonthShort(it.PaymentMonth)
	case it.Frequency == model.FrequencyYearly:
		d := cli.MonthShort(it.PaymentMonth)
		if it.Allocation == model.AllocationSpread {
			d += " spread"
		}
		if it.IsCommon() {
			d += fmt.Sprintf(" shared %.0f%%", it.MySharePercent)
		}
		return d
	case it.IsCommon():
		if it.IncludedInSharedTransfer {
			return "shared, in transfer"
		}
		return "shared, extra"
	default:
		return ""
	}
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
