package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmoreaux/budgetpilot/internal/cli"
	"github.com/jmoreaux/budgetpilot/internal/model"
	"github.com/jmoreaux/budgetpilot/internal/tui/components"
	"github.com/jmoreaux/budgetpilot/internal/tui/theme"
)

func (a *App) viewProvisions() string {
	t := theme.Active
	mb := a.mb

	if len(mb.PersonalLines) == 0 && len(mb.CommonLines) == 0 {
		body := lipgloss.NewStyle().Foreground(t.TextMuted).
			Render("No yearly expenses to provision for.\nAdd one with `budgetpilot items add`.")
		return "\n" + components.ContentCard("Provisions", body, min(a.width, 56))
	}

	width := min(a.width, 84)
	var sections []string

	if len(mb.PersonalLines) > 0 {
		sections = append(sections, a.renderProvisionGroup(
			fmt.Sprintf("Personal  %s/month", cli.FormatMoney(mb.PersonalProvisions)),
			mb.PersonalLines, width))
	}
	if len(mb.CommonLines) > 0 {
		sections = append(sections, a.renderProvisionGroup(
			fmt.Sprintf("Shared  %s/month", cli.FormatMoney(mb.CommonProvisions)),
			mb.CommonLines, width))
	}

	return lipgloss.JoinVertical(lipgloss.Left, "", lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (a *App) renderProvisionGroup(title string, lines []model.ProvisionLine, width int) string {
	t := theme.Active

	labelW := 22
	barW := width - labelW - 36
	if barW < 10 {
		barW = 10
	}

	body := ""
	for i, l := range lines {
		if i > 0 {
			body += "\n"
		}
		due := "all year"
		if l.Item.Allocation == model.AllocationProrata {
			due = "due " + cli.MonthShort(l.Item.PaymentMonth)
		}
		amounts := lipgloss.NewStyle().Foreground(t.TextMuted).Render(
			fmt.Sprintf("  %s of %s  %s",
				cli.FormatMoney(l.Saved), cli.FormatMoney(l.Target), due))
		body += components.LabeledBar(l.Item.Title, l.Progress, labelW, barW) + amounts
		if l.Monthly > 0 {
			body += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).
				Render(fmt.Sprintf("%*s", labelW+1, "")+"set aside "+cli.FormatMoney(l.Monthly)+" this month")
		}
	}

	return components.ContentCard(title, body, width)
}
