package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmoreaux/budgetpilot/internal/budget"
	"github.com/jmoreaux/budgetpilot/internal/cli"
	"github.com/jmoreaux/budgetpilot/internal/model"
	"github.com/jmoreaux/budgetpilot/internal/tui/components"
	"github.com/jmoreaux/budgetpilot/internal/tui/theme"
)

func (a *App) viewOverview() string {
	t := theme.Active
	mb := a.mb

	cardW := a.width / 4
	if cardW < 18 {
		cardW = 18
	}
	if cardW > 30 {
		cardW = 30
	}

	freeColor := statusColor(mb.Status)
	cards := []string{
		components.MetricCard("Free money", cli.FormatMoney(mb.FreeMoney),
			string(mb.Status), cardW, freeColor),
		components.MetricCard("To save", cli.FormatMoney(mb.TotalToSave),
			"provisions + savings", cardW, t.Cyan),
		components.MetricCard("Year-end savings", cli.FormatMoney(mb.YearEndSavings),
			"projected", cardW, t.Green),
	}
	if a.profile.HasSharedAccount {
		balColor := t.Green
		sub := "covered"
		if mb.CommonBalance < 0 {
			balColor = t.Red
			sub = "deficit"
		}
		cards = append(cards, components.MetricCard("Joint balance",
			cli.FormatSignedMoney(mb.CommonBalance), sub, cardW, balColor))
	}
	top := components.LayoutRow(cards...)

	halfW := a.width / 2
	if halfW < 30 {
		halfW = a.width
	}

	flows := a.renderFlows(halfW)
	chart := a.renderScheduleChart(halfW)

	var bottom string
	if halfW == a.width {
		bottom = lipgloss.JoinVertical(lipgloss.Left, flows, chart)
	} else {
		bottom = components.LayoutRow(flows, chart)
	}

	return lipgloss.JoinVertical(lipgloss.Left, "", top, "", bottom)
}

func (a *App) renderFlows(width int) string {
	t := theme.Active
	mb := a.mb

	label := lipgloss.NewStyle().Foreground(t.TextMuted)
	val := lipgloss.NewStyle().Foreground(t.Text)

	line := func(name string, amount float64) string {
		return label.Render(fmt.Sprintf("%-22s", name)) + val.Render(cli.FormatMoney(amount))
	}

	rows := []string{
		line("Net salary", mb.SalaryNet),
	}
	if mb.BonusIncome > 0 {
		rows = append(rows, line("Extra income", mb.BonusIncome))
	}
	rows = append(rows,
		line("Personal expenses", mb.PersonalMonthlyExpenses),
	)
	if a.profile.HasSharedAccount {
		rows = append(rows, line("Joint transfer", mb.MyTransfer))
	}
	rows = append(rows,
		line("Provisions", mb.PersonalProvisions+mb.CommonProvisions),
		line("Fun savings", mb.FunSavings),
	)
	if mb.UnplannedFromFree > 0 {
		rows = append(rows, line("Unplanned (from free)", mb.UnplannedFromFree))
	}

	body := ""
	for i, r := range rows {
		if i > 0 {
			body += "\n"
		}
		body += r
	}
	return components.ContentCard(fmt.Sprintf("%s flows", cli.MonthName(a.month)), body, width)
}

func (a *App) renderScheduleChart(width int) string {
	schedule := budget.ProvisionSchedule(a.items)
	chart := components.BarChart(schedule, a.month, 5)

	t := theme.Active
	peak := 0.0
	for _, v := range schedule {
		if v > peak {
			peak = v
		}
	}
	legend := lipgloss.NewStyle().Foreground(t.TextDim).
		Render("peak month " + cli.FormatMoney(peak))

	return components.ContentCard("Provision schedule", chart+"\n"+legend, width)
}

func statusColor(s model.BudgetStatus) lipgloss.Color {
	t := theme.Active
	switch s {
	case model.StatusComfortable:
		return t.Green
	case model.StatusBalanced:
		return t.Yellow
	default:
		return t.Red
	}
}
