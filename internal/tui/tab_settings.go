package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmoreaux/budgetpilot/internal/cli"
	"github.com/jmoreaux/budgetpilot/internal/config"
	"github.com/jmoreaux/budgetpilot/internal/tui/components"
	"github.com/jmoreaux/budgetpilot/internal/tui/theme"
)

type settingRow struct {
	label string
	value string
	// theme rows cycle on enter instead of opening the editor
	isTheme bool
	current float64
	apply   func(a *App, v float64)
	plan    bool
}

func (a *App) settingsRows() []settingRow {
	p, pl := a.profile, a.plan

	rows := []settingRow{
		{label: "Monthly net salary", value: cli.FormatMoney(pl.MonthlySalaryNet),
			current: pl.MonthlySalaryNet, plan: true,
			apply: func(a *App, v float64) { a.plan.MonthlySalaryNet = v }},
		{label: "Fun savings target", value: cli.FormatMoney(pl.FunSavingsMonthlyTarget),
			current: pl.FunSavingsMonthlyTarget, plan: true,
			apply: func(a *App, v float64) { a.plan.FunSavingsMonthlyTarget = v }},
		{label: "Personal savings", value: cli.FormatMoney(p.ExistingSavings),
			current: p.ExistingSavings,
			apply: func(a *App, v float64) { a.profile.ExistingSavings = v }},
		{label: "Provision pot", value: cli.FormatMoney(p.ExistingProvisions),
			current: p.ExistingProvisions,
			apply: func(a *App, v float64) { a.profile.ExistingProvisions = v }},
	}

	if p.HasSharedAccount {
		rows = append(rows,
			settingRow{label: "Joint transfer", value: cli.FormatMoney(p.SharedMonthlyTransfer),
				current: p.SharedMonthlyTransfer,
				apply:   func(a *App, v float64) { a.profile.SharedMonthlyTransfer = v }},
			settingRow{label: "Partner transfer", value: cli.FormatMoney(p.PartnerMonthlyTransfer),
				current: p.PartnerMonthlyTransfer,
				apply:   func(a *App, v float64) { a.profile.PartnerMonthlyTransfer = v }},
			settingRow{label: "Savings transfer", value: cli.FormatMoney(p.SharedSavingsTransfer),
				current: p.SharedSavingsTransfer,
				apply:   func(a *App, v float64) { a.profile.SharedSavingsTransfer = v }},
			settingRow{label: "Partner savings transfer", value: cli.FormatMoney(p.PartnerSharedSavingsTransfer),
				current: p.PartnerSharedSavingsTransfer,
				apply:   func(a *App, v float64) { a.profile.PartnerSharedSavingsTransfer = v }},
			settingRow{label: "Shared savings", value: cli.FormatMoney(p.ExistingSharedSavings),
				current: p.ExistingSharedSavings,
				apply:   func(a *App, v float64) { a.profile.ExistingSharedSavings = v }},
		)
	}

	rows = append(rows, settingRow{label: "Theme", value: theme.Active.Name, isTheme: true})
	return rows
}

func (a *App) startEditOrCycle() (tea.Model, tea.Cmd) {
	rows := a.settingsRows()
	row := rows[a.settingsCursor]

	if row.isTheme {
		names := theme.Names()
		next := names[0]
		for i, n := range names {
			if n == theme.Active.Name {
				next = names[(i+1)%len(names)]
				break
			}
		}
		theme.SetActive(next)
		a.cfg.Appearance.Theme = next
		cfg := a.cfg
		return a, func() tea.Msg { return savedMsg{err: config.Save(cfg)} }
	}

	a.editing = true
	a.notice = ""
	a.input.SetValue(strconv.FormatFloat(row.current, 'f', -1, 64))
	a.input.CursorEnd()
	a.input.Focus()
	return a, textinput.Blink
}

func (a *App) commitEdit() (tea.Model, tea.Cmd) {
	v, err := strconv.ParseFloat(a.input.Value(), 64)
	if err != nil || v < 0 {
		a.notice = "enter a non-negative number"
		return a, nil
	}

	a.editing = false
	a.input.Blur()

	rows := a.settingsRows()
	row := rows[a.settingsCursor]
	row.apply(a, v)
	a.recompute()

	st, profile, plan := a.st, a.profile, a.plan
	usePlan := row.plan
	return a, func() tea.Msg {
		var err error
		if usePlan {
			_, err = st.UpsertPlan(plan)
		} else {
			_, err = st.UpsertProfile(profile)
		}
		return savedMsg{err: err}
	}
}

func (a *App) viewSettings() string {
	t := theme.Active
	rows := a.settingsRows()

	rowStyle := lipgloss.NewStyle().Foreground(t.Text)
	selStyle := lipgloss.NewStyle().Foreground(t.Background).Background(t.Accent)
	dim := lipgloss.NewStyle().Foreground(t.TextDim)

	body := ""
	for i, row := range rows {
		value := row.value
		if a.editing && i == a.settingsCursor {
			value = a.input.View()
		}
		line := fmt.Sprintf("  %-26s %s", row.label, value)
		style := rowStyle
		if i == a.settingsCursor {
			style = selStyle
		}
		if i > 0 {
			body += "\n"
		}
		body += style.Render(line)
	}

	hint := "↑/↓ select  enter edit"
	if a.editing {
		hint = "enter save  esc cancel"
	}
	body += "\n\n" + dim.Render(hint)

	title := "Settings"
	if a.profile.FirstName != "" {
		title = fmt.Sprintf("Settings  %s, plan %d", a.profile.FirstName, a.plan.Year)
	}
	return "\n" + components.ContentCard(title, body, min(a.width, 64))
}
