// Package tui implements the interactive budget dashboard.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jmoreaux/budgetpilot/internal/budget"
	"github.com/jmoreaux/budgetpilot/internal/cli"
	"github.com/jmoreaux/budgetpilot/internal/config"
	"github.com/jmoreaux/budgetpilot/internal/model"
	"github.com/jmoreaux/budgetpilot/internal/store"
	"github.com/jmoreaux/budgetpilot/internal/tui/components"
	"github.com/jmoreaux/budgetpilot/internal/tui/theme"
)

type tab int

const (
	tabOverview tab = iota
	tabProvisions
	tabItems
	tabSettings
	tabCount
)

var tabTitles = []string{"Overview", "Provisions", "Items", "Settings"}

type dataLoadedMsg struct {
	profile   model.Profile
	plan      model.Plan
	items     []model.Item
	stocks    []model.ProvisionStock
	onboarded bool
	err       error
}

type savedMsg struct{ err error }

// App is the root bubbletea model.
type App struct {
	st     *store.Store
	cfg    *config.Config
	userID string
	year   int // 0 means active plan

	width  int
	height int

	active  tab
	month   int
	loading bool
	err     error

	onboarded bool
	profile   model.Profile
	plan      model.Plan
	items     []model.Item
	stocks    []model.ProvisionStock
	mb        model.MonthBudget

	itemCursor     int
	settingsCursor int
	editing        bool
	input          textinput.Model
	notice         string
	showHelp       bool

	spin spinner.Model
}

// Run starts the dashboard and blocks until it exits.
func Run(cfg *config.Config, st *store.Store, userID string, year, month int) error {
	theme.SetActive(cfg.Appearance.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	in := textinput.New()
	in.CharLimit = 12
	in.Width = 14

	app := &App{
		st:      st,
		cfg:     cfg,
		userID:  userID,
		year:    year,
		month:   month,
		loading: true,
		spin:    sp,
		input:   in,
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spin.Tick, a.loadCmd())
}

// loadCmd reads everything from the store. A missing profile or plan is
// not an error here: the dashboard shows an onboarding notice instead.
func (a *App) loadCmd() tea.Cmd {
	st, userID, year := a.st, a.userID, a.year
	return func() tea.Msg {
		profile, err := st.GetProfile(userID)
		if errors.Is(err, store.ErrNotFound) {
			return dataLoadedMsg{onboarded: false}
		}
		if err != nil {
			return dataLoadedMsg{err: err}
		}

		var plan model.Plan
		if year != 0 {
			plan, err = st.GetPlan(profile.ID, year)
		} else {
			plan, err = st.GetActivePlan(profile.ID)
		}
		if errors.Is(err, store.ErrNotFound) {
			return dataLoadedMsg{onboarded: false}
		}
		if err != nil {
			return dataLoadedMsg{err: err}
		}

		items, err := st.ListItems(plan.ID)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		stocks, err := st.GetStocks(plan.ID)
		if err != nil {
			return dataLoadedMsg{err: err}
		}

		return dataLoadedMsg{
			profile:   profile,
			plan:      plan,
			items:     items,
			stocks:    stocks,
			onboarded: true,
		}
	}
}

func (a *App) recompute() {
	if !a.onboarded {
		return
	}
	a.mb = budget.Aggregate(a.profile, a.plan, a.items, a.stocks, a.month)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case spinner.TickMsg:
		if !a.loading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(msg)
		return a, cmd

	case dataLoadedMsg:
		a.loading = false
		a.err = msg.err
		a.onboarded = msg.onboarded
		if msg.err == nil && msg.onboarded {
			a.profile = msg.profile
			a.plan = msg.plan
			a.items = msg.items
			a.stocks = msg.stocks
			if a.itemCursor >= len(a.items) {
				a.itemCursor = max(0, len(a.items)-1)
			}
			a.recompute()
		}
		return a, nil

	case savedMsg:
		if msg.err != nil {
			a.notice = "save failed: " + msg.err.Error()
			return a, nil
		}
		a.notice = "saved"
		return a, a.loadCmd()

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editing {
		return a.handleEditKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "?":
		a.showHelp = !a.showHelp
		return a, nil

	case "tab":
		a.active = (a.active + 1) % tabCount
		return a, nil
	case "shift+tab":
		a.active = (a.active + tabCount - 1) % tabCount
		return a, nil
	case "1", "2", "3", "4":
		n, _ := strconv.Atoi(msg.String())
		a.active = tab(n - 1)
		return a, nil

	case "left", "h":
		if a.month > 1 {
			a.month--
			a.recompute()
		}
		return a, nil
	case "right", "l":
		if a.month < 12 {
			a.month++
			a.recompute()
		}
		return a, nil

	case "r":
		a.loading = true
		a.notice = ""
		return a, tea.Batch(a.spin.Tick, a.loadCmd())

	case "up", "k":
		a.moveCursor(-1)
		return a, nil
	case "down", "j":
		a.moveCursor(1)
		return a, nil

	case "d":
		if a.active == tabItems && a.onboarded && len(a.items) > 0 {
			return a, a.deleteItemCmd(a.items[a.itemCursor])
		}
		return a, nil

	case "enter":
		if a.active == tabSettings && a.onboarded {
			return a.startEditOrCycle()
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.editing = false
		a.input.Blur()
		return a, nil
	case "enter":
		return a.commitEdit()
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) moveCursor(delta int) {
	switch a.active {
	case tabItems:
		a.itemCursor = clamp(a.itemCursor+delta, 0, max(0, len(a.items)-1))
	case tabSettings:
		a.settingsCursor = clamp(a.settingsCursor+delta, 0, max(0, len(a.settingsRows())-1))
	}
}

func (a *App) deleteItemCmd(item model.Item) tea.Cmd {
	st := a.st
	return func() tea.Msg {
		return savedMsg{err: st.DeleteItem(item.ID)}
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return "loading..."
	}
	t := theme.Active

	header := components.TabBar(tabTitles, int(a.active), a.width)

	var body string
	switch {
	case a.loading:
		body = "\n  " + a.spin.View() + " loading budget data..."
	case a.err != nil:
		body = "\n  " + lipgloss.NewStyle().Foreground(t.Red).Render("Error: "+a.err.Error())
	case !a.onboarded:
		body = a.viewOnboarding()
	case a.showHelp:
		body = a.viewHelp()
	default:
		switch a.active {
		case tabOverview:
			body = a.viewOverview()
		case tabProvisions:
			body = a.viewProvisions()
		case tabItems:
			body = a.viewItems()
		case tabSettings:
			body = a.viewSettings()
		}
	}

	left := fmt.Sprintf("%s %d", cli.MonthName(a.month), a.plan.Year)
	if !a.onboarded {
		left = "budgetpilot"
	}
	if a.notice != "" {
		left += "  " + a.notice
	}
	right := "←/→ month  tab switch  ? help  q quit"
	footer := components.StatusBar(left, right, a.width)

	bodyHeight := a.height - lipgloss.Height(header) - lipgloss.Height(footer)
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (a *App) viewOnboarding() string {
	t := theme.Active
	msg := lipgloss.NewStyle().Foreground(t.Text).Render("No budget profile yet.") + "\n" +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render("Quit and run `budgetpilot setup` to get started.")
	return "\n" + components.ContentCard("Welcome", msg, min(a.width, 56))
}

func (a *App) viewHelp() string {
	rows := []string{
		"tab / shift+tab   switch tab",
		"1-4               jump to tab",
		"← / →             previous / next month",
		"↑ / ↓             move cursor",
		"enter             edit setting",
		"d                 remove selected item",
		"r                 reload from database",
		"?                 toggle this help",
		"q                 quit",
	}
	t := theme.Active
	body := lipgloss.NewStyle().Foreground(t.TextMuted).Render(strings.Join(rows, "\n"))
	return "\n" + components.ContentCard("Keys", body, min(a.width, 56))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
