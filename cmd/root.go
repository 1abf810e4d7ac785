// Package cmd implements the budgetpilot CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmoreaux/budgetpilot/internal/cli"
	"github.com/jmoreaux/budgetpilot/internal/config"
	"github.com/jmoreaux/budgetpilot/internal/model"
	"github.com/jmoreaux/budgetpilot/internal/store"
)

var (
	flagMonth int
	flagYear  int
	flagDB    string
)

var rootCmd = &cobra.Command{
	Use:   "budgetpilot",
	Short: "Personal and household budget planning from the terminal",
	Long: `BudgetPilot projects monthly budgets: recurring and one-off expenses,
provisioning for future bills, shared-account balance, free spending money
and year-end savings. Run without arguments for the current month's summary.`,
	RunE:          runSummary,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagMonth, "month", 0, "Target month 1-12 (default: current month)")
	rootCmd.PersistentFlags().IntVar(&flagYear, "year", 0, "Plan year (default: active plan)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Database path override")
}

// Execute runs the CLI. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var errNotOnboarded = errors.New("no profile yet: run `budgetpilot setup` first")

// appContext bundles the open store and the loaded budget data that most
// commands need.
type appContext struct {
	Cfg     *config.Config
	Store   *store.Store
	Session config.Session
	Profile model.Profile
	Plan    model.Plan
	Items   []model.Item
	Stocks  []model.ProvisionStock
	Month   int
}

func (a *appContext) Close() {
	_ = a.Store.Close()
}

// loadConfigOnly loads config without touching the database.
func loadConfigOnly() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	cli.Currency = cfg.General.Currency
	return cfg, nil
}

// openStore opens config, session and database without requiring a
// profile. Used by setup and the TUI, which handle pre-onboarding
// themselves.
func openStore() (*config.Config, *store.Store, config.Session, error) {
	cfg, err := loadConfigOnly()
	if err != nil {
		return nil, nil, config.Session{}, err
	}

	sess, err := config.LoadSession(cfg.DataDir())
	if err != nil {
		return nil, nil, config.Session{}, err
	}

	dbPath := cfg.DBPath()
	if flagDB != "" {
		dbPath = flagDB
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, config.Session{}, err
	}

	return cfg, st, sess, nil
}

// loadContext loads everything for a target month. Fails with
// errNotOnboarded before setup has run.
func loadContext() (*appContext, error) {
	cfg, st, sess, err := openStore()
	if err != nil {
		return nil, err
	}

	profile, err := st.GetProfile(sess.UserID)
	if errors.Is(err, store.ErrNotFound) {
		_ = st.Close()
		return nil, errNotOnboarded
	}
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	var plan model.Plan
	if flagYear != 0 {
		plan, err = st.GetPlan(profile.ID, flagYear)
	} else {
		plan, err = st.GetActivePlan(profile.ID)
	}
	if errors.Is(err, store.ErrNotFound) {
		_ = st.Close()
		return nil, errNotOnboarded
	}
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	items, err := st.ListItems(plan.ID)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	stocks, err := st.GetStocks(plan.ID)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	month, err := targetMonth()
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	return &appContext{
		Cfg:     cfg,
		Store:   st,
		Session: sess,
		Profile: profile,
		Plan:    plan,
		Items:   items,
		Stocks:  stocks,
		Month:   month,
	}, nil
}

func targetMonth() (int, error) {
	if flagMonth == 0 {
		return int(time.Now().Month()), nil
	}
	if flagMonth < 1 || flagMonth > 12 {
		return 0, fmt.Errorf("month must be between 1 and 12, got %d", flagMonth)
	}
	return flagMonth, nil
}
