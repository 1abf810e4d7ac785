package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmoreaux/budgetpilot/internal/budget"
	"github.com/jmoreaux/budgetpilot/internal/cli"
	"github.com/jmoreaux/budgetpilot/internal/model"
)

var (
	flagUnplannedAmount      float64
	flagUnplannedFromSavings float64
	flagUnplannedFromFree    float64
	flagUnplannedFromShared  float64
)

var unplannedCmd = &cobra.Command{
	Use:   "unplanned <title>",
	Short: "Record an unplanned expense funded from savings pools",
	Long: `Record an ad-hoc expense and say which pools pay for it: personal
savings, this month's free money, or shared savings. The funding amounts
must add up to the expense amount.`,
	Args: cobra.ExactArgs(1),
	RunE: runUnplanned,
}

func init() {
	unplannedCmd.Flags().Float64Var(&flagUnplannedAmount, "amount", 0, "Expense amount")
	unplannedCmd.Flags().Float64Var(&flagUnplannedFromSavings, "from-savings", 0, "Part funded from personal savings")
	unplannedCmd.Flags().Float64Var(&flagUnplannedFromFree, "from-free", 0, "Part funded from this month's free money")
	unplannedCmd.Flags().Float64Var(&flagUnplannedFromShared, "from-shared", 0, "Part funded from shared savings")
	_ = unplannedCmd.MarkFlagRequired("amount")
	rootCmd.AddCommand(unplannedCmd)
}

func runUnplanned(_ *cobra.Command, args []string) error {
	app, err := loadContext()
	if err != nil {
		return err
	}
	defer app.Close()

	title := args[0]
	split := budget.FundingSplit{
		FromSavings:       flagUnplannedFromSavings,
		FromFree:          flagUnplannedFromFree,
		FromSharedSavings: flagUnplannedFromShared,
	}

	// Default to free money when no pool was given.
	if split.Total() == 0 {
		split.FromFree = flagUnplannedAmount
	}

	if err := budget.ValidateFunding(title, flagUnplannedAmount, split); err != nil {
		return err
	}
	if split.FromSharedSavings > 0 && !app.Profile.HasSharedAccount {
		return fmt.Errorf("no shared account configured, cannot fund from shared savings")
	}

	it, err := app.Store.ApplyUnplanned(model.Item{
		PlanID:                  app.Plan.ID,
		Title:                   title,
		Amount:                  flagUnplannedAmount,
		UnplannedMonth:          app.Month,
		FundedFromSavings:       split.FromSavings,
		FundedFromFree:          split.FromFree,
		FundedFromSharedSavings: split.FromSharedSavings,
	})
	if err != nil {
		return err
	}

	fmt.Printf("  Recorded %q (%s) in %s.\n", it.Title, cli.FormatMoney(it.Amount), cli.MonthName(app.Month))
	if split.FromSavings > 0 {
		fmt.Printf("    from personal savings: %s\n", cli.FormatMoney(split.FromSavings))
	}
	if split.FromFree > 0 {
		fmt.Printf("    from free money:       %s\n", cli.FormatMoney(split.FromFree))
	}
	if split.FromSharedSavings > 0 {
		fmt.Printf("    from shared savings:   %s\n", cli.FormatMoney(split.FromSharedSavings))
	}
	return nil
}
