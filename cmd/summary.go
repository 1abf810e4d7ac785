package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmoreaux/budgetpilot/internal/budget"
	"github.com/jmoreaux/budgetpilot/internal/cli"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the monthly budget summary",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	app, err := loadContext()
	if err != nil {
		return err
	}
	defer app.Close()

	mb := budget.Aggregate(app.Profile, app.Plan, app.Items, app.Stocks, app.Month)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s %d: %s's budget", cli.MonthName(mb.Month), mb.Year, app.Profile.FirstName)))
	fmt.Println()

	t := cli.NewTable("", "Amount")
	t.AddRow("Net salary", cli.FormatMoney(mb.SalaryNet))
	if mb.BonusIncome > 0 {
		t.AddRow("Bonus income", cli.FormatMoney(mb.BonusIncome))
	}
	t.AddRow("Personal monthly expenses", cli.FormatMoney(-mb.PersonalMonthlyExpenses))
	t.AddRow("Fun savings", cli.FormatMoney(-mb.FunSavings))
	t.AddRow("Personal provisions", cli.FormatMoney(-mb.PersonalProvisions))
	if app.Profile.HasSharedAccount {
		t.AddRow("Joint account transfer", cli.FormatMoney(-mb.MyTransfer))
		t.AddRow("Shared provisions", cli.FormatMoney(-mb.CommonProvisions))
	}
	if mb.UnplannedFromFree > 0 {
		t.AddRow("Unplanned (from free money)", cli.FormatMoney(-mb.UnplannedFromFree))
	}
	t.AddSeparator()
	t.AddRow("To save this month", cli.FormatMoney(mb.TotalToSave))
	t.AddRow("Free money", cli.FormatMoney(mb.FreeMoney))
	fmt.Println(t.Render())

	fmt.Printf("  Budget status: %s\n", cli.StatusBadge(string(mb.Status)))
	fmt.Println()

	if app.Profile.HasSharedAccount {
		fmt.Println(cli.RenderTitle("Joint account"))
		fmt.Println()
		jt := cli.NewTable("", "Amount")
		jt.AddRow("Your transfer", cli.FormatMoney(mb.MyTransfer))
		jt.AddRow("Partner transfer", cli.FormatMoney(mb.PartnerTransfer))
		jt.AddRow("Covered shared expenses", cli.FormatMoney(-mb.CommonMonthlyCovered))
		if mb.CommonMonthlyExtra > 0 {
			jt.AddRow("Uncovered shared expenses", cli.FormatMoney(-mb.CommonMonthlyExtra))
		}
		jt.AddSeparator()
		jt.AddRow("Balance", cli.FormatSignedMoney(mb.CommonBalance))
		fmt.Println(jt.Render())

		if mb.CommonBalance < 0 {
			fmt.Printf("  %s\n", cli.Bad("The joint transfers do not cover the shared expenses."))
			fmt.Println()
		}
	}

	fmt.Println(cli.RenderTitle("Year-end projection"))
	fmt.Println()
	pt := cli.NewTable("", "Amount")
	pt.AddRow("Personal savings", cli.FormatMoney(mb.YearEndSavings))
	if app.Profile.HasSharedAccount {
		pt.AddRow("Shared savings", cli.FormatMoney(mb.YearEndSharedSavings))
	}
	fmt.Println(pt.Render())

	return nil
}
