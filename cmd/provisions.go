package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmoreaux/budgetpilot/internal/budget"
	"github.com/jmoreaux/budgetpilot/internal/cli"
	"github.com/jmoreaux/budgetpilot/internal/model"
)

var flagSpendAmount float64

var provisionsCmd = &cobra.Command{
	Use:   "provisions",
	Short: "Show provisioning schedule and saved stocks",
	RunE:  runProvisions,
}

var provisionsSpendCmd = &cobra.Command{
	Use:   "spend <item-title>",
	Short: "Consume an item's provision stock when the bill comes due",
	Args:  cobra.ExactArgs(1),
	RunE:  runProvisionsSpend,
}

func init() {
	provisionsSpendCmd.Flags().Float64Var(&flagSpendAmount, "amount", 0, "Amount spent (default: the full saved stock)")
	provisionsCmd.AddCommand(provisionsSpendCmd)
	rootCmd.AddCommand(provisionsCmd)
}

func runProvisions(_ *cobra.Command, _ []string) error {
	app, err := loadContext()
	if err != nil {
		return err
	}
	defer app.Close()

	mb := budget.Aggregate(app.Profile, app.Plan, app.Items, app.Stocks, app.Month)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("Provisions for %s %d", cli.MonthName(mb.Month), mb.Year)))
	fmt.Println()

	if len(mb.PersonalLines) == 0 && len(mb.CommonLines) == 0 {
		fmt.Println("  No provisionable items this month.")
		fmt.Println()
		return nil
	}

	t := cli.NewTable("Item", "Target", "This month", "Saved", "Schedule")
	addLines := func(label string, lines []model.ProvisionLine) {
		if len(lines) == 0 {
			return
		}
		t.AddRow(cli.Dim(label))
		for _, l := range lines {
			t.AddRow(
				l.Item.Title,
				cli.FormatMoney(l.Target),
				cli.FormatMoney(l.Monthly),
				cli.FormatMoney(l.Saved),
				fmt.Sprintf("%s %s", cli.Bar(float64(l.Progress)/100, 10), cli.FormatPercent(l.Progress)),
			)
		}
	}
	addLines("Personal", mb.PersonalLines)
	addLines("Shared", mb.CommonLines)
	t.AddSeparator()
	t.AddRow("Total this month", "", cli.FormatMoney(mb.PersonalProvisions+mb.CommonProvisions), "", "")
	fmt.Println(t.Render())

	return nil
}

func runProvisionsSpend(_ *cobra.Command, args []string) error {
	app, err := loadContext()
	if err != nil {
		return err
	}
	defer app.Close()

	var item model.Item
	found := false
	for _, it := range app.Items {
		if it.Title == args[0] {
			item, found = it, true
			break
		}
	}
	if !found {
		return fmt.Errorf("no item titled %q in the active plan", args[0])
	}

	amount := flagSpendAmount
	if amount <= 0 {
		for _, st := range app.Stocks {
			if st.ItemID == item.ID {
				amount = st.AmountSaved
				break
			}
		}
	}
	if amount <= 0 {
		return errors.New("nothing saved for this item yet")
	}

	if err := app.Store.SpendProvision(app.Plan.ID, item.ID, amount, item.IsCommon()); err != nil {
		return err
	}

	fmt.Printf("  Spent %s from the %q provision.\n", cli.FormatMoney(amount), item.Title)
	return nil
}
