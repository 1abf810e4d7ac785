package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/jmoreaux/budgetpilot/internal/cli"
	"github.com/jmoreaux/budgetpilot/internal/model"
	"github.com/jmoreaux/budgetpilot/internal/source"
)

var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "Manage the plan's budget items",
	RunE:  runItemsList,
}

var itemsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active items",
	RunE:  runItemsList,
}

var itemsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an item interactively",
	RunE:  runItemsAdd,
}

var itemsRmCmd = &cobra.Command{
	Use:   "rm <title>",
	Short: "Remove an item (kept in history)",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemsRm,
}

var itemsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Bulk import items from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runItemsImport,
}

func init() {
	itemsCmd.AddCommand(itemsListCmd)
	itemsCmd.AddCommand(itemsAddCmd)
	itemsCmd.AddCommand(itemsRmCmd)
	itemsCmd.AddCommand(itemsImportCmd)
	rootCmd.AddCommand(itemsCmd)
}

func runItemsList(_ *cobra.Command, _ []string) error {
	app, err := loadContext()
	if err != nil {
		return err
	}
	defer app.Close()

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("Items in plan %d", app.Plan.Year)))
	fmt.Println()

	if len(app.Items) == 0 {
		fmt.Println("  No items yet. Add one with `budgetpilot items add`.")
		fmt.Println()
		return nil
	}

	t := cli.NewTable("Title", "Kind", "Frequency", "Amount", "Due", "Sharing")
	for _, it := range app.Items {
		due := ""
		if it.Frequency == model.FrequencyYearly && it.PaymentMonth >= 1 {
			due = cli.MonthShort(it.PaymentMonth)
		}
		if it.IsUnplanned {
			due = cli.MonthShort(it.UnplannedMonth) + " (unplanned)"
		}
		sharing := "personal"
		if it.IsCommon() {
			sharing = fmt.Sprintf("shared %.0f%%", it.MySharePercent)
		}
		t.AddRow(it.Title, string(it.Kind), string(it.Frequency), cli.FormatMoney(it.Amount), due, sharing)
	}
	fmt.Println(t.Render())

	return nil
}

func runItemsAdd(_ *cobra.Command, _ []string) error {
	app, err := loadContext()
	if err != nil {
		return err
	}
	defer app.Close()

	var (
		title     string
		amountStr string
		kind      = string(model.KindExpense)
		frequency = string(model.FrequencyMonthly)
		payMonth  = strconv.Itoa(app.Month)
		alloc     = string(model.AllocationProrata)
		shared    bool
		shareStr  = "50"
		covered   bool
		toSavings bool
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(&title).Validate(notEmpty),
			huh.NewInput().Title("Amount").Value(&amountStr).Validate(positiveNumber),
			huh.NewSelect[string]().Title("Kind").
				Options(
					huh.NewOption("Expense", string(model.KindExpense)),
					huh.NewOption("Income (bonus)", string(model.KindIncome)),
				).Value(&kind),
			huh.NewSelect[string]().Title("Frequency").
				Options(
					huh.NewOption("Monthly", string(model.FrequencyMonthly)),
					huh.NewOption("Yearly", string(model.FrequencyYearly)),
				).Value(&frequency),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	it := model.Item{
		PlanID:    app.Plan.ID,
		Title:     title,
		Kind:      model.Kind(kind),
		Frequency: model.Frequency(frequency),
		Sharing:   model.SharingIndividual,
		IsActive:  true,
	}
	it.Amount, _ = strconv.ParseFloat(amountStr, 64)

	if it.Frequency == model.FrequencyYearly {
		yearly := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Payment month (1-12)").Value(&payMonth).Validate(validMonth),
				huh.NewSelect[string]().Title("Provisioning").
					Options(
						huh.NewOption("Prorata (ramp up to the due month)", string(model.AllocationProrata)),
						huh.NewOption("Spread (1/12 all year)", string(model.AllocationSpread)),
					).Value(&alloc),
			),
		)
		if err := yearly.Run(); err != nil {
			return err
		}
		it.PaymentMonth, _ = strconv.Atoi(payMonth)
		it.Allocation = model.Allocation(alloc)
	}

	if it.Kind == model.KindIncome {
		routing := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().Title("Route this income to savings?").Value(&toSavings),
		))
		if err := routing.Run(); err != nil {
			return err
		}
		it.GoesToSavings = toSavings
	} else if app.Profile.HasSharedAccount {
		sharing := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().Title("Shared with your partner?").Value(&shared),
			),
		)
		if err := sharing.Run(); err != nil {
			return err
		}
		if shared {
			details := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().Title("Your share (%)").Value(&shareStr).Validate(positiveNumber),
					huh.NewConfirm().Title("Already covered by the joint transfer?").Value(&covered),
				),
			)
			if err := details.Run(); err != nil {
				return err
			}
			it.Sharing = model.SharingCommon
			it.MySharePercent, _ = strconv.ParseFloat(shareStr, 64)
			it.IncludedInSharedTransfer = covered
		}
	}

	if _, err := app.Store.CreateItem(it); err != nil {
		return err
	}

	fmt.Printf("  Added %q (%s).\n", it.Title, cli.FormatMoney(it.Amount))
	return nil
}

func runItemsRm(_ *cobra.Command, args []string) error {
	app, err := loadContext()
	if err != nil {
		return err
	}
	defer app.Close()

	for _, it := range app.Items {
		if it.Title == args[0] {
			if err := app.Store.DeleteItem(it.ID); err != nil {
				return err
			}
			fmt.Printf("  Removed %q.\n", it.Title)
			return nil
		}
	}
	return fmt.Errorf("no item titled %q in the active plan", args[0])
}

func runItemsImport(_ *cobra.Command, args []string) error {
	app, err := loadContext()
	if err != nil {
		return err
	}
	defer app.Close()

	items, err := source.ParseItemsFile(args[0], app.Plan.ID)
	if err != nil {
		return err
	}

	created, err := app.Store.CreateItems(items)
	if err != nil {
		return err
	}

	fmt.Printf("  Imported %d items.\n", len(created))
	return nil
}

func notEmpty(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func positiveNumber(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

func validMonth(s string) error {
	m, err := strconv.Atoi(s)
	if err != nil || m < 1 || m > 12 {
		return fmt.Errorf("enter a month between 1 and 12")
	}
	return nil
}
