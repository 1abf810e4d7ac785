package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmoreaux/budgetpilot/internal/cli"
)

var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Update a plan or profile setting",
	Long: `Update a single setting. Fields:

  salary            monthly net salary (plan)
  fun-savings       monthly fun-savings target (plan)
  savings           current personal savings (profile)
  transfer          your monthly joint-account transfer (profile)
  partner-transfer  partner's monthly joint-account transfer (profile)
  savings-transfer  your monthly shared-savings transfer (profile)
  shared-savings    current shared savings (profile)`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(_ *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[1], 64)
	if err != nil || value < 0 {
		return fmt.Errorf("value must be a non-negative number, got %q", args[1])
	}

	app, err := loadContext()
	if err != nil {
		return err
	}
	defer app.Close()

	switch args[0] {
	case "salary":
		app.Plan.MonthlySalaryNet = value
	case "fun-savings":
		app.Plan.FunSavingsMonthlyTarget = value
	case "savings":
		app.Profile.ExistingSavings = value
	case "transfer":
		app.Profile.SharedMonthlyTransfer = value
	case "partner-transfer":
		app.Profile.PartnerMonthlyTransfer = value
	case "savings-transfer":
		app.Profile.SharedSavingsTransfer = value
	case "shared-savings":
		app.Profile.ExistingSharedSavings = value
	default:
		return fmt.Errorf("unknown field %q, see `budgetpilot set --help`", args[0])
	}

	switch args[0] {
	case "salary", "fun-savings":
		if _, err := app.Store.UpsertPlan(app.Plan); err != nil {
			return err
		}
	default:
		if _, err := app.Store.UpsertProfile(app.Profile); err != nil {
			return err
		}
	}

	fmt.Printf("  %s set to %s.\n", args[0], cli.FormatMoney(value))
	return nil
}
