package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/jmoreaux/budgetpilot/internal/budget"
	"github.com/jmoreaux/budgetpilot/internal/cli"
	"github.com/jmoreaux/budgetpilot/internal/model"
	"github.com/jmoreaux/budgetpilot/internal/store"
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record what was actually saved and transferred this month",
	RunE:  runCheckin,
}

func init() {
	rootCmd.AddCommand(checkinCmd)
}

// checkinStep asks whether one savings step was done and for how much,
// defaulting to the computed target.
func checkinStep(title string, target float64) (bool, float64, error) {
	done := true
	amountStr := strconv.FormatFloat(target, 'f', 2, 64)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("%s (target %s): done?", title, cli.FormatMoney(target))).
				Value(&done),
		),
	)
	if err := form.Run(); err != nil {
		return false, 0, err
	}
	if !done {
		return false, 0, nil
	}

	amountForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Amount actually moved").Value(&amountStr).Validate(nonNegativeNumber),
		),
	)
	if err := amountForm.Run(); err != nil {
		return false, 0, err
	}
	return true, parseNumber(amountStr), nil
}

func runCheckin(_ *cobra.Command, _ []string) error {
	app, err := loadContext()
	if err != nil {
		return err
	}
	defer app.Close()

	targets := budget.CheckInTargets(app.Profile, app.Plan, app.Items, app.Month)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("Check-in for %s %d", cli.MonthName(app.Month), app.Plan.Year)))
	fmt.Println()

	_, err = app.Store.GetCheckIn(app.Plan.ID, app.Month, app.Plan.Year)
	if err == nil {
		fmt.Println(cli.Dim("  This month was already checked in; answers replace the previous ones."))
		fmt.Println()
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	ci := model.CheckIn{PlanID: app.Plan.ID, Month: app.Month, Year: app.Plan.Year}

	ci.FunSavingsDone, ci.FunSavingsAmount, err = checkinStep("Fun savings", targets.FunSavings)
	if err != nil {
		return err
	}

	if targets.PersonalProvisions > 0 {
		ci.PersonalProvisionsDone, ci.PersonalProvisionsAmount, err = checkinStep("Personal provisions", targets.PersonalProvisions)
		if err != nil {
			return err
		}
	}

	if app.Profile.HasSharedAccount {
		ci.CommonTransferDone, ci.CommonTransferAmount, err = checkinStep("Joint account transfer", targets.CommonTransfer)
		if err != nil {
			return err
		}
		if targets.SharedSavings > 0 {
			ci.SharedSavingsDone, ci.SharedSavingsAmount, err = checkinStep("Shared savings", targets.SharedSavings)
			if err != nil {
				return err
			}
		}
	}

	lines := budget.BuildLines(targets, ci)
	if err := app.Store.ApplyCheckIn(ci, lines); err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Check-in saved for %s %d.\n", cli.MonthName(app.Month), app.Plan.Year)
	return nil
}
