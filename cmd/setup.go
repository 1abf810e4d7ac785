package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/jmoreaux/budgetpilot/internal/cli"
	"github.com/jmoreaux/budgetpilot/internal/config"
	"github.com/jmoreaux/budgetpilot/internal/model"
	"github.com/jmoreaux/budgetpilot/internal/store"
	"github.com/jmoreaux/budgetpilot/internal/wizard"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the onboarding wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg, st, sess, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	profile, err := st.GetProfile(sess.UserID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		profile = model.Profile{UserID: sess.UserID}
	case err != nil:
		return err
	default:
		rerun := false
		confirm := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("A profile for %s already exists. Reconfigure it?", profile.FirstName)).
				Value(&rerun),
		))
		if err := confirm.Run(); err != nil {
			return err
		}
		if !rerun {
			return nil
		}
	}

	var (
		savingsStr    = formatDefault(profile.ExistingSavings)
		salaryStr     string
		funStr        string
		hasShared     = profile.HasSharedAccount
		myTransfer    = formatDefault(profile.SharedMonthlyTransfer)
		partnerTrans  = formatDefault(profile.PartnerMonthlyTransfer)
		mySaveTrans   = formatDefault(profile.SharedSavingsTransfer)
		partnerSave   = formatDefault(profile.PartnerSharedSavingsTransfer)
		sharedSavings = formatDefault(profile.ExistingSharedSavings)
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Your first name").Value(&profile.FirstName).Validate(notEmpty),
			huh.NewInput().Title("Current personal savings").Value(&savingsStr).Validate(nonNegativeNumber),
			huh.NewInput().Title("Monthly net salary").Value(&salaryStr).Validate(positiveNumber),
			huh.NewInput().Title("Monthly fun-savings target").Value(&funStr).Validate(nonNegativeNumber),
			huh.NewConfirm().Title("Do you share an account with a partner?").Value(&hasShared),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	profile.ExistingSavings = parseNumber(savingsStr)
	profile.HasSharedAccount = hasShared

	if hasShared {
		sharedForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Your monthly transfer to the joint account").Value(&myTransfer).Validate(nonNegativeNumber),
				huh.NewInput().Title("Partner's monthly transfer").Value(&partnerTrans).Validate(nonNegativeNumber),
				huh.NewInput().Title("Your monthly transfer to shared savings").Value(&mySaveTrans).Validate(nonNegativeNumber),
				huh.NewInput().Title("Partner's monthly transfer to shared savings").Value(&partnerSave).Validate(nonNegativeNumber),
				huh.NewInput().Title("Current shared savings").Value(&sharedSavings).Validate(nonNegativeNumber),
			),
		)
		if err := sharedForm.Run(); err != nil {
			return err
		}
		profile.SharedMonthlyTransfer = parseNumber(myTransfer)
		profile.PartnerMonthlyTransfer = parseNumber(partnerTrans)
		profile.SharedSavingsTransfer = parseNumber(mySaveTrans)
		profile.PartnerSharedSavingsTransfer = parseNumber(partnerSave)
		profile.ExistingSharedSavings = parseNumber(sharedSavings)
	} else {
		profile.SharedMonthlyTransfer = 0
		profile.PartnerMonthlyTransfer = 0
		profile.SharedSavingsTransfer = 0
		profile.PartnerSharedSavingsTransfer = 0
		profile.ExistingSharedSavings = 0
	}

	profile, err = st.UpsertProfile(profile)
	if err != nil {
		return err
	}

	now := time.Now()
	plan, err := st.GetPlan(profile.ID, now.Year())
	if errors.Is(err, store.ErrNotFound) {
		plan = model.Plan{ProfileID: profile.ID, Year: now.Year(), StartMonth: int(now.Month())}
	} else if err != nil {
		return err
	}
	plan.MonthlySalaryNet = parseNumber(salaryStr)
	plan.FunSavingsMonthlyTarget = parseNumber(funStr)
	plan.IsActive = true

	plan, err = st.UpsertPlan(plan)
	if err != nil {
		return err
	}

	if err := offerTemplates(st, plan); err != nil {
		return err
	}

	if !config.Exists() {
		if err := config.Save(cfg); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Printf("  All set, %s. Plan %d is active.\n", profile.FirstName, plan.Year)
	fmt.Println("  See your month with `budgetpilot` or open the dashboard with `budgetpilot tui`.")
	return nil
}

// offerTemplates walks the expense categories and bulk-creates the chosen
// suggestions.
func offerTemplates(st *store.Store, plan model.Plan) error {
	useTemplates := true
	confirm := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title("Start from common expense templates?").Value(&useTemplates),
	))
	if err := confirm.Run(); err != nil {
		return err
	}
	if !useTemplates {
		return nil
	}

	var chosen []wizard.Template
	for _, cat := range wizard.Categories() {
		opts := make([]huh.Option[int], len(cat.Templates))
		for i, tpl := range cat.Templates {
			label := fmt.Sprintf("%s (%s", tpl.Title, cli.FormatMoney(tpl.Amount))
			if tpl.Frequency == model.FrequencyYearly {
				label += " in " + cli.MonthShort(tpl.PaymentMonth)
			} else {
				label += "/month"
			}
			label += ")"
			opts[i] = huh.NewOption(label, i)
		}

		var picked []int
		sel := huh.NewForm(huh.NewGroup(
			huh.NewMultiSelect[int]().Title(cat.Label).Options(opts...).Value(&picked),
		))
		if err := sel.Run(); err != nil {
			return err
		}
		for _, i := range picked {
			chosen = append(chosen, cat.Templates[i])
		}
	}

	if len(chosen) == 0 {
		return nil
	}

	items := wizard.BuildItems(plan.ID, chosen, false, 50)
	if _, err := st.CreateItems(items); err != nil {
		return err
	}

	fmt.Printf("  Created %d items from templates.\n", len(items))
	return nil
}

func formatDefault(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseNumber(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func nonNegativeNumber(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}
