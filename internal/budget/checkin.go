package budget

import "github.com/jmoreaux/budgetpilot/internal/model"

// ItemContribution is one item's share of a month's provision target.
type ItemContribution struct {
	ItemID string
	Amount float64
}

// Targets are the expected amounts for a month's check-in steps.
type Targets struct {
	FunSavings         float64
	PersonalProvisions float64
	// CommonTransfer is the joint transfer plus the shared provisions that
	// ride along with it.
	CommonTransfer float64
	SharedSavings  float64

	PersonalContributions []ItemContribution
	CommonContributions   []ItemContribution
}

// CheckInTargets computes what each check-in step should amount to for the
// target month.
func CheckInTargets(p model.Profile, plan model.Plan, items []model.Item, targetMonth int) Targets {
	c := Classify(items, targetMonth)

	t := Targets{FunSavings: plan.FunSavingsMonthlyTarget}

	for _, it := range c.PersonalProvisionable {
		amt := ComputeProvision(it, targetMonth)
		if amt <= 0 {
			continue
		}
		t.PersonalProvisions += amt
		t.PersonalContributions = append(t.PersonalContributions, ItemContribution{ItemID: it.ID, Amount: amt})
	}

	var commonProvisions float64
	for _, it := range c.CommonProvisionable {
		amt := ComputeProvision(it, targetMonth)
		if amt <= 0 {
			continue
		}
		commonProvisions += amt
		t.CommonContributions = append(t.CommonContributions, ItemContribution{ItemID: it.ID, Amount: amt})
	}

	if p.HasSharedAccount {
		t.CommonTransfer = p.SharedMonthlyTransfer + commonProvisions
		t.SharedSavings = p.SharedSavingsTransfer
	}

	return t
}

// BuildLines turns a confirmed check-in into per-item stock contributions.
// Personal provisions accrue when that step is done; common provisions
// accrue with the joint transfer.
func BuildLines(t Targets, ci model.CheckIn) []model.CheckInLine {
	var lines []model.CheckInLine

	add := func(contribs []ItemContribution) {
		for _, con := range contribs {
			lines = append(lines, model.CheckInLine{
				PlanID: ci.PlanID,
				Month:  ci.Month,
				Year:   ci.Year,
				ItemID: con.ItemID,
				Amount: con.Amount,
			})
		}
	}

	if ci.PersonalProvisionsDone {
		add(t.PersonalContributions)
	}
	if ci.CommonTransferDone {
		add(t.CommonContributions)
	}

	return lines
}
