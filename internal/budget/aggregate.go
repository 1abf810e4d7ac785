package budget

import "github.com/jmoreaux/budgetpilot/internal/model"

// Budget status thresholds, as a fraction of net salary left free.
const (
	tightRatio    = 0.10
	balancedRatio = 0.20
)

// Aggregate computes the full monthly picture for a plan: expense totals,
// provisions, shared-account balance, free money, and year-end projections.
func Aggregate(p model.Profile, plan model.Plan, items []model.Item, stocks []model.ProvisionStock, targetMonth int) model.MonthBudget {
	c := Classify(items, targetMonth)

	saved := make(map[string]float64, len(stocks))
	for _, s := range stocks {
		saved[s.ItemID] = s.AmountSaved
	}

	mb := model.MonthBudget{
		Month:      targetMonth,
		Year:       plan.Year,
		SalaryNet:  plan.MonthlySalaryNet,
		FunSavings: plan.FunSavingsMonthlyTarget,
	}

	for _, it := range c.PersonalMonthly {
		mb.PersonalMonthlyExpenses += it.Amount
	}
	for _, it := range c.CommonMonthlyCovered {
		mb.CommonMonthlyCovered += it.Amount
	}
	for _, it := range c.CommonMonthlyExtra {
		mb.CommonMonthlyExtra += it.Amount
	}

	mb.PersonalLines = provisionLines(c.PersonalProvisionable, saved, targetMonth, plan.StartMonth)
	mb.CommonLines = provisionLines(c.CommonProvisionable, saved, targetMonth, plan.StartMonth)
	for _, l := range mb.PersonalLines {
		mb.PersonalProvisions += l.Monthly
	}
	for _, l := range mb.CommonLines {
		mb.CommonProvisions += l.Monthly
	}

	for _, it := range c.Bonuses {
		amt := it.MyAmount()
		mb.BonusIncome += amt
		if it.GoesToSavings {
			mb.BonusToSavings += amt
		}
	}

	for _, it := range c.Unplanned {
		mb.UnplannedFromFree += it.FundedFromFree
		mb.UnplannedFromSavings += it.FundedFromSavings
		mb.UnplannedFromShared += it.FundedFromSharedSavings
	}

	if p.HasSharedAccount {
		mb.MyTransfer = p.SharedMonthlyTransfer
		mb.PartnerTransfer = p.PartnerMonthlyTransfer
		mb.CommonBalance = mb.MyTransfer + mb.PartnerTransfer - mb.CommonMonthlyCovered
	}

	mb.TotalToSave = mb.PersonalProvisions + mb.FunSavings
	if p.HasSharedAccount {
		mb.TotalToSave += mb.MyTransfer + mb.CommonProvisions
	}

	bonusFree := mb.BonusIncome - mb.BonusToSavings
	mb.FreeMoney = mb.SalaryNet - mb.PersonalMonthlyExpenses - mb.TotalToSave -
		mb.UnplannedFromFree + bonusFree
	mb.Status = statusFor(mb.FreeMoney, mb.SalaryNet)

	monthsRemaining := float64(12 - targetMonth + 1)
	mb.YearEndSavings = p.ExistingSavings + mb.FunSavings*monthsRemaining +
		mb.BonusToSavings - mb.UnplannedFromSavings
	if p.HasSharedAccount {
		sharedMonthly := p.SharedSavingsTransfer + p.PartnerSharedSavingsTransfer + mb.CommonProvisions
		mb.YearEndSharedSavings = p.ExistingSharedSavings + sharedMonthly*monthsRemaining -
			mb.UnplannedFromShared
	}

	return mb
}

func provisionLines(items []model.Item, saved map[string]float64, targetMonth, startMonth int) []model.ProvisionLine {
	if len(items) == 0 {
		return nil
	}
	lines := make([]model.ProvisionLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, model.ProvisionLine{
			Item:     it,
			Target:   it.MyAmount(),
			Monthly:  ComputeProvision(it, targetMonth),
			Saved:    saved[it.ID],
			Progress: ComputeProgress(it, targetMonth, startMonth),
		})
	}
	return lines
}

func statusFor(freeMoney, salary float64) model.BudgetStatus {
	if salary <= 0 {
		return model.StatusTight
	}
	switch ratio := freeMoney / salary; {
	case ratio < tightRatio:
		return model.StatusTight
	case ratio < balancedRatio:
		return model.StatusBalanced
	default:
		return model.StatusComfortable
	}
}
