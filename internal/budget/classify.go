package budget

import "github.com/jmoreaux/budgetpilot/internal/model"

// Classified holds the views of a plan's items for one target month.
// Inactive items never appear in any view.
type Classified struct {
	// PersonalMonthly is individual recurring expenses paid from salary.
	PersonalMonthly []model.Item
	// CommonMonthlyCovered is shared recurring expenses paid by the joint
	// transfer; CommonMonthlyExtra is shared recurring expenses outside it.
	CommonMonthlyCovered []model.Item
	CommonMonthlyExtra   []model.Item
	// Provisionables are yearly expenses still accruing a set-aside for the
	// target month. Shared ones already covered by the joint transfer need
	// no set-aside and appear in neither list.
	PersonalProvisionable []model.Item
	CommonProvisionable   []model.Item
	// Unplanned is the unplanned expenses falling in the target month.
	Unplanned []model.Item
	// Bonuses is the yearly incomes paid in the target month.
	Bonuses []model.Item
}

// Classify routes each active item into its monthly views.
func Classify(items []model.Item, targetMonth int) Classified {
	var c Classified

	for _, it := range items {
		if !it.IsActive {
			continue
		}

		if it.IsUnplanned {
			if it.Kind == model.KindExpense && it.UnplannedMonth == targetMonth {
				c.Unplanned = append(c.Unplanned, it)
			}
			continue
		}

		if it.Kind == model.KindIncome {
			if it.Frequency == model.FrequencyYearly && it.PaymentMonth == targetMonth {
				c.Bonuses = append(c.Bonuses, it)
			}
			continue
		}

		switch it.Frequency {
		case model.FrequencyMonthly:
			switch {
			case !it.IsCommon():
				c.PersonalMonthly = append(c.PersonalMonthly, it)
			case it.IncludedInSharedTransfer:
				c.CommonMonthlyCovered = append(c.CommonMonthlyCovered, it)
			default:
				c.CommonMonthlyExtra = append(c.CommonMonthlyExtra, it)
			}

		case model.FrequencyYearly:
			// Prorata items past their payment month are done provisioning.
			if it.Allocation != model.AllocationSpread && it.PaymentMonth < targetMonth {
				continue
			}
			switch {
			case !it.IsCommon():
				c.PersonalProvisionable = append(c.PersonalProvisionable, it)
			case !it.IncludedInSharedTransfer:
				c.CommonProvisionable = append(c.CommonProvisionable, it)
			}
		}
	}

	return c
}
