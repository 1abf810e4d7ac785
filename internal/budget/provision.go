// Package budget implements the projection and provisioning engine: pure
// calculations over a plan's items for a target month. No I/O happens here.
package budget

import (
	"math"

	"github.com/jmoreaux/budgetpilot/internal/model"
)

// ComputeProvision returns the amount to set aside in targetMonth for one
// item. Monthly items are paid as they come and provision nothing; yearly
// items without a payment month are incomplete and provision nothing.
func ComputeProvision(it model.Item, targetMonth int) float64 {
	if it.Frequency != model.FrequencyYearly || it.PaymentMonth < 1 {
		return 0
	}

	my := it.MyAmount()

	// Spread allocation runs all twelve months, even past the payment month.
	if it.Allocation == model.AllocationSpread {
		return my / 12
	}

	// Prorata stops once the payment month has passed.
	if targetMonth > it.PaymentMonth {
		return 0
	}
	monthsLeft := it.PaymentMonth - targetMonth
	if monthsLeft <= 0 {
		// Due this month: whatever is still owed is owed now.
		return my
	}
	return my / float64(monthsLeft)
}

// ComputeProgress returns the schedule position for an item as a percentage
// of provisioning months elapsed. This measures where the calendar stands,
// not what was actually saved.
func ComputeProgress(it model.Item, targetMonth, startMonth int) int {
	totalMonths := 12
	if it.Allocation != model.AllocationSpread {
		totalMonths = it.PaymentMonth - startMonth
		if totalMonths < 1 {
			totalMonths = 1
		}
	}

	doneMonths := targetMonth - startMonth
	if doneMonths < 0 {
		doneMonths = 0
	}

	pct := int(math.Round(float64(doneMonths) / float64(totalMonths) * 100))
	if pct > 100 {
		pct = 100
	}
	return pct
}

// ProvisionSchedule returns the set-aside owed in each of the twelve months
// for a set of items. Index 0 is January.
func ProvisionSchedule(items []model.Item) [12]float64 {
	var sched [12]float64
	for m := 1; m <= 12; m++ {
		for _, it := range items {
			if it.Kind != model.KindExpense || it.IsUnplanned || !it.IsActive {
				continue
			}
			sched[m-1] += ComputeProvision(it, m)
		}
	}
	return sched
}
