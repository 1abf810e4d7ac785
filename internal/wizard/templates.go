// Package wizard provides the onboarding category templates: common
// expenses with typical amounts and payment months, offered during setup
// so a first plan is usable immediately.
package wizard

import "github.com/jmoreaux/budgetpilot/internal/model"

// Template is one suggested expense with sensible defaults. Amounts are
// starting points; the wizard lets the user adjust them later.
type Template struct {
	Title        string
	Frequency    model.Frequency
	Amount       float64
	PaymentMonth int
	Allocation   model.Allocation
}

// Category groups templates under a wizard step.
type Category struct {
	ID        string
	Label     string
	Templates []Template
}

// Categories returns the wizard's category walk, in presentation order.
func Categories() []Category {
	return []Category{
		{ID: "housing", Label: "Housing", Templates: []Template{
			{Title: "Rent / mortgage", Frequency: model.FrequencyMonthly, Amount: 900},
			{Title: "Home insurance", Frequency: model.FrequencyYearly, Amount: 250, PaymentMonth: 9, Allocation: model.AllocationProrata},
		}},
		{ID: "vehicle", Label: "Vehicle", Templates: []Template{
			{Title: "Car insurance", Frequency: model.FrequencyYearly, Amount: 600, PaymentMonth: 1, Allocation: model.AllocationSpread},
			{Title: "Car maintenance", Frequency: model.FrequencyYearly, Amount: 400, PaymentMonth: 6, Allocation: model.AllocationSpread},
			{Title: "Fuel", Frequency: model.FrequencyMonthly, Amount: 120},
		}},
		{ID: "subscriptions", Label: "Subscriptions", Templates: []Template{
			{Title: "Streaming services", Frequency: model.FrequencyMonthly, Amount: 25},
			{Title: "Mobile phone", Frequency: model.FrequencyMonthly, Amount: 20},
		}},
		{ID: "health", Label: "Health", Templates: []Template{
			{Title: "Health insurance", Frequency: model.FrequencyMonthly, Amount: 60},
		}},
		{ID: "internet", Label: "Internet", Templates: []Template{
			{Title: "Internet box", Frequency: model.FrequencyMonthly, Amount: 35},
		}},
		{ID: "pension", Label: "Pension", Templates: []Template{
			{Title: "Retirement savings", Frequency: model.FrequencyMonthly, Amount: 100},
		}},
		{ID: "vacation", Label: "Vacation", Templates: []Template{
			{Title: "Summer vacation", Frequency: model.FrequencyYearly, Amount: 1500, PaymentMonth: 7, Allocation: model.AllocationProrata},
		}},
		{ID: "gifts", Label: "Gifts", Templates: []Template{
			{Title: "Christmas gifts", Frequency: model.FrequencyYearly, Amount: 500, PaymentMonth: 12, Allocation: model.AllocationProrata},
			{Title: "Birthdays", Frequency: model.FrequencyYearly, Amount: 200, PaymentMonth: 6, Allocation: model.AllocationSpread},
		}},
		{ID: "taxes", Label: "Taxes", Templates: []Template{
			{Title: "Property tax", Frequency: model.FrequencyYearly, Amount: 800, PaymentMonth: 10, Allocation: model.AllocationProrata},
			{Title: "Income tax adjustment", Frequency: model.FrequencyYearly, Amount: 300, PaymentMonth: 9, Allocation: model.AllocationProrata},
		}},
	}
}

// BuildItems turns chosen templates into plan items. When shared is true
// the items go on the joint account with the given share percentage.
func BuildItems(planID string, chosen []Template, shared bool, sharePercent float64) []model.Item {
	items := make([]model.Item, 0, len(chosen))
	for _, tpl := range chosen {
		it := model.Item{
			PlanID:       planID,
			Title:        tpl.Title,
			Kind:         model.KindExpense,
			Frequency:    tpl.Frequency,
			Amount:       tpl.Amount,
			PaymentMonth: tpl.PaymentMonth,
			Allocation:   tpl.Allocation,
			Sharing:      model.SharingIndividual,
			IsActive:     true,
		}
		if it.Frequency == model.FrequencyYearly && it.Allocation == "" {
			it.Allocation = model.AllocationProrata
		}
		if shared {
			it.Sharing = model.SharingCommon
			it.MySharePercent = sharePercent
		}
		items = append(items, it)
	}
	return items
}
