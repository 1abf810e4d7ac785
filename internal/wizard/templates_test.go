package wizard

import (
	"testing"

	"github.com/jmoreaux/budgetpilot/internal/model"
)

func TestCategoriesAreWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, cat := range Categories() {
		if cat.ID == "" || cat.Label == "" {
			t.Fatalf("category %+v missing id or label", cat)
		}
		if seen[cat.ID] {
			t.Fatalf("duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = true

		for _, tpl := range cat.Templates {
			if tpl.Title == "" || tpl.Amount <= 0 {
				t.Fatalf("template %+v in %s has no title or amount", tpl, cat.ID)
			}
			if tpl.Frequency == model.FrequencyYearly {
				if tpl.PaymentMonth < 1 || tpl.PaymentMonth > 12 {
					t.Fatalf("yearly template %q has payment month %d", tpl.Title, tpl.PaymentMonth)
				}
				if tpl.Allocation == "" {
					t.Fatalf("yearly template %q has no allocation", tpl.Title)
				}
			}
		}
	}
}

func TestBuildItems(t *testing.T) {
	chosen := []Template{
		{Title: "Rent", Frequency: model.FrequencyMonthly, Amount: 900},
		{Title: "Car insurance", Frequency: model.FrequencyYearly, Amount: 600, PaymentMonth: 1, Allocation: model.AllocationSpread},
	}

	items := BuildItems("plan-1", chosen, false, 0)
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for _, it := range items {
		if it.PlanID != "plan-1" || !it.IsActive || it.Kind != model.KindExpense {
			t.Fatalf("item %q built wrong: %+v", it.Title, it)
		}
		if it.Sharing != model.SharingIndividual {
			t.Fatalf("solo build produced shared item %q", it.Title)
		}
	}

	shared := BuildItems("plan-1", chosen, true, 60)
	for _, it := range shared {
		if it.Sharing != model.SharingCommon || it.MySharePercent != 60 {
			t.Fatalf("shared build item %q: %+v", it.Title, it)
		}
	}
}
