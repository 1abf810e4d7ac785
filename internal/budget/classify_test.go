package budget

import (
	"testing"

	"github.com/jmoreaux/budgetpilot/internal/model"
)

func TestClassifyRoutesViews(t *testing.T) {
	items := []model.Item{
		{ID: "rent", Kind: model.KindExpense, Frequency: model.FrequencyMonthly, Sharing: model.SharingIndividual, Amount: 900, IsActive: true},
		{ID: "electricity", Kind: model.KindExpense, Frequency: model.FrequencyMonthly, Sharing: model.SharingCommon, IncludedInSharedTransfer: true, Amount: 120, IsActive: true},
		{ID: "cleaning", Kind: model.KindExpense, Frequency: model.FrequencyMonthly, Sharing: model.SharingCommon, Amount: 80, IsActive: true},
		{ID: "car-insurance", Kind: model.KindExpense, Frequency: model.FrequencyYearly, Allocation: model.AllocationProrata, PaymentMonth: 9, Sharing: model.SharingIndividual, Amount: 600, IsActive: true},
		{ID: "house-tax", Kind: model.KindExpense, Frequency: model.FrequencyYearly, Allocation: model.AllocationProrata, PaymentMonth: 10, Sharing: model.SharingCommon, MySharePercent: 50, Amount: 800, IsActive: true},
		{ID: "vet", Kind: model.KindExpense, IsUnplanned: true, UnplannedMonth: 6, Amount: 300, IsActive: true},
		{ID: "bonus", Kind: model.KindIncome, Frequency: model.FrequencyYearly, PaymentMonth: 6, Amount: 2000, IsActive: true},
		{ID: "deleted", Kind: model.KindExpense, Frequency: model.FrequencyMonthly, Sharing: model.SharingIndividual, Amount: 50, IsActive: false},
	}

	c := Classify(items, 6)

	if len(c.PersonalMonthly) != 1 || c.PersonalMonthly[0].ID != "rent" {
		t.Fatalf("PersonalMonthly = %+v, want [rent]", ids(c.PersonalMonthly))
	}
	if len(c.CommonMonthlyCovered) != 1 || c.CommonMonthlyCovered[0].ID != "electricity" {
		t.Fatalf("CommonMonthlyCovered = %v, want [electricity]", ids(c.CommonMonthlyCovered))
	}
	if len(c.CommonMonthlyExtra) != 1 || c.CommonMonthlyExtra[0].ID != "cleaning" {
		t.Fatalf("CommonMonthlyExtra = %v, want [cleaning]", ids(c.CommonMonthlyExtra))
	}
	if len(c.PersonalProvisionable) != 1 || c.PersonalProvisionable[0].ID != "car-insurance" {
		t.Fatalf("PersonalProvisionable = %v, want [car-insurance]", ids(c.PersonalProvisionable))
	}
	if len(c.CommonProvisionable) != 1 || c.CommonProvisionable[0].ID != "house-tax" {
		t.Fatalf("CommonProvisionable = %v, want [house-tax]", ids(c.CommonProvisionable))
	}
	if len(c.Unplanned) != 1 || c.Unplanned[0].ID != "vet" {
		t.Fatalf("Unplanned = %v, want [vet]", ids(c.Unplanned))
	}
	if len(c.Bonuses) != 1 || c.Bonuses[0].ID != "bonus" {
		t.Fatalf("Bonuses = %v, want [bonus]", ids(c.Bonuses))
	}
}

func TestClassifyProrataDropsAfterPayment(t *testing.T) {
	items := []model.Item{
		{ID: "prorata", Kind: model.KindExpense, Frequency: model.FrequencyYearly, Allocation: model.AllocationProrata, PaymentMonth: 4, Sharing: model.SharingIndividual, Amount: 400, IsActive: true},
		{ID: "spread", Kind: model.KindExpense, Frequency: model.FrequencyYearly, Allocation: model.AllocationSpread, PaymentMonth: 4, Sharing: model.SharingIndividual, Amount: 400, IsActive: true},
	}

	c := Classify(items, 8)
	if len(c.PersonalProvisionable) != 1 || c.PersonalProvisionable[0].ID != "spread" {
		t.Fatalf("provisionables in month 8 = %v, want only the spread item", ids(c.PersonalProvisionable))
	}

	c = Classify(items, 4)
	if len(c.PersonalProvisionable) != 2 {
		t.Fatalf("provisionables in payment month = %v, want both", ids(c.PersonalProvisionable))
	}
}

func TestClassifySharedCoveredYearlyIsNotProvisionable(t *testing.T) {
	items := []model.Item{
		{ID: "covered", Kind: model.KindExpense, Frequency: model.FrequencyYearly, Allocation: model.AllocationProrata, PaymentMonth: 12, Sharing: model.SharingCommon, IncludedInSharedTransfer: true, Amount: 500, IsActive: true},
	}

	c := Classify(items, 3)
	if len(c.CommonProvisionable) != 0 || len(c.PersonalProvisionable) != 0 {
		t.Fatal("transfer-covered yearly item should not be provisionable")
	}
}

func ids(items []model.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
