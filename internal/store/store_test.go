package store

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/jmoreaux/budgetpilot/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "budget.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seedPlan(t *testing.T, s *Store) (model.Profile, model.Plan) {
	t.Helper()
	p, err := s.UpsertProfile(model.Profile{
		UserID:           "user-1",
		FirstName:        "Ada",
		ExistingSavings:  1000,
		HasSharedAccount: true,
	})
	if err != nil {
		t.Fatalf("upsert profile: %v", err)
	}
	pl, err := s.UpsertPlan(model.Plan{
		ProfileID:               p.ID,
		Year:                    2025,
		StartMonth:              1,
		MonthlySalaryNet:        3000,
		FunSavingsMonthlyTarget: 200,
		IsActive:                true,
	})
	if err != nil {
		t.Fatalf("upsert plan: %v", err)
	}
	return p, pl
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.GetProfile("nobody"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing profile error = %v, want ErrNotFound", err)
	}

	p, _ := seedPlan(t, s)
	got, err := s.GetProfile("user-1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if got.ID != p.ID || got.FirstName != "Ada" || got.ExistingSavings != 1000 {
		t.Fatalf("profile = %+v", got)
	}

	// Second upsert keeps the id and updates fields.
	p.ExistingSavings = 1500
	updated, err := s.UpsertProfile(p)
	if err != nil {
		t.Fatalf("re-upsert profile: %v", err)
	}
	if updated.ID != p.ID || updated.ExistingSavings != 1500 {
		t.Fatalf("updated profile = %+v", updated)
	}
}

func TestPlanUpsertKeyedByYear(t *testing.T) {
	s := openTestStore(t)
	p, pl := seedPlan(t, s)

	pl.MonthlySalaryNet = 3200
	again, err := s.UpsertPlan(pl)
	if err != nil {
		t.Fatalf("re-upsert plan: %v", err)
	}
	if again.ID != pl.ID || again.MonthlySalaryNet != 3200 {
		t.Fatalf("plan = %+v, want same id with new salary", again)
	}

	next, err := s.UpsertPlan(model.Plan{ProfileID: p.ID, Year: 2026, StartMonth: 1, IsActive: true})
	if err != nil {
		t.Fatalf("upsert 2026 plan: %v", err)
	}

	active, err := s.GetActivePlan(p.ID)
	if err != nil {
		t.Fatalf("get active plan: %v", err)
	}
	if active.ID != next.ID {
		t.Fatalf("active plan year = %d, want 2026", active.Year)
	}
}

func TestItemSoftDelete(t *testing.T) {
	s := openTestStore(t)
	_, pl := seedPlan(t, s)

	it, err := s.CreateItem(model.Item{
		PlanID: pl.ID, Title: "rent", Kind: model.KindExpense,
		Frequency: model.FrequencyMonthly, Sharing: model.SharingIndividual,
		Amount: 900, IsActive: true,
	})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	if err := s.DeleteItem(it.ID); err != nil {
		t.Fatalf("delete item: %v", err)
	}

	items, err := s.ListItems(pl.ID)
	if err != nil {
		t.Fatalf("list items: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("items after delete = %d, want 0 (soft-deleted)", len(items))
	}

	if err := s.DeleteItem("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete missing item error = %v, want ErrNotFound", err)
	}
}

func TestApplyCheckInIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	_, pl := seedPlan(t, s)

	it, err := s.CreateItem(model.Item{
		PlanID: pl.ID, Title: "insurance", Kind: model.KindExpense,
		Frequency: model.FrequencyYearly, Allocation: model.AllocationSpread,
		PaymentMonth: 12, Sharing: model.SharingIndividual, Amount: 1200, IsActive: true,
	})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	ci := model.CheckIn{
		PlanID: pl.ID, Month: 3, Year: 2025,
		FunSavingsDone: true, FunSavingsAmount: 200,
		PersonalProvisionsDone: true, PersonalProvisionsAmount: 100,
		SharedSavingsDone: true, SharedSavingsAmount: 150,
	}
	lines := []model.CheckInLine{{PlanID: pl.ID, Month: 3, Year: 2025, ItemID: it.ID, Amount: 100}}

	for i := 0; i < 2; i++ {
		if err := s.ApplyCheckIn(ci, lines); err != nil {
			t.Fatalf("apply check-in (round %d): %v", i+1, err)
		}
	}

	p, err := s.GetProfile("user-1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p.ExistingSavings != 1200 {
		t.Fatalf("ExistingSavings = %.2f, want 1200 (applied once)", p.ExistingSavings)
	}
	if p.ExistingProvisions != 100 {
		t.Fatalf("ExistingProvisions = %.2f, want 100", p.ExistingProvisions)
	}
	if p.ExistingSharedSavings != 150 {
		t.Fatalf("ExistingSharedSavings = %.2f, want 150", p.ExistingSharedSavings)
	}

	stocks, err := s.GetStocks(pl.ID)
	if err != nil {
		t.Fatalf("get stocks: %v", err)
	}
	if len(stocks) != 1 || stocks[0].AmountSaved != 100 {
		t.Fatalf("stocks = %+v, want one stock of 100", stocks)
	}
}

func TestApplyCheckInRevision(t *testing.T) {
	s := openTestStore(t)
	_, pl := seedPlan(t, s)

	ci := model.CheckIn{
		PlanID: pl.ID, Month: 5, Year: 2025,
		FunSavingsDone: true, FunSavingsAmount: 200,
	}
	if err := s.ApplyCheckIn(ci, nil); err != nil {
		t.Fatalf("apply check-in: %v", err)
	}

	// The user corrects the month downward: only the delta applies.
	ci.FunSavingsAmount = 120
	if err := s.ApplyCheckIn(ci, nil); err != nil {
		t.Fatalf("revise check-in: %v", err)
	}

	p, _ := s.GetProfile("user-1")
	if p.ExistingSavings != 1120 {
		t.Fatalf("ExistingSavings = %.2f, want 1120 after downward revision", p.ExistingSavings)
	}

	got, err := s.GetCheckIn(pl.ID, 5, 2025)
	if err != nil {
		t.Fatalf("get check-in: %v", err)
	}
	if got.FunSavingsAmount != 120 {
		t.Fatalf("stored amount = %.2f, want 120", got.FunSavingsAmount)
	}
}

func TestApplyUnplannedDrawsPools(t *testing.T) {
	s := openTestStore(t)
	_, pl := seedPlan(t, s)

	_, err := s.ApplyUnplanned(model.Item{
		PlanID: pl.ID, Title: "car repair", Amount: 500, UnplannedMonth: 4,
		FundedFromSavings: 200, FundedFromFree: 300,
	})
	if err != nil {
		t.Fatalf("apply unplanned: %v", err)
	}

	p, _ := s.GetProfile("user-1")
	if p.ExistingSavings != 800 {
		t.Fatalf("ExistingSavings = %.2f, want 800 (1000 - 200)", p.ExistingSavings)
	}

	items, _ := s.ListItems(pl.ID)
	if len(items) != 1 || !items[0].IsUnplanned {
		t.Fatalf("items = %+v, want the recorded unplanned expense", items)
	}
}

func TestApplyUnplannedClampsAtZero(t *testing.T) {
	s := openTestStore(t)
	_, pl := seedPlan(t, s)

	_, err := s.ApplyUnplanned(model.Item{
		PlanID: pl.ID, Title: "roof leak", Amount: 5000, UnplannedMonth: 2,
		FundedFromSavings: 5000,
	})
	if err != nil {
		t.Fatalf("apply unplanned: %v", err)
	}

	p, _ := s.GetProfile("user-1")
	if p.ExistingSavings != 0 {
		t.Fatalf("ExistingSavings = %.2f, want clamped to 0", p.ExistingSavings)
	}
}

func TestSpendProvision(t *testing.T) {
	s := openTestStore(t)
	p, pl := seedPlan(t, s)

	p.ExistingProvisions = 400
	if _, err := s.UpsertProfile(p); err != nil {
		t.Fatalf("set provisions pool: %v", err)
	}

	it, err := s.CreateItem(model.Item{
		PlanID: pl.ID, Title: "taxes", Kind: model.KindExpense,
		Frequency: model.FrequencyYearly, Allocation: model.AllocationProrata,
		PaymentMonth: 10, Sharing: model.SharingIndividual, Amount: 800, IsActive: true,
	})
	if err != nil {
		t.Fatalf("create item: %v", err)
	}

	ci := model.CheckIn{PlanID: pl.ID, Month: 1, Year: 2025, PersonalProvisionsDone: true, PersonalProvisionsAmount: 300}
	lines := []model.CheckInLine{{PlanID: pl.ID, Month: 1, Year: 2025, ItemID: it.ID, Amount: 300}}
	if err := s.ApplyCheckIn(ci, lines); err != nil {
		t.Fatalf("apply check-in: %v", err)
	}

	if err := s.SpendProvision(pl.ID, it.ID, 250, false); err != nil {
		t.Fatalf("spend provision: %v", err)
	}

	stocks, _ := s.GetStocks(pl.ID)
	if len(stocks) != 1 || math.Abs(stocks[0].AmountSaved-50) > 1e-9 {
		t.Fatalf("stocks = %+v, want 50 left", stocks)
	}

	got, _ := s.GetProfile("user-1")
	if math.Abs(got.ExistingProvisions-(400+300-250)) > 1e-9 {
		t.Fatalf("ExistingProvisions = %.2f, want 450", got.ExistingProvisions)
	}

	if err := s.SpendProvision(pl.ID, "missing", 10, false); !errors.Is(err, ErrNotFound) {
		t.Fatalf("spend on missing stock error = %v, want ErrNotFound", err)
	}
}
