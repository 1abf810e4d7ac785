package budget

import (
	"math"
	"testing"

	"github.com/jmoreaux/budgetpilot/internal/model"
)

func TestCheckInTargets(t *testing.T) {
	p := model.Profile{
		HasSharedAccount:      true,
		SharedMonthlyTransfer: 600,
		SharedSavingsTransfer: 150,
	}
	plan := model.Plan{Year: 2025, StartMonth: 1, FunSavingsMonthlyTarget: 250}
	items := []model.Item{
		{ID: "vacation", Kind: model.KindExpense, Frequency: model.FrequencyYearly, Allocation: model.AllocationSpread, PaymentMonth: 8, Sharing: model.SharingIndividual, Amount: 1200, IsActive: true},
		{ID: "house-tax", Kind: model.KindExpense, Frequency: model.FrequencyYearly, Allocation: model.AllocationProrata, PaymentMonth: 10, Sharing: model.SharingCommon, MySharePercent: 50, Amount: 800, IsActive: true},
	}

	targets := CheckInTargets(p, plan, items, 8)

	if targets.FunSavings != 250 {
		t.Fatalf("FunSavings target = %.2f, want 250", targets.FunSavings)
	}
	if math.Abs(targets.PersonalProvisions-100) > 1e-9 {
		t.Fatalf("PersonalProvisions target = %.2f, want 100", targets.PersonalProvisions)
	}
	// 600 transfer + 400/2 of the shared tax.
	if math.Abs(targets.CommonTransfer-800) > 1e-9 {
		t.Fatalf("CommonTransfer target = %.2f, want 800", targets.CommonTransfer)
	}
	if targets.SharedSavings != 150 {
		t.Fatalf("SharedSavings target = %.2f, want 150", targets.SharedSavings)
	}
	if len(targets.PersonalContributions) != 1 || targets.PersonalContributions[0].ItemID != "vacation" {
		t.Fatalf("PersonalContributions = %+v, want [vacation]", targets.PersonalContributions)
	}
	if len(targets.CommonContributions) != 1 || targets.CommonContributions[0].ItemID != "house-tax" {
		t.Fatalf("CommonContributions = %+v, want [house-tax]", targets.CommonContributions)
	}
}

func TestCheckInTargetsSoloProfile(t *testing.T) {
	p := model.Profile{SharedMonthlyTransfer: 600, SharedSavingsTransfer: 100}
	plan := model.Plan{FunSavingsMonthlyTarget: 200}

	targets := CheckInTargets(p, plan, nil, 3)

	if targets.CommonTransfer != 0 || targets.SharedSavings != 0 {
		t.Fatalf("solo profile got shared targets %+v, want zero", targets)
	}
}

func TestBuildLinesFollowsConfirmedSteps(t *testing.T) {
	targets := Targets{
		PersonalContributions: []ItemContribution{{ItemID: "a", Amount: 100}},
		CommonContributions:   []ItemContribution{{ItemID: "b", Amount: 50}},
	}
	ci := model.CheckIn{PlanID: "plan", Month: 7, Year: 2025, PersonalProvisionsDone: true}

	lines := BuildLines(targets, ci)
	if len(lines) != 1 || lines[0].ItemID != "a" || lines[0].Amount != 100 {
		t.Fatalf("lines = %+v, want only the personal contribution", lines)
	}

	ci.CommonTransferDone = true
	lines = BuildLines(targets, ci)
	if len(lines) != 2 {
		t.Fatalf("lines = %+v, want both contributions", lines)
	}
	for _, l := range lines {
		if l.PlanID != "plan" || l.Month != 7 || l.Year != 2025 {
			t.Fatalf("line key = %+v, want plan/7/2025", l)
		}
	}
}
