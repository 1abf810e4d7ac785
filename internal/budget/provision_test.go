package budget

import (
	"math"
	"testing"

	"github.com/jmoreaux/budgetpilot/internal/model"
)

func yearlyItem(amount float64, paymentMonth int, alloc model.Allocation) model.Item {
	return model.Item{
		Title:        "insurance",
		Kind:         model.KindExpense,
		Frequency:    model.FrequencyYearly,
		Amount:       amount,
		PaymentMonth: paymentMonth,
		Allocation:   alloc,
		Sharing:      model.SharingIndividual,
		IsActive:     true,
	}
}

func TestComputeProvisionProrata(t *testing.T) {
	it := yearlyItem(1200, 12, model.AllocationProrata)

	tests := []struct {
		month int
		want  float64
	}{
		{1, 1200.0 / 11},
		{10, 600}, // two months left
		{11, 1200},
		{12, 1200}, // due month pays in full
	}
	for _, tt := range tests {
		got := ComputeProvision(it, tt.month)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("ComputeProvision(month=%d) = %.4f, want %.4f", tt.month, got, tt.want)
		}
	}
}

func TestComputeProvisionProrataStopsAfterPayment(t *testing.T) {
	it := yearlyItem(900, 6, model.AllocationProrata)
	for m := 7; m <= 12; m++ {
		if got := ComputeProvision(it, m); got != 0 {
			t.Fatalf("ComputeProvision(month=%d) = %.2f, want 0 past payment month", m, got)
		}
	}
}

func TestComputeProvisionSpreadIsFlat(t *testing.T) {
	it := yearlyItem(1200, 12, model.AllocationSpread)
	for m := 1; m <= 12; m++ {
		if got := ComputeProvision(it, m); math.Abs(got-100) > 1e-9 {
			t.Fatalf("ComputeProvision(month=%d) = %.4f, want 100", m, got)
		}
	}

	// Payment month ordering never matters for spread.
	it.PaymentMonth = 3
	if got := ComputeProvision(it, 9); math.Abs(got-100) > 1e-9 {
		t.Fatalf("spread provision past payment month = %.4f, want 100", got)
	}
}

func TestComputeProvisionIncompleteItems(t *testing.T) {
	monthly := model.Item{Kind: model.KindExpense, Frequency: model.FrequencyMonthly, Amount: 50, IsActive: true}
	if got := ComputeProvision(monthly, 5); got != 0 {
		t.Fatalf("monthly item provision = %.2f, want 0", got)
	}

	noMonth := yearlyItem(600, 0, model.AllocationProrata)
	if got := ComputeProvision(noMonth, 5); got != 0 {
		t.Fatalf("yearly item without payment month provision = %.2f, want 0", got)
	}
}

func TestComputeProvisionSharedItem(t *testing.T) {
	it := yearlyItem(1000, 12, model.AllocationProrata)
	it.Sharing = model.SharingCommon
	it.MySharePercent = 30

	if got := ComputeProvision(it, 12); math.Abs(got-300) > 1e-9 {
		t.Fatalf("shared provision = %.4f, want 300 (30%% of 1000)", got)
	}
}

// The prorata denominator relationship must hold exactly: before the due
// month, provision × monthsLeft reconstructs the full share without drift.
func TestComputeProvisionProrataNoDrift(t *testing.T) {
	it := yearlyItem(777.77, 11, model.AllocationProrata)
	for m := 1; m < 11; m++ {
		monthsLeft := float64(11 - m)
		got := ComputeProvision(it, m) * monthsLeft
		if math.Abs(got-777.77) > 1e-9 {
			t.Fatalf("month %d: provision×monthsLeft = %.10f, want 777.77", m, got)
		}
	}
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name    string
		alloc   model.Allocation
		payment int
		target  int
		start   int
		want    int
	}{
		{"spread midyear", model.AllocationSpread, 12, 7, 1, 50},
		{"prorata halfway", model.AllocationProrata, 11, 6, 1, 50},
		{"prorata complete", model.AllocationProrata, 6, 6, 1, 100},
		{"before start clamps to zero", model.AllocationProrata, 12, 2, 5, 0},
		{"payment before start guards total", model.AllocationProrata, 3, 6, 5, 100},
		{"capped at hundred", model.AllocationSpread, 12, 12, 0, 100},
	}
	for _, tt := range tests {
		it := yearlyItem(1200, tt.payment, tt.alloc)
		got := ComputeProgress(it, tt.target, tt.start)
		if got != tt.want {
			t.Fatalf("%s: ComputeProgress = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestProvisionSchedule(t *testing.T) {
	bonus := yearlyItem(2000, 6, model.AllocationProrata)
	bonus.Kind = model.KindIncome

	items := []model.Item{
		yearlyItem(1200, 12, model.AllocationSpread),
		yearlyItem(600, 6, model.AllocationProrata),
		bonus, // incomes are never provisioned
	}
	sched := ProvisionSchedule(items)

	if math.Abs(sched[0]-(100+120)) > 1e-9 {
		t.Fatalf("January schedule = %.4f, want 220 (100 spread + 600/5 prorata)", sched[0])
	}
	if math.Abs(sched[6]-100) > 1e-9 {
		t.Fatalf("July schedule = %.4f, want 100 (prorata item done)", sched[6])
	}
}
