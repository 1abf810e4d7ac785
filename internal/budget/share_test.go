package budget

import (
	"math"
	"testing"

	"github.com/jmoreaux/budgetpilot/internal/model"
)

func TestSharesComplement(t *testing.T) {
	for p := 0.0; p <= 100; p++ {
		mine := MyShare(1000, model.SharingCommon, p)
		partner := PartnerShare(1000, p)
		if math.Abs(mine+partner-1000) > 1e-9 {
			t.Fatalf("shares at %.0f%% sum to %.6f, want 1000", p, mine+partner)
		}
	}
}

func TestMyShareIndividual(t *testing.T) {
	if got := MyShare(850, model.SharingIndividual, 30); got != 850 {
		t.Fatalf("individual share = %.2f, want full amount", got)
	}
}
