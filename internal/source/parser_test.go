package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmoreaux/budgetpilot/internal/model"
)

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write import file: %v", err)
	}
	return path
}

func TestParseItemsFile(t *testing.T) {
	path := writeImportFile(t, `{
		"items": [
			{"title": "Rent", "amount": 900},
			{"title": "Car insurance", "amount": 600, "frequency": "yearly", "payment_month": 1, "allocation": "spread"},
			{"title": "Electricity", "amount": 120, "sharing": "common", "my_share_percent": 50, "included_in_shared_transfer": true},
			{"title": "Year-end bonus", "amount": 2000, "kind": "income", "frequency": "yearly", "payment_month": 12, "goes_to_savings": true}
		]
	}`)

	items, err := ParseItemsFile(path, "plan-1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("parsed %d items, want 4", len(items))
	}

	rent := items[0]
	if rent.PlanID != "plan-1" || rent.Frequency != model.FrequencyMonthly || rent.Kind != model.KindExpense {
		t.Fatalf("rent defaults = %+v", rent)
	}
	if items[1].Allocation != model.AllocationSpread || items[1].PaymentMonth != 1 {
		t.Fatalf("car insurance = %+v", items[1])
	}
	if !items[2].IncludedInSharedTransfer || items[2].Sharing != model.SharingCommon {
		t.Fatalf("electricity = %+v", items[2])
	}
	if items[3].Kind != model.KindIncome || !items[3].GoesToSavings {
		t.Fatalf("bonus = %+v", items[3])
	}
}

func TestParseItemsFileBareArray(t *testing.T) {
	path := writeImportFile(t, `[{"title": "Rent", "amount": 900}]`)

	items, err := ParseItemsFile(path, "plan-1")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("parsed %d items, want 1", len(items))
	}
}

func TestParseItemsFileValidation(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr string
	}{
		{"missing title", `[{"amount": 10}]`, "title is required"},
		{"zero amount", `[{"title": "x", "amount": 0}]`, "amount must be positive"},
		{"bad kind", `[{"title": "x", "amount": 10, "kind": "loan"}]`, "unknown kind"},
		{"yearly without month", `[{"title": "x", "amount": 10, "frequency": "yearly"}]`, "payment_month"},
		{"common without share", `[{"title": "x", "amount": 10, "sharing": "common"}]`, "my_share_percent"},
		{"empty file", `[]`, "no items"},
	}
	for _, tt := range tests {
		path := writeImportFile(t, tt.json)
		_, err := ParseItemsFile(path, "plan-1")
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Fatalf("%s: error = %v, want %q", tt.name, err, tt.wantErr)
		}
	}
}
