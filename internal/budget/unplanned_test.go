package budget

import (
	"strings"
	"testing"
)

func TestValidateFunding(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		amount  float64
		split   FundingSplit
		wantErr string
	}{
		{"exact split", "car repair", 500, FundingSplit{FromSavings: 200, FromFree: 300}, ""},
		{"near-exact split", "car repair", 500, FundingSplit{FromSavings: 200.004, FromFree: 300}, ""},
		{"three pools", "roof leak", 900, FundingSplit{FromSavings: 300, FromFree: 300, FromSharedSavings: 300}, ""},
		{"short split", "car repair", 500, FundingSplit{FromSavings: 200, FromFree: 200}, "does not cover"},
		{"over split", "car repair", 500, FundingSplit{FromSavings: 400, FromFree: 300}, "does not cover"},
		{"missing title", "   ", 500, FundingSplit{FromFree: 500}, "title is required"},
		{"zero amount", "car repair", 0, FundingSplit{}, "must be positive"},
		{"negative pool", "car repair", 100, FundingSplit{FromSavings: 200, FromFree: -100}, "cannot be negative"},
	}

	for _, tt := range tests {
		err := ValidateFunding(tt.title, tt.amount, tt.split)
		if tt.wantErr == "" {
			if err != nil {
				t.Fatalf("%s: unexpected error %v", tt.name, err)
			}
			continue
		}
		if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
			t.Fatalf("%s: error = %v, want %q", tt.name, err, tt.wantErr)
		}
	}
}
