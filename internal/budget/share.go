package budget

import "github.com/jmoreaux/budgetpilot/internal/model"

// MyShare is the user's portion of an amount. Individual items are carried
// in full; common items split by percentage.
func MyShare(amount float64, sharing model.Sharing, myPercent float64) float64 {
	if sharing != model.SharingCommon {
		return amount
	}
	return amount * myPercent / 100
}

// PartnerShare is the partner's implied portion of a common amount. Purely
// informational: the partner's own account is never managed here.
func PartnerShare(amount, myPercent float64) float64 {
	return amount * (100 - myPercent) / 100
}
