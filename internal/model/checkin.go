package model

// CheckIn records the user's answers for one month: which savings steps
// were actually done and for how much. Keyed by (plan, month, year).
type CheckIn struct {
	ID     string
	PlanID string
	Month  int
	Year   int

	FunSavingsDone   bool
	FunSavingsAmount float64

	PersonalProvisionsDone   bool
	PersonalProvisionsAmount float64

	CommonTransferDone   bool
	CommonTransferAmount float64

	SharedSavingsDone   bool
	SharedSavingsAmount float64
}

// CheckInLine is the per-item share of a check-in's provision amount.
// Stored so a re-submitted check-in can be reconciled as a delta instead
// of double-counting.
type CheckInLine struct {
	PlanID string
	Month  int
	Year   int
	ItemID string
	Amount float64
}

// ProvisionStock is the amount actually saved so far toward one item.
type ProvisionStock struct {
	ID          string
	PlanID      string
	ItemID      string
	AmountSaved float64
}
