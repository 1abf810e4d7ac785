package model

// BudgetStatus classifies how much slack a month leaves.
type BudgetStatus string

const (
	StatusTight       BudgetStatus = "tight"
	StatusBalanced    BudgetStatus = "balanced"
	StatusComfortable BudgetStatus = "comfortable"
)

// ProvisionLine is one provisionable item with its computed amounts for a
// target month.
type ProvisionLine struct {
	Item    Item
	Target  float64 // user's share of the annual amount
	Monthly float64 // set-aside owed this month
	Saved   float64 // provision stock accumulated so far
	// Progress is the schedule position in percent (0-100), i.e. how far
	// along the provisioning calendar is, independent of what was saved.
	Progress int
}

// MonthBudget is the full monthly picture produced by the aggregator.
type MonthBudget struct {
	Month int
	Year  int

	SalaryNet               float64
	PersonalMonthlyExpenses float64

	PersonalProvisions float64
	CommonProvisions   float64
	PersonalLines      []ProvisionLine
	CommonLines        []ProvisionLine

	CommonMonthlyCovered float64 // shared monthlies the transfer pays for
	CommonMonthlyExtra   float64 // shared monthlies outside the transfer
	MyTransfer           float64
	PartnerTransfer      float64
	CommonBalance        float64

	FunSavings  float64
	TotalToSave float64

	BonusIncome    float64
	BonusToSavings float64

	UnplannedFromFree    float64
	UnplannedFromSavings float64
	UnplannedFromShared  float64

	FreeMoney float64
	Status    BudgetStatus

	YearEndSavings       float64
	YearEndSharedSavings float64
}
