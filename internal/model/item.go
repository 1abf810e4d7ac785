package model

// Kind distinguishes money going out from money coming in.
type Kind string

const (
	KindExpense Kind = "expense"
	KindIncome  Kind = "income"
)

// Frequency is how often an item occurs.
type Frequency string

const (
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Allocation is how a yearly amount is provisioned across months.
// Spread sets aside 1/12 every month of the year; prorata divides the
// remainder over the months left until the payment month.
type Allocation string

const (
	AllocationSpread  Allocation = "spread"
	AllocationProrata Allocation = "prorata"
)

// Sharing is whether an item is personal or belongs to the shared account.
type Sharing string

const (
	SharingIndividual Sharing = "individual"
	SharingCommon     Sharing = "common"
)

// Item is a single budget line: a recurring expense, a one-off annual
// expense, an unplanned expense, or an income such as a bonus.
type Item struct {
	ID       string
	PlanID   string
	Title    string
	Category string

	Kind      Kind
	Frequency Frequency
	Amount    float64
	// PaymentMonth is the month (1-12) a yearly item falls due. Zero when
	// not set; yearly items without it are incomplete and provision nothing.
	PaymentMonth int
	Allocation   Allocation

	Sharing                  Sharing
	MySharePercent           float64
	IncludedInSharedTransfer bool

	IsUnplanned             bool
	UnplannedMonth          int
	FundedFromSavings       float64
	FundedFromFree          float64
	FundedFromSharedSavings float64

	// GoesToSavings routes an income item (bonus) into savings instead of
	// free money.
	GoesToSavings bool

	IsActive bool
}

// IsCommon reports whether the item is shared with a partner.
func (it Item) IsCommon() bool { return it.Sharing == SharingCommon }

// ShareFraction is the fraction of the amount carried by this user.
// Individual items are carried in full.
func (it Item) ShareFraction() float64 {
	if !it.IsCommon() {
		return 1
	}
	return it.MySharePercent / 100
}

// MyAmount is the user's share of the item amount.
func (it Item) MyAmount() float64 { return it.Amount * it.ShareFraction() }
