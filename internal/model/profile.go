// Package model defines the core data types for budget planning.
package model

// Profile is the per-user financial profile: savings pools and the
// shared-account arrangement with a partner.
type Profile struct {
	ID        string
	UserID    string
	FirstName string

	ExistingSavings    float64
	ExistingProvisions float64

	HasSharedAccount             bool
	SharedMonthlyTransfer        float64
	PartnerMonthlyTransfer       float64
	SharedSavingsTransfer        float64
	PartnerSharedSavingsTransfer float64
	ExistingSharedSavings        float64
}

// Plan is a yearly budget plan. One active plan per profile and year.
type Plan struct {
	ID        string
	ProfileID string
	Year      int
	// StartMonth is the month (1-12) the plan starts accruing provisions.
	StartMonth              int
	MonthlySalaryNet        float64
	FunSavingsMonthlyTarget float64
	IsActive                bool
}
