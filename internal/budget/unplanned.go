package budget

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// FundingSplit is how an unplanned expense is paid for. The three pools
// must cover the amount exactly.
type FundingSplit struct {
	FromSavings       float64
	FromFree          float64
	FromSharedSavings float64
}

// Total is the sum of all funding pools.
func (s FundingSplit) Total() float64 {
	return s.FromSavings + s.FromFree + s.FromSharedSavings
}

// Rounding slack tolerated when checking that a split covers its amount.
const fundingTolerance = 0.01

// ValidateFunding checks an unplanned expense before it is recorded.
func ValidateFunding(title string, amount float64, split FundingSplit) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("title is required")
	}
	if amount <= 0 {
		return errors.New("amount must be positive")
	}
	if split.FromSavings < 0 || split.FromFree < 0 || split.FromSharedSavings < 0 {
		return errors.New("funding amounts cannot be negative")
	}
	if math.Abs(split.Total()-amount) > fundingTolerance {
		return fmt.Errorf("funding split (%.2f) does not cover the amount (%.2f)", split.Total(), amount)
	}
	return nil
}
