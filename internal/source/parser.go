// Package source parses item declaration files for bulk import.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jmoreaux/budgetpilot/internal/model"
)

// itemDecl is one entry of an import file. Only title and amount are
// required; everything else has a sensible default.
type itemDecl struct {
	Title                    string  `json:"title"`
	Category                 string  `json:"category"`
	Kind                     string  `json:"kind"`
	Frequency                string  `json:"frequency"`
	Amount                   float64 `json:"amount"`
	PaymentMonth             int     `json:"payment_month"`
	Allocation               string  `json:"allocation"`
	Sharing                  string  `json:"sharing"`
	MySharePercent           float64 `json:"my_share_percent"`
	IncludedInSharedTransfer bool    `json:"included_in_shared_transfer"`
	GoesToSavings            bool    `json:"goes_to_savings"`
}

type itemFile struct {
	Items []itemDecl `json:"items"`
}

// ParseItemsFile reads a JSON import file and returns validated items for
// the given plan. The file holds either {"items": [...]} or a bare array.
func ParseItemsFile(path, planID string) ([]model.Item, error) {
	data, err := os.ReadFile(path) //nolint:gosec // import path is given by the user
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	var decls []itemDecl
	if err := json.Unmarshal(data, &decls); err != nil {
		var f itemFile
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("parse import file: %w", err)
		}
		decls = f.Items
	}
	if len(decls) == 0 {
		return nil, fmt.Errorf("import file contains no items")
	}

	items := make([]model.Item, 0, len(decls))
	for i, d := range decls {
		it, err := d.toItem(planID)
		if err != nil {
			return nil, fmt.Errorf("item %d (%q): %w", i+1, d.Title, err)
		}
		items = append(items, it)
	}
	return items, nil
}

func (d itemDecl) toItem(planID string) (model.Item, error) {
	if strings.TrimSpace(d.Title) == "" {
		return model.Item{}, fmt.Errorf("title is required")
	}
	if d.Amount <= 0 {
		return model.Item{}, fmt.Errorf("amount must be positive")
	}

	it := model.Item{
		PlanID:                   planID,
		Title:                    strings.TrimSpace(d.Title),
		Category:                 d.Category,
		Amount:                   d.Amount,
		PaymentMonth:             d.PaymentMonth,
		MySharePercent:           d.MySharePercent,
		IncludedInSharedTransfer: d.IncludedInSharedTransfer,
		GoesToSavings:            d.GoesToSavings,
		IsActive:                 true,
	}

	switch d.Kind {
	case "", "expense":
		it.Kind = model.KindExpense
	case "income":
		it.Kind = model.KindIncome
	default:
		return model.Item{}, fmt.Errorf("unknown kind %q", d.Kind)
	}

	switch d.Frequency {
	case "", "monthly":
		it.Frequency = model.FrequencyMonthly
	case "yearly":
		it.Frequency = model.FrequencyYearly
	default:
		return model.Item{}, fmt.Errorf("unknown frequency %q", d.Frequency)
	}

	switch d.Allocation {
	case "", "prorata":
		it.Allocation = model.AllocationProrata
	case "spread":
		it.Allocation = model.AllocationSpread
	default:
		return model.Item{}, fmt.Errorf("unknown allocation %q", d.Allocation)
	}

	switch d.Sharing {
	case "", "individual":
		it.Sharing = model.SharingIndividual
	case "common":
		it.Sharing = model.SharingCommon
		if it.MySharePercent <= 0 || it.MySharePercent > 100 {
			return model.Item{}, fmt.Errorf("my_share_percent must be in (0,100] for common items")
		}
	default:
		return model.Item{}, fmt.Errorf("unknown sharing %q", d.Sharing)
	}

	if it.Frequency == model.FrequencyYearly && (it.PaymentMonth < 1 || it.PaymentMonth > 12) {
		return model.Item{}, fmt.Errorf("yearly items need a payment_month between 1 and 12")
	}

	return it, nil
}
