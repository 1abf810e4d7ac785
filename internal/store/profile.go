package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmoreaux/budgetpilot/internal/model"
)

// GetProfile loads the profile for a user id. Returns ErrNotFound before
// onboarding has run.
func (s *Store) GetProfile(userID string) (model.Profile, error) {
	var p model.Profile
	err := s.db.QueryRow(`
		SELECT id, user_id, first_name, existing_savings, existing_provisions,
		       has_shared_account, shared_monthly_transfer, partner_monthly_transfer,
		       shared_savings_transfer, partner_shared_savings_transfer, existing_shared_savings
		FROM profiles WHERE user_id = ?`, userID).Scan(
		&p.ID, &p.UserID, &p.FirstName, &p.ExistingSavings, &p.ExistingProvisions,
		&p.HasSharedAccount, &p.SharedMonthlyTransfer, &p.PartnerMonthlyTransfer,
		&p.SharedSavingsTransfer, &p.PartnerSharedSavingsTransfer, &p.ExistingSharedSavings,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{}, ErrNotFound
	}
	if err != nil {
		return model.Profile{}, fmt.Errorf("load profile: %w", err)
	}
	return p, nil
}

// UpsertProfile inserts or updates the profile keyed by user id and
// returns it with its id filled in.
func (s *Store) UpsertProfile(p model.Profile) (model.Profile, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	_, err := s.db.Exec(`
		INSERT INTO profiles (
			id, user_id, first_name, existing_savings, existing_provisions,
			has_shared_account, shared_monthly_transfer, partner_monthly_transfer,
			shared_savings_transfer, partner_shared_savings_transfer, existing_shared_savings
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			first_name = excluded.first_name,
			existing_savings = excluded.existing_savings,
			existing_provisions = excluded.existing_provisions,
			has_shared_account = excluded.has_shared_account,
			shared_monthly_transfer = excluded.shared_monthly_transfer,
			partner_monthly_transfer = excluded.partner_monthly_transfer,
			shared_savings_transfer = excluded.shared_savings_transfer,
			partner_shared_savings_transfer = excluded.partner_shared_savings_transfer,
			existing_shared_savings = excluded.existing_shared_savings`,
		p.ID, p.UserID, p.FirstName, p.ExistingSavings, p.ExistingProvisions,
		p.HasSharedAccount, p.SharedMonthlyTransfer, p.PartnerMonthlyTransfer,
		p.SharedSavingsTransfer, p.PartnerSharedSavingsTransfer, p.ExistingSharedSavings,
	)
	if err != nil {
		return model.Profile{}, fmt.Errorf("save profile: %w", err)
	}

	return s.GetProfile(p.UserID)
}
