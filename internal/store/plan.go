package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmoreaux/budgetpilot/internal/model"
)

const planColumns = `id, profile_id, year, start_month, monthly_salary_net, fun_savings_monthly_target, is_active`

func scanPlan(row *sql.Row) (model.Plan, error) {
	var pl model.Plan
	err := row.Scan(&pl.ID, &pl.ProfileID, &pl.Year, &pl.StartMonth,
		&pl.MonthlySalaryNet, &pl.FunSavingsMonthlyTarget, &pl.IsActive)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Plan{}, ErrNotFound
	}
	if err != nil {
		return model.Plan{}, fmt.Errorf("load plan: %w", err)
	}
	return pl, nil
}

// GetActivePlan loads the profile's active plan, preferring the most
// recent year.
func (s *Store) GetActivePlan(profileID string) (model.Plan, error) {
	row := s.db.QueryRow(`
		SELECT `+planColumns+` FROM plans
		WHERE profile_id = ? AND is_active = 1
		ORDER BY year DESC LIMIT 1`, profileID)
	return scanPlan(row)
}

// GetPlan loads the plan for a specific year.
func (s *Store) GetPlan(profileID string, year int) (model.Plan, error) {
	row := s.db.QueryRow(`
		SELECT `+planColumns+` FROM plans
		WHERE profile_id = ? AND year = ?`, profileID, year)
	return scanPlan(row)
}

// UpsertPlan inserts or updates the plan keyed by (profile, year) and
// returns it with its id filled in. An active plan deactivates the
// profile's other plans.
func (s *Store) UpsertPlan(pl model.Plan) (model.Plan, error) {
	if pl.ID == "" {
		pl.ID = uuid.NewString()
	}

	tx, rollback, err := s.begin()
	if err != nil {
		return model.Plan{}, err
	}
	defer rollback()

	_, err = tx.Exec(`
		INSERT INTO plans (`+planColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(profile_id, year) DO UPDATE SET
			start_month = excluded.start_month,
			monthly_salary_net = excluded.monthly_salary_net,
			fun_savings_monthly_target = excluded.fun_savings_monthly_target,
			is_active = excluded.is_active`,
		pl.ID, pl.ProfileID, pl.Year, pl.StartMonth,
		pl.MonthlySalaryNet, pl.FunSavingsMonthlyTarget, pl.IsActive,
	)
	if err != nil {
		return model.Plan{}, fmt.Errorf("save plan: %w", err)
	}

	if pl.IsActive {
		_, err = tx.Exec(`UPDATE plans SET is_active = 0 WHERE profile_id = ? AND year != ?`,
			pl.ProfileID, pl.Year)
		if err != nil {
			return model.Plan{}, fmt.Errorf("deactivate other plans: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return model.Plan{}, fmt.Errorf("commit plan: %w", err)
	}

	return s.GetPlan(pl.ProfileID, pl.Year)
}
