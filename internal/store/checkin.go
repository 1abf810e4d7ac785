package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmoreaux/budgetpilot/internal/model"
)

const checkInColumns = `id, plan_id, month, year,
	fun_savings_done, fun_savings_amount,
	personal_provisions_done, personal_provisions_amount,
	common_transfer_done, common_transfer_amount,
	shared_savings_done, shared_savings_amount`

func scanCheckIn(scan func(...any) error) (model.CheckIn, error) {
	var ci model.CheckIn
	err := scan(
		&ci.ID, &ci.PlanID, &ci.Month, &ci.Year,
		&ci.FunSavingsDone, &ci.FunSavingsAmount,
		&ci.PersonalProvisionsDone, &ci.PersonalProvisionsAmount,
		&ci.CommonTransferDone, &ci.CommonTransferAmount,
		&ci.SharedSavingsDone, &ci.SharedSavingsAmount,
	)
	return ci, err
}

// GetCheckIn loads the check-in for (plan, month, year).
func (s *Store) GetCheckIn(planID string, month, year int) (model.CheckIn, error) {
	row := s.db.QueryRow(`
		SELECT `+checkInColumns+` FROM check_ins
		WHERE plan_id = ? AND month = ? AND year = ?`, planID, month, year)
	ci, err := scanCheckIn(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.CheckIn{}, ErrNotFound
	}
	if err != nil {
		return model.CheckIn{}, fmt.Errorf("load check-in: %w", err)
	}
	return ci, nil
}

// ListCheckIns loads all check-ins of a plan year, oldest first.
func (s *Store) ListCheckIns(planID string, year int) ([]model.CheckIn, error) {
	rows, err := s.db.Query(`
		SELECT `+checkInColumns+` FROM check_ins
		WHERE plan_id = ? AND year = ? ORDER BY month`, planID, year)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var cis []model.CheckIn
	for rows.Next() {
		ci, err := scanCheckIn(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan check-in: %w", err)
		}
		cis = append(cis, ci)
	}
	return cis, rows.Err()
}

// doneAmount is the effective amount of a check-in step: zero unless the
// step was confirmed done.
func doneAmount(done bool, amount float64) float64 {
	if !done {
		return 0
	}
	return amount
}

// ApplyCheckIn records a month's check-in and reconciles the savings pools
// and provision stocks, all in one transaction. A re-submitted check-in is
// applied as a delta against the previous submission, so identical input
// twice leaves every stock unchanged.
func (s *Store) ApplyCheckIn(ci model.CheckIn, lines []model.CheckInLine) error {
	tx, rollback, err := s.begin()
	if err != nil {
		return err
	}
	defer rollback()

	// Previous submission, if any, to reconcile against.
	var prev model.CheckIn
	row := tx.QueryRow(`
		SELECT `+checkInColumns+` FROM check_ins
		WHERE plan_id = ? AND month = ? AND year = ?`, ci.PlanID, ci.Month, ci.Year)
	prev, err = scanCheckIn(row.Scan)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		prev = model.CheckIn{}
	case err != nil:
		return fmt.Errorf("load previous check-in: %w", err)
	default:
		ci.ID = prev.ID
	}
	if ci.ID == "" {
		ci.ID = uuid.NewString()
	}

	_, err = tx.Exec(`
		INSERT INTO check_ins (`+checkInColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(plan_id, month, year) DO UPDATE SET
			fun_savings_done = excluded.fun_savings_done,
			fun_savings_amount = excluded.fun_savings_amount,
			personal_provisions_done = excluded.personal_provisions_done,
			personal_provisions_amount = excluded.personal_provisions_amount,
			common_transfer_done = excluded.common_transfer_done,
			common_transfer_amount = excluded.common_transfer_amount,
			shared_savings_done = excluded.shared_savings_done,
			shared_savings_amount = excluded.shared_savings_amount`,
		ci.ID, ci.PlanID, ci.Month, ci.Year,
		ci.FunSavingsDone, ci.FunSavingsAmount,
		ci.PersonalProvisionsDone, ci.PersonalProvisionsAmount,
		ci.CommonTransferDone, ci.CommonTransferAmount,
		ci.SharedSavingsDone, ci.SharedSavingsAmount,
	)
	if err != nil {
		return fmt.Errorf("save check-in: %w", err)
	}

	savingsDelta := doneAmount(ci.FunSavingsDone, ci.FunSavingsAmount) -
		doneAmount(prev.FunSavingsDone, prev.FunSavingsAmount)
	provisionsDelta := doneAmount(ci.PersonalProvisionsDone, ci.PersonalProvisionsAmount) -
		doneAmount(prev.PersonalProvisionsDone, prev.PersonalProvisionsAmount)
	sharedDelta := doneAmount(ci.SharedSavingsDone, ci.SharedSavingsAmount) -
		doneAmount(prev.SharedSavingsDone, prev.SharedSavingsAmount)

	_, err = tx.Exec(`
		UPDATE profiles SET
			existing_savings = max(0, existing_savings + ?),
			existing_provisions = max(0, existing_provisions + ?),
			existing_shared_savings = max(0, existing_shared_savings + ?)
		WHERE id = (SELECT profile_id FROM plans WHERE id = ?)`,
		savingsDelta, provisionsDelta, sharedDelta, ci.PlanID)
	if err != nil {
		return fmt.Errorf("update savings pools: %w", err)
	}

	if err := reconcileLines(tx, ci, lines); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit check-in: %w", err)
	}
	return nil
}

// reconcileLines diffs the new per-item contributions against the stored
// ones and applies the deltas to the provision stocks.
func reconcileLines(tx *sql.Tx, ci model.CheckIn, lines []model.CheckInLine) error {
	rows, err := tx.Query(`
		SELECT item_id, amount FROM check_in_lines
		WHERE plan_id = ? AND month = ? AND year = ?`, ci.PlanID, ci.Month, ci.Year)
	if err != nil {
		return fmt.Errorf("load check-in lines: %w", err)
	}
	prev := make(map[string]float64)
	for rows.Next() {
		var itemID string
		var amount float64
		if err := rows.Scan(&itemID, &amount); err != nil {
			_ = rows.Close()
			return fmt.Errorf("scan check-in line: %w", err)
		}
		prev[itemID] = amount
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("read check-in lines: %w", err)
	}

	for _, l := range lines {
		delta := l.Amount - prev[l.ItemID]
		delete(prev, l.ItemID)

		_, err := tx.Exec(`
			INSERT INTO check_in_lines (plan_id, month, year, item_id, amount)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(plan_id, month, year, item_id) DO UPDATE SET amount = excluded.amount`,
			l.PlanID, l.Month, l.Year, l.ItemID, l.Amount)
		if err != nil {
			return fmt.Errorf("save check-in line: %w", err)
		}
		if err := bumpStock(tx, ci.PlanID, l.ItemID, delta); err != nil {
			return err
		}
	}

	// Contributions dropped since the last submission are backed out.
	for itemID, amount := range prev {
		_, err := tx.Exec(`
			DELETE FROM check_in_lines
			WHERE plan_id = ? AND month = ? AND year = ? AND item_id = ?`,
			ci.PlanID, ci.Month, ci.Year, itemID)
		if err != nil {
			return fmt.Errorf("remove check-in line: %w", err)
		}
		if err := bumpStock(tx, ci.PlanID, itemID, -amount); err != nil {
			return err
		}
	}

	return nil
}

// bumpStock adjusts an item's provision stock, clamping at zero.
func bumpStock(tx *sql.Tx, planID, itemID string, delta float64) error {
	if delta == 0 {
		return nil
	}
	_, err := tx.Exec(`
		INSERT INTO provision_stocks (id, plan_id, item_id, amount_saved)
		VALUES (?, ?, ?, max(0, ?))
		ON CONFLICT(plan_id, item_id) DO UPDATE SET
			amount_saved = max(0, amount_saved + ?)`,
		uuid.NewString(), planID, itemID, delta, delta)
	if err != nil {
		return fmt.Errorf("update provision stock: %w", err)
	}
	return nil
}
