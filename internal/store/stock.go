package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jmoreaux/budgetpilot/internal/model"
)

// GetStocks loads all provision stocks of a plan.
func (s *Store) GetStocks(planID string) ([]model.ProvisionStock, error) {
	rows, err := s.db.Query(`
		SELECT id, plan_id, item_id, amount_saved FROM provision_stocks
		WHERE plan_id = ?`, planID)
	if err != nil {
		return nil, fmt.Errorf("list provision stocks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var stocks []model.ProvisionStock
	for rows.Next() {
		var st model.ProvisionStock
		if err := rows.Scan(&st.ID, &st.PlanID, &st.ItemID, &st.AmountSaved); err != nil {
			return nil, fmt.Errorf("scan provision stock: %w", err)
		}
		stocks = append(stocks, st)
	}
	return stocks, rows.Err()
}

// ApplyUnplanned records an unplanned expense and draws its funding from
// the savings pools in one transaction. Pools never go below zero; the
// free-money share needs no stock change.
func (s *Store) ApplyUnplanned(it model.Item) (model.Item, error) {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	it.IsUnplanned = true
	it.Kind = model.KindExpense
	it.IsActive = true

	tx, rollback, err := s.begin()
	if err != nil {
		return model.Item{}, err
	}
	defer rollback()

	if err := insertItem(tx, it); err != nil {
		return model.Item{}, fmt.Errorf("insert unplanned item: %w", err)
	}

	_, err = tx.Exec(`
		UPDATE profiles SET
			existing_savings = max(0, existing_savings - ?),
			existing_shared_savings = max(0, existing_shared_savings - ?)
		WHERE id = (SELECT profile_id FROM plans WHERE id = ?)`,
		it.FundedFromSavings, it.FundedFromSharedSavings, it.PlanID)
	if err != nil {
		return model.Item{}, fmt.Errorf("draw savings pools: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.Item{}, fmt.Errorf("commit unplanned expense: %w", err)
	}
	return it, nil
}

// SpendProvision consumes part of an item's provision stock when the
// expense it was saved for comes due, then draws the matching pool:
// shared savings for common items, the personal provisions pool otherwise.
func (s *Store) SpendProvision(planID, itemID string, amount float64, common bool) error {
	if amount <= 0 {
		return fmt.Errorf("spend amount must be positive")
	}

	tx, rollback, err := s.begin()
	if err != nil {
		return err
	}
	defer rollback()

	res, err := tx.Exec(`
		UPDATE provision_stocks SET amount_saved = max(0, amount_saved - ?)
		WHERE plan_id = ? AND item_id = ?`, amount, planID, itemID)
	if err != nil {
		return fmt.Errorf("spend provision stock: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	pool := "existing_provisions"
	if common {
		pool = "existing_shared_savings"
	}
	_, err = tx.Exec(`
		UPDATE profiles SET `+pool+` = max(0, `+pool+` - ?)
		WHERE id = (SELECT profile_id FROM plans WHERE id = ?)`, amount, planID)
	if err != nil {
		return fmt.Errorf("draw %s: %w", pool, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit provision spend: %w", err)
	}
	return nil
}
