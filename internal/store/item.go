package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jmoreaux/budgetpilot/internal/model"
)

const itemColumns = `id, plan_id, title, category, kind, frequency, amount, payment_month,
	allocation, sharing, my_share_percent, included_in_shared_transfer,
	is_unplanned, unplanned_month, funded_from_savings, funded_from_free,
	funded_from_shared_savings, goes_to_savings, is_active`

func scanItem(rows *sql.Rows) (model.Item, error) {
	var it model.Item
	err := rows.Scan(
		&it.ID, &it.PlanID, &it.Title, &it.Category, &it.Kind, &it.Frequency,
		&it.Amount, &it.PaymentMonth, &it.Allocation, &it.Sharing,
		&it.MySharePercent, &it.IncludedInSharedTransfer,
		&it.IsUnplanned, &it.UnplannedMonth, &it.FundedFromSavings,
		&it.FundedFromFree, &it.FundedFromSharedSavings, &it.GoesToSavings,
		&it.IsActive,
	)
	return it, err
}

// ListItems loads the plan's active items.
func (s *Store) ListItems(planID string) ([]model.Item, error) {
	rows, err := s.db.Query(`
		SELECT `+itemColumns+` FROM items
		WHERE plan_id = ? AND is_active = 1
		ORDER BY kind, frequency, title`, planID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func insertItem(tx *sql.Tx, it model.Item) error {
	_, err := tx.Exec(`
		INSERT INTO items (`+itemColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.PlanID, it.Title, it.Category, it.Kind, it.Frequency,
		it.Amount, it.PaymentMonth, it.Allocation, it.Sharing,
		it.MySharePercent, it.IncludedInSharedTransfer,
		it.IsUnplanned, it.UnplannedMonth, it.FundedFromSavings,
		it.FundedFromFree, it.FundedFromSharedSavings, it.GoesToSavings,
		it.IsActive,
	)
	return err
}

// CreateItems inserts a batch of items in one transaction, assigning ids
// as needed. Used by the setup templates and the bulk importer.
func (s *Store) CreateItems(items []model.Item) ([]model.Item, error) {
	tx, rollback, err := s.begin()
	if err != nil {
		return nil, err
	}
	defer rollback()

	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		if err := insertItem(tx, items[i]); err != nil {
			return nil, fmt.Errorf("insert item %q: %w", items[i].Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit items: %w", err)
	}
	return items, nil
}

// CreateItem inserts a single item.
func (s *Store) CreateItem(it model.Item) (model.Item, error) {
	items, err := s.CreateItems([]model.Item{it})
	if err != nil {
		return model.Item{}, err
	}
	return items[0], nil
}

// UpdateItem overwrites an item's mutable fields.
func (s *Store) UpdateItem(it model.Item) error {
	res, err := s.db.Exec(`
		UPDATE items SET
			title = ?, category = ?, kind = ?, frequency = ?, amount = ?,
			payment_month = ?, allocation = ?, sharing = ?, my_share_percent = ?,
			included_in_shared_transfer = ?, goes_to_savings = ?
		WHERE id = ?`,
		it.Title, it.Category, it.Kind, it.Frequency, it.Amount,
		it.PaymentMonth, it.Allocation, it.Sharing, it.MySharePercent,
		it.IncludedInSharedTransfer, it.GoesToSavings, it.ID,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteItem soft-deletes an item so historical check-ins and stocks keep
// a valid reference.
func (s *Store) DeleteItem(itemID string) error {
	res, err := s.db.Exec(`UPDATE items SET is_active = 0 WHERE id = ?`, itemID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
