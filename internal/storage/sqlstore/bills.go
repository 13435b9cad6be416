package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/splitbot/internal/models"
)

// CreateBill persists a new bill owned by ownerID and returns its ID.
func (t *txn) CreateBill(ctx context.Context, title string, ownerID int64) (int64, error) {
	if err := models.ValidateBillName(title); err != nil {
		return 0, err
	}

	var id int64
	err := t.queryRow(ctx,
		"INSERT INTO bills (title, owner_id, created_at) VALUES (?, ?, ?) RETURNING id",
		title, ownerID, time.Now().Unix(),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert bill: %w", err)
	}

	return id, nil
}

// GetBillDetails retrieves a bill by ID, including all items and taxes.
func (t *txn) GetBillDetails(ctx context.Context, billID, userID int64) (*models.BillDetails, error) {
	details := &models.BillDetails{}
	err := t.queryRow(ctx,
		"SELECT id, title, owner_id FROM bills WHERE id = ? AND owner_id = ?",
		billID, userID,
	).Scan(&details.ID, &details.Title, &details.OwnerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrBillNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	if details.Items, err = t.listItems(ctx, billID); err != nil {
		return nil, err
	}
	if details.Taxes, err = t.listTaxes(ctx, billID); err != nil {
		return nil, err
	}

	return details, nil
}

func (t *txn) listItems(ctx context.Context, billID int64) ([]models.Item, error) {
	rows, err := t.query(ctx,
		"SELECT title, price FROM items WHERE bill_id = ? ORDER BY id",
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.Title, &item.Price); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	return items, nil
}

func (t *txn) listTaxes(ctx context.Context, billID int64) ([]models.Tax, error) {
	rows, err := t.query(ctx,
		"SELECT title, rate FROM taxes WHERE bill_id = ? ORDER BY id",
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get taxes: %w", err)
	}
	defer rows.Close()

	var taxes []models.Tax
	for rows.Next() {
		var tax models.Tax
		if err := rows.Scan(&tax.Title, &tax.Rate); err != nil {
			return nil, fmt.Errorf("failed to scan tax: %w", err)
		}
		taxes = append(taxes, tax)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate taxes: %w", err)
	}

	return taxes, nil
}

// AddItem appends an item to the bill. Prices must not be negative.
func (t *txn) AddItem(ctx context.Context, billID int64, item models.Item) error {
	if item.Price < 0 {
		return fmt.Errorf("item price must not be negative: %v", item.Price)
	}

	_, err := t.exec(ctx,
		"INSERT INTO items (bill_id, title, price) VALUES (?, ?, ?)",
		billID, item.Title, item.Price,
	)
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// AddTax appends a tax to the bill.
func (t *txn) AddTax(ctx context.Context, billID int64, tax models.Tax) error {
	_, err := t.exec(ctx,
		"INSERT INTO taxes (bill_id, title, rate) VALUES (?, ?, ?)",
		billID, tax.Title, tax.Rate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert tax: %w", err)
	}
	return nil
}
