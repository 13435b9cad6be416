// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/splitbot/internal/models"
)

// Store defines the interface for the bot's persistence layer.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the bot.
type Store interface {
	// WithTx runs fn inside a single transaction.
	// The transaction commits when fn returns nil and rolls back when fn returns
	// an error or panics. The error returned by fn is passed through unchanged.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any resources held by the store.
	Close() error
}

// Tx is the set of operations available inside a transaction.
type Tx interface {
	// UpsertUser creates the user or refreshes its names.
	UpsertUser(ctx context.Context, user models.User) error

	// SetPendingAction records the pending action for (chatID, userID),
	// replacing whatever was there before.
	SetPendingAction(ctx context.Context, chatID, userID int64, action models.PendingAction) error

	// GetPendingAction returns models.ActionNone when nothing is pending.
	GetPendingAction(ctx context.Context, userID, chatID int64) (models.PendingAction, error)

	// ResetPendingAction clears the pending action for (chatID, userID).
	ResetPendingAction(ctx context.Context, userID, chatID int64) error

	// CreateBill persists a new bill and returns the assigned ID.
	CreateBill(ctx context.Context, title string, ownerID int64) (int64, error)

	// GetBillDetails loads a bill with its items and taxes in insertion order.
	// Returns models.ErrBillNotFound if the bill does not exist or is not owned by userID.
	GetBillDetails(ctx context.Context, billID, userID int64) (*models.BillDetails, error)

	// AddItem appends a line item to a bill.
	AddItem(ctx context.Context, billID int64, item models.Item) error

	// AddTax appends a tax to a bill.
	AddTax(ctx context.Context, billID int64, tax models.Tax) error
}
