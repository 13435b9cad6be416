package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mmynk/splitbot/internal/models"
)

// SetPendingAction writes the single pending action for a (chat, user) pair.
func (t *txn) SetPendingAction(ctx context.Context, chatID, userID int64, action models.PendingAction) error {
	code := action.Code()
	if code < 0 {
		return fmt.Errorf("cannot store pending action %v", action)
	}

	_, err := t.exec(ctx, `
		INSERT INTO sessions (chat_id, user_id, action, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (chat_id, user_id) DO UPDATE SET
			action = excluded.action,
			updated_at = excluded.updated_at
	`, chatID, userID, code, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	return nil
}

// GetPendingAction returns models.ActionNone when no session row exists.
func (t *txn) GetPendingAction(ctx context.Context, userID, chatID int64) (models.PendingAction, error) {
	var code int
	err := t.queryRow(ctx,
		"SELECT action FROM sessions WHERE chat_id = ? AND user_id = ?",
		chatID, userID,
	).Scan(&code)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ActionNone, nil
	}
	if err != nil {
		return models.ActionNone, fmt.Errorf("failed to read session: %w", err)
	}

	action, err := models.ActionFromCode(code)
	if err != nil {
		return models.ActionNone, fmt.Errorf("corrupt session for chat %d user %d: %w", chatID, userID, err)
	}
	return action, nil
}

// ResetPendingAction removes the session row, if any.
func (t *txn) ResetPendingAction(ctx context.Context, userID, chatID int64) error {
	_, err := t.exec(ctx,
		"DELETE FROM sessions WHERE chat_id = ? AND user_id = ?",
		chatID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}
	return nil
}
