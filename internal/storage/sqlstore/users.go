package sqlstore

import (
	"context"
	"fmt"
	"time"

	"github.com/mmynk/splitbot/internal/models"
)

// UpsertUser inserts the user or refreshes the stored names.
func (t *txn) UpsertUser(ctx context.Context, user models.User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, username, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			username = excluded.username,
			updated_at = excluded.updated_at
	`

	_, err := t.exec(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Username,
		time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}
