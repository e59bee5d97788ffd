package credstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Pranavrh53/skill-exchange-platform/internal/client/models"
	"github.com/Pranavrh53/skill-exchange-platform/internal/dbx"
)

const (
	keyToken  = "token"
	keyUserID = "user_id"
)

// SQLiteRepository stores the credential as two rows of a key-value table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func upsert(ctx context.Context, tx dbx.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

// Save writes both values in one transaction so a concurrent Read sees
// either the old pair or the new pair, never a mix.
func (r *SQLiteRepository) Save(ctx context.Context, token, userID string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := upsert(ctx, tx, keyToken, token); err != nil {
			return err
		}
		return upsert(ctx, tx, keyUserID, userID)
	})
}

func get(ctx context.Context, db dbx.DBTX, key string) (string, bool, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, true, nil
}

// Read returns the stored credential, or nil when none is stored. A token
// without a user id is still a credential (the id may resolve later); a
// user id without a token is not.
func (r *SQLiteRepository) Read(ctx context.Context) (*models.Credential, error) {
	token, ok, err := get(ctx, r.db, keyToken)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	userID, _, err := get(ctx, r.db, keyUserID)
	if err != nil {
		return nil, err
	}
	return &models.Credential{Token: token, UserID: userID}, nil
}

// Clear removes both values. Clearing an empty store is a no-op.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM credentials`)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
