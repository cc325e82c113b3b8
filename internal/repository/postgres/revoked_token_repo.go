package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"storesapi/internal/domain"
)

type revokedTokenRepository struct {
	DB  *sql.DB
	now func() time.Time
}

// NewRevocationRegistry returns a RevocationRegistry persisted in the revoked_tokens table,
// so revocations survive restarts and are shared by every process using the database.
func NewRevocationRegistry(db *sql.DB) domain.RevocationRegistry {
	return &revokedTokenRepository{DB: db, now: time.Now}
}

// Revoke also drops rows whose token has already expired; those tokens fail validation anyway.
func (r *revokedTokenRepository) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM revoked_tokens WHERE expires_at < $1`, r.now()); err != nil {
		return fmt.Errorf("purge revoked tokens: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO revoked_tokens (jti, expires_at) VALUES ($1, $2) ON CONFLICT (jti) DO NOTHING`,
		jti, expiresAt); err != nil {
		return fmt.Errorf("insert revoked token: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *revokedTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM revoked_tokens WHERE jti = $1)`, jti).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query revoked token: %w", err)
	}
	return exists, nil
}
