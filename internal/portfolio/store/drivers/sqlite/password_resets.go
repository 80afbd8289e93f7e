package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/tech2saini/portfolio/internal/portfolio/domain"
)

type passwordResetsRepo struct {
	db *sql.DB
}

func (r *passwordResetsRepo) CreatePasswordReset(ctx context.Context, pr domain.PasswordReset) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO password_resets (id, user_id, token_hash, expires_at, used_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		pr.ID, pr.UserID, pr.TokenHash, pr.ExpiresAt, mapOptionalTime(pr.UsedAt), pr.CreatedAt)
	return mapConflict(err)
}

func (r *passwordResetsRepo) GetPasswordReset(ctx context.Context, tokenHash string) (domain.PasswordReset, error) {
	var pr domain.PasswordReset
	var usedAt sql.NullTime
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, token_hash, expires_at, used_at, created_at
		 FROM password_resets WHERE token_hash = ?`,
		tokenHash).Scan(&pr.ID, &pr.UserID, &pr.TokenHash, &pr.ExpiresAt, &usedAt, &pr.CreatedAt)
	if err != nil {
		return domain.PasswordReset{}, mapNotFound(err)
	}
	pr.UsedAt = mapNullTimePtr(usedAt)
	return pr, nil
}

func (r *passwordResetsRepo) MarkPasswordResetUsed(ctx context.Context, id string, usedAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE password_resets SET used_at = ? WHERE id = ?`, usedAt, id)
	return err
}

func (r *passwordResetsRepo) DeleteExpiredPasswordResets(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM password_resets WHERE expires_at <= ? OR used_at IS NOT NULL`, now)
	return err
}
