package repository

import (
	"context"
	"errors"
	"time"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// VerificationCodeRepository stores one-time codes. Multiple live codes per
// contact are allowed; verification matches the newest unexpired, unconsumed
// row for the exact (contact, code) pair.
type VerificationCodeRepository struct {
	db db.DBTX
}

func NewVerificationCodeRepository(dbtx db.DBTX) *VerificationCodeRepository {
	return &VerificationCodeRepository{db: dbtx}
}

const insertCodeSQL = `
INSERT INTO verification_codes (id, contact, code, expires_at)
VALUES ($1, $2, $3, $4)
`

func (r *VerificationCodeRepository) Insert(ctx context.Context, contact, code string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, insertCodeSQL, uuid.New(), contact, code, expiresAt)
	if err != nil {
		return mapWriteErr("failed to insert verification code", err)
	}
	return nil
}

// The subquery picks the newest matching live code; the outer UPDATE consumes
// exactly that row. Concurrent consumers race on the row lock, so a code can
// be spent only once.
const consumeCodeSQL = `
UPDATE verification_codes SET consumed = TRUE
WHERE id = (
	SELECT id FROM verification_codes
	WHERE contact = $1 AND code = $2 AND expires_at > $3 AND NOT consumed
	ORDER BY created_at DESC
	LIMIT 1
)
RETURNING id
`

func (r *VerificationCodeRepository) Consume(ctx context.Context, contact, code string, now time.Time) error {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, consumeCodeSQL, contact, code, now).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr(infra.KindNotFound, "no matching live verification code", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to consume verification code", err)
	}
	return nil
}

// PurgeExpired deletes codes past their expiry. Invoked on each code
// issuance; losing a race with Consume is harmless because Consume checks
// expiry itself.
func (r *VerificationCodeRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM verification_codes WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "failed to purge expired codes", err)
	}
	return tag.RowsAffected(), nil
}
