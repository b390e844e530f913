package repository

import (
	"errors"

	"salon-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation    = "23505"
	pgErrCodeForeignKeyViolated = "23503"
	pgErrCodeExclusionViolated  = "23P01"
)

// mapWriteErr translates pg constraint violations into repository error kinds.
// The original pg error stays in the chain, so the transaction runner can still
// recognize retryable failures with errors.As.
func mapWriteErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(infra.KindDuplicateKey, msg, err)
		case pgErrCodeForeignKeyViolated:
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, msg, err)
		case pgErrCodeExclusionViolated:
			return infra.WrapRepoErr(infra.KindConflict, msg, err)
		}
	}
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}

func mapReadErr(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return infra.WrapRepoErr(infra.KindNotFound, msg, err)
	}
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}
