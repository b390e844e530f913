//go:build unit

package repository

import (
	"testing"

	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapWriteErr(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind infra.RepositoryErrorKind
	}{
		{
			name:     "unique violation",
			err:      &pgconn.PgError{Code: "23505"},
			wantKind: infra.KindDuplicateKey,
		},
		{
			name:     "foreign key violation",
			err:      &pgconn.PgError{Code: "23503"},
			wantKind: infra.KindForeignKeyViolated,
		},
		{
			name:     "exclusion violation",
			err:      &pgconn.PgError{Code: "23P01"},
			wantKind: infra.KindConflict,
		},
		{
			name:     "other pg error",
			err:      &pgconn.PgError{Code: "40001"},
			wantKind: infra.KindDBFailure,
		},
		{
			name:     "plain error",
			err:      errs.New("connection reset"),
			wantKind: infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := mapWriteErr("insert failed", tt.err)
			assert.True(t, infra.IsKind(mapped, tt.wantKind))
		})
	}
}

// The original pg error must stay in the chain so the transaction runner can
// spot retryable serialization failures through the repository wrapper.
func TestMapWriteErr_PreservesPgError(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "40001"}
	mapped := mapWriteErr("insert failed", pgErr)

	var unwrapped *pgconn.PgError
	assert.ErrorAs(t, mapped, &unwrapped)
	assert.Equal(t, "40001", unwrapped.Code)
}

func TestMapReadErr(t *testing.T) {
	assert.True(t, infra.IsKind(mapReadErr("lookup failed", pgx.ErrNoRows), infra.KindNotFound))
	assert.True(t, infra.IsKind(mapReadErr("lookup failed", errs.New("timeout")), infra.KindDBFailure))
}
