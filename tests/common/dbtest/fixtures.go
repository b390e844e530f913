//go:build unit || e2e

package dbtest

import (
	"context"
	"time"

	"salon-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResetDB truncates all mutable tables so each subtest starts clean.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(),
		"TRUNCATE bookings, verification_codes, services, staff CASCADE")
	return err
}

func SeedStaff(ctx context.Context, pool *pgxpool.Pool, name, email, plainPassword string, isAdmin bool) (uuid.UUID, error) {
	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	_, err = pool.Exec(ctx,
		"INSERT INTO staff (id, name, email, password_hash, is_admin) VALUES ($1, $2, $3, $4, $5)",
		id, name, email, hash, isAdmin)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func SeedService(ctx context.Context, pool *pgxpool.Pool, name string, durationMin int, gapMin *int, priceCents int) (uuid.UUID, error) {
	id := uuid.New()
	_, err := pool.Exec(ctx,
		"INSERT INTO services (id, name, description, duration_min, gap_min, price_cents) VALUES ($1, $2, '', $3, $4, $5)",
		id, name, durationMin, gapMin, priceCents)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// SeedCode plants a verification code with an explicit expiry, bypassing the
// issue endpoint and its throttles.
func SeedCode(ctx context.Context, pool *pgxpool.Pool, contact, code string, expiresAt time.Time) error {
	_, err := pool.Exec(ctx,
		"INSERT INTO verification_codes (id, contact, code, expires_at) VALUES ($1, $2, $3, $4)",
		uuid.New(), contact, code, expiresAt)
	return err
}

// LatestCode fetches the newest verification code issued to a contact.
// E2E tests read it straight from the store instead of a mailbox.
func LatestCode(ctx context.Context, pool *pgxpool.Pool, contact string) (string, error) {
	var code string
	err := pool.QueryRow(ctx,
		"SELECT code FROM verification_codes WHERE contact = $1 ORDER BY created_at DESC LIMIT 1",
		contact).Scan(&code)
	return code, err
}
