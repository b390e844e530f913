package shared

import (
	"context"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Codes() VerificationCodeRepository
	// LockSchedule serializes concurrent commits against one staff member's
	// day. Held until the transaction ends.
	LockSchedule(ctx context.Context, staffID uuid.UUID, day time.Time) error
}

type BookingRepository interface {
	Insert(ctx context.Context, b *booking.Booking) error
	// BlockingIntervals returns the occupied intervals for one staff day,
	// excluding cancelled bookings.
	BlockingIntervals(ctx context.Context, staffID uuid.UUID, day time.Time) ([]schedule.Interval, error)
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type VerificationCodeRepository interface {
	Insert(ctx context.Context, contact, code string, expiresAt time.Time) error
	// Consume atomically marks the newest live code matching (contact, code)
	// as used. A consumed code never verifies twice.
	Consume(ctx context.Context, contact, code string, now time.Time) error
}
