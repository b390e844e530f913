package repository

import (
	"context"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const insertBookingSQL = `
INSERT INTO bookings (id, staff_id, service_id, day, start_min, duration_min, status, customer_name, contact)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`

func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, insertBookingSQL,
		b.ID(), b.StaffID(), b.ServiceID(), b.Day(),
		int(b.Start()), b.DurationMin(), b.Status().String(),
		b.CustomerName(), b.Contact(),
	)
	if err != nil {
		return mapWriteErr("failed to insert booking", err)
	}
	return nil
}

const blockingIntervalsSQL = `
SELECT start_min, duration_min
FROM bookings
WHERE staff_id = $1 AND day = $2 AND status <> 'cancelled'
ORDER BY start_min
`

func (r *BookingRepository) BlockingIntervals(ctx context.Context, staffID uuid.UUID, day time.Time) ([]schedule.Interval, error) {
	rows, err := r.db.Query(ctx, blockingIntervalsSQL, staffID, day)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query blocking intervals", err)
	}
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var startMin, durationMin int
		if err := rows.Scan(&startMin, &durationMin); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan interval", err)
		}
		intervals = append(intervals, schedule.NewInterval(schedule.TimeOfDay(startMin), durationMin))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read intervals", err)
	}
	return intervals, nil
}

const findBookingSQL = `
SELECT id, staff_id, service_id, day, start_min, duration_min, status, customer_name, contact, created_at
FROM bookings
WHERE id = $1
`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var (
		bid, staffID, serviceID uuid.UUID
		day, createdAt          time.Time
		startMin, durationMin   int
		status                  string
		customerName, contact   string
	)
	err := r.db.QueryRow(ctx, findBookingSQL, id).Scan(
		&bid, &staffID, &serviceID, &day, &startMin, &durationMin,
		&status, &customerName, &contact, &createdAt,
	)
	if err != nil {
		return nil, mapReadErr("booking not found", err)
	}

	return booking.ReconstructBooking(
		bid, staffID, serviceID, day,
		schedule.TimeOfDay(startMin), durationMin,
		booking.Status(status), customerName, contact, createdAt,
	), nil
}

const cancelBookingSQL = `
UPDATE bookings SET status = 'cancelled'
WHERE id = $1 AND status <> 'cancelled'
`

func (r *BookingRepository) Cancel(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, cancelBookingSQL, id)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to cancel booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found or already cancelled", nil)
	}
	return nil
}

const listBookingsByDaySQL = `
SELECT b.id, b.staff_id, st.name, b.service_id, sv.name,
       b.day, b.start_min, b.duration_min, b.status,
       b.customer_name, b.contact, b.created_at
FROM bookings b
JOIN staff st ON st.id = b.staff_id
JOIN services sv ON sv.id = b.service_id
WHERE b.day = $1
ORDER BY b.start_min, st.name
`

func (r *BookingRepository) ListByDay(ctx context.Context, day time.Time) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, listBookingsByDaySQL, day)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	var views []*queries.BookingView
	for rows.Next() {
		var v queries.BookingView
		if err := rows.Scan(
			&v.ID, &v.StaffID, &v.StaffName, &v.ServiceID, &v.ServiceName,
			&v.Day, &v.StartMin, &v.DurationMin, &v.Status,
			&v.CustomerName, &v.Contact, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read booking views", err)
	}
	return views, nil
}
