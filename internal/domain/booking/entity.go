package booking

import (
	"errors"
	"strings"
	"time"

	"salon-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName = errors.New("customer name is required")
	ErrEmptyContact      = errors.New("contact is required")
	ErrInvalidDuration   = errors.New("duration must be positive")
	ErrSlotOutsideHours  = errors.New("slot falls outside opening hours")
	ErrSlotNotFuture     = errors.New("slot start must be in the future")
	ErrInvalidStatus     = errors.New("invalid booking status")
	ErrAlreadyCancelled  = errors.New("booking is already cancelled")
	ErrClosedDay         = errors.New("requested day is closed")
)

const (
	maxCustomerNameLen = 120
	maxContactLen      = 254
)

// Booking is one confirmed or pending appointment. The duration is snapshotted
// at creation so later catalog edits do not reshape existing rows.
type Booking struct {
	id           uuid.UUID
	staffID      uuid.UUID
	serviceID    uuid.UUID
	day          time.Time
	start        schedule.TimeOfDay
	durationMin  int
	status       Status
	customerName string
	contact      string
	createdAt    time.Time
}

// NewBooking builds a pending booking after structural validation against the
// calendar policy. Conflict checks against other bookings happen later, inside
// the commit transaction.
func NewBooking(
	policy schedule.Policy,
	staffID, serviceID uuid.UUID,
	day time.Time,
	start schedule.TimeOfDay,
	durationMin int,
	customerName, contact string,
	now time.Time,
) (*Booking, error) {
	customerName = strings.TrimSpace(customerName)
	contact = strings.TrimSpace(contact)

	if customerName == "" || len(customerName) > maxCustomerNameLen {
		return nil, ErrEmptyCustomerName
	}
	if contact == "" || len(contact) > maxContactLen {
		return nil, ErrEmptyContact
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if policy.IsClosed(day) {
		return nil, ErrClosedDay
	}
	if start < policy.Open || start.Add(durationMin) > policy.Close {
		return nil, ErrSlotOutsideHours
	}
	if !start.At(day).After(now) {
		return nil, ErrSlotNotFuture
	}

	return &Booking{
		id:           uuid.New(),
		staffID:      staffID,
		serviceID:    serviceID,
		day:          day,
		start:        start,
		durationMin:  durationMin,
		status:       StatusPending,
		customerName: customerName,
		contact:      contact,
	}, nil
}

func ReconstructBooking(
	id, staffID, serviceID uuid.UUID,
	day time.Time,
	start schedule.TimeOfDay,
	durationMin int,
	status Status,
	customerName, contact string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		staffID:      staffID,
		serviceID:    serviceID,
		day:          day,
		start:        start,
		durationMin:  durationMin,
		status:       status,
		customerName: customerName,
		contact:      contact,
		createdAt:    createdAt,
	}
}

// Confirm moves a pending booking to confirmed. Called once the verification
// code has been consumed and the slot committed.
func (b *Booking) Confirm() {
	b.status = StatusConfirmed
}

func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) Interval() schedule.Interval {
	return schedule.NewInterval(b.start, b.durationMin)
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) StaffID() uuid.UUID        { return b.staffID }
func (b *Booking) ServiceID() uuid.UUID      { return b.serviceID }
func (b *Booking) Day() time.Time            { return b.day }
func (b *Booking) Start() schedule.TimeOfDay { return b.start }
func (b *Booking) DurationMin() int          { return b.durationMin }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) CustomerName() string      { return b.customerName }
func (b *Booking) Contact() string           { return b.contact }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
