package usecase

import (
	"context"
	"errors"
	"time"

	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/domain/staff"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStaffNotFound  = errors.New("staff not found")
	ErrStorageFailure = errors.New("storage failure")
)

type ServiceReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
}

type StaffReads interface {
	FindByID(ctx context.Context, id uuid.UUID) (*staff.Staff, error)
}

type BookingReads interface {
	BlockingIntervals(ctx context.Context, staffID uuid.UUID, day time.Time) ([]schedule.Interval, error)
}

type AvailabilityUseCase interface {
	// DaySlots returns the bookable start times for one staff member on one
	// day. A closed day yields an empty list, not an error.
	DaySlots(ctx context.Context, staffID uuid.UUID, day time.Time, serviceID *uuid.UUID) ([]schedule.TimeOfDay, error)
}

type availabilityUseCaseImpl struct {
	policy       schedule.Policy
	staffReads   StaffReads
	serviceReads ServiceReads
	bookingReads BookingReads
	clock        clock.Clock
}

func NewAvailabilityUseCase(
	policy schedule.Policy,
	staffReads StaffReads,
	serviceReads ServiceReads,
	bookingReads BookingReads,
	clock clock.Clock,
) AvailabilityUseCase {
	return &availabilityUseCaseImpl{
		policy:       policy,
		staffReads:   staffReads,
		serviceReads: serviceReads,
		bookingReads: bookingReads,
		clock:        clock,
	}
}

func (a *availabilityUseCaseImpl) DaySlots(ctx context.Context, staffID uuid.UUID, day time.Time, serviceID *uuid.UUID) ([]schedule.TimeOfDay, error) {
	if _, err := a.staffReads.FindByID(ctx, staffID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrStaffNotFound)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	if a.policy.IsClosed(day) {
		return []schedule.TimeOfDay{}, nil
	}

	durationMin, gapMin, err := a.resolveDimensions(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	busy, err := a.bookingReads.BlockingIntervals(ctx, staffID, day)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	slots := a.policy.FreeSlots(day, a.clock.Now(), durationMin, gapMin, busy)
	if slots == nil {
		slots = []schedule.TimeOfDay{}
	}
	return slots, nil
}

// resolveDimensions looks up the service's duration and gap. An unknown or
// omitted service falls back to the calendar defaults; browsing availability
// never hard-fails on a stale service id.
func (a *availabilityUseCaseImpl) resolveDimensions(ctx context.Context, serviceID *uuid.UUID) (int, int, error) {
	if serviceID == nil {
		return a.policy.DefaultDurationMin, a.policy.DefaultGapMin, nil
	}

	svc, err := a.serviceReads.FindByID(ctx, *serviceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return a.policy.DefaultDurationMin, a.policy.DefaultGapMin, nil
		}
		return 0, 0, errs.Mark(err, ErrStorageFailure)
	}

	return svc.DurationMin(), svc.Gap(a.policy.DefaultGapMin), nil
}
