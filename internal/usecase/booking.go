package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/notify"
	infraredis "salon-booking/internal/infra/redis"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/vercode"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrCodeInvalidOrExpired = errors.New("verification code invalid or expired")
	ErrSlotUnavailable      = errors.New("slot unavailable")
	ErrClosedDay            = errors.New("closed day")
	ErrServiceNotFound      = errors.New("service not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrTooManyCodeRequests  = errors.New("too many code requests")
	ErrCodeDeliveryFailed   = errors.New("code delivery failed")
)

type CodeThrottle interface {
	ReserveResend(ctx context.Context, contact string) error
	AllowSend(ctx context.Context, clientKey string) error
}

type VerificationCodeWrites interface {
	Insert(ctx context.Context, contact, code string, expiresAt time.Time) error
	Consume(ctx context.Context, contact, code string, now time.Time) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}

type BookingQueries interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByDay(ctx context.Context, day time.Time) ([]*queries.BookingView, error)
}

type BookingWrites interface {
	Cancel(ctx context.Context, id uuid.UUID) error
}

type ConfirmParams struct {
	StaffID      uuid.UUID
	ServiceID    uuid.UUID
	Day          time.Time
	Start        schedule.TimeOfDay
	CustomerName string
	Contact      string
	Code         string
}

type BookingUseCase interface {
	// SendCode issues a one-time code to a contact. The code row is committed
	// before delivery is attempted.
	SendCode(ctx context.Context, contact, clientKey string) error
	// Confirm runs the two-phase commit: consume the code, validate the
	// request, then re-check the slot and insert inside one transaction.
	Confirm(ctx context.Context, params ConfirmParams) (*booking.Booking, error)
	Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListByDay(ctx context.Context, day time.Time) ([]*queries.BookingView, error)
	Cancel(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	policy       schedule.Policy
	uow          shared.UnitOfWork
	codes        VerificationCodeWrites
	serviceReads ServiceReads
	staffReads   StaffReads
	bookingQ     BookingQueries
	bookingW     BookingWrites
	throttle     CodeThrottle
	sender       notify.CodeSender
	gen          vercode.Generator
	cfg          config.VerificationConfig
	clock        clock.Clock
}

func NewBookingUseCase(
	policy schedule.Policy,
	uow shared.UnitOfWork,
	codes VerificationCodeWrites,
	serviceReads ServiceReads,
	staffReads StaffReads,
	bookingQ BookingQueries,
	bookingW BookingWrites,
	throttle CodeThrottle,
	sender notify.CodeSender,
	gen vercode.Generator,
	cfg config.VerificationConfig,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		policy:       policy,
		uow:          uow,
		codes:        codes,
		serviceReads: serviceReads,
		staffReads:   staffReads,
		bookingQ:     bookingQ,
		bookingW:     bookingW,
		throttle:     throttle,
		sender:       sender,
		gen:          gen,
		cfg:          cfg,
		clock:        clock,
	}
}

func (b *bookingUseCaseImpl) SendCode(ctx context.Context, contact, clientKey string) error {
	contact = strings.TrimSpace(contact)
	if _, err := mail.ParseAddress(contact); err != nil {
		return errs.Mark(err, ErrInvalidInput)
	}

	if err := b.throttle.AllowSend(ctx, clientKey); err != nil {
		if errors.Is(err, infraredis.ErrThrottled) {
			return errs.Mark(err, ErrTooManyCodeRequests)
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	if err := b.throttle.ReserveResend(ctx, contact); err != nil {
		if errors.Is(err, infraredis.ErrThrottled) {
			return errs.Mark(err, ErrTooManyCodeRequests)
		}
		return errs.Mark(err, ErrStorageFailure)
	}

	now := b.clock.Now()

	// Opportunistic cleanup of dead rows. A failure here must not block
	// issuance, and Consume checks expiry itself.
	_, _ = b.codes.PurgeExpired(ctx, now)

	code, err := b.gen.Generate(b.cfg.CodeLength)
	if err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}

	expiresAt := now.Add(b.cfg.TTL)
	if err := b.codes.Insert(ctx, contact, code, expiresAt); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}

	if err := b.sender.Send(ctx, contact, code); err != nil {
		return errs.Mark(err, ErrCodeDeliveryFailed)
	}
	return nil
}

func (b *bookingUseCaseImpl) Confirm(ctx context.Context, params ConfirmParams) (*booking.Booking, error) {
	now := b.clock.Now()

	// Phase one: spend the code. Deliberately outside the booking
	// transaction, so a later commit failure does not refund the code.
	if err := b.codes.Consume(ctx, strings.TrimSpace(params.Contact), strings.TrimSpace(params.Code), now); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrCodeInvalidOrExpired)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	newBooking, err := b.buildBooking(ctx, params, now)
	if err != nil {
		return nil, err
	}

	// Phase two: atomic check-then-commit, serialized per staff day.
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockSchedule(ctx, params.StaffID, params.Day); err != nil {
			return err
		}

		busy, err := tx.Bookings().BlockingIntervals(ctx, params.StaffID, params.Day)
		if err != nil {
			return err
		}
		if !schedule.IsFree(newBooking.Interval(), busy) {
			return ErrSlotUnavailable
		}

		newBooking.Confirm()
		return tx.Bookings().Insert(ctx, newBooking)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotUnavailable):
			return nil, ErrSlotUnavailable
		case infra.IsKind(err, infra.KindConflict):
			// Exclusion constraint backstop fired.
			return nil, errs.Mark(err, ErrSlotUnavailable)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return nil, errs.Mark(err, ErrInvalidInput)
		default:
			return nil, errs.Mark(err, ErrStorageFailure)
		}
	}

	return newBooking, nil
}

// buildBooking resolves the service and runs structural validation. Unlike
// availability, confirmation requires the service to exist; the stored
// duration is snapshotted from the catalog at this moment.
func (b *bookingUseCaseImpl) buildBooking(ctx context.Context, params ConfirmParams, now time.Time) (*booking.Booking, error) {
	if _, err := b.staffReads.FindByID(ctx, params.StaffID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrStaffNotFound)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	svc, err := b.serviceReads.FindByID(ctx, params.ServiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrServiceNotFound)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	newBooking, err := booking.NewBooking(
		b.policy,
		params.StaffID, params.ServiceID,
		params.Day, params.Start, svc.DurationMin(),
		params.CustomerName, params.Contact,
		now,
	)
	if err != nil {
		if errors.Is(err, booking.ErrClosedDay) {
			return nil, errs.Mark(err, ErrClosedDay)
		}
		return nil, errs.Mark(err, ErrInvalidInput)
	}
	return newBooking, nil
}

func (b *bookingUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	found, err := b.bookingQ.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return found, nil
}

func (b *bookingUseCaseImpl) ListByDay(ctx context.Context, day time.Time) ([]*queries.BookingView, error) {
	views, err := b.bookingQ.ListByDay(ctx, day)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return views, nil
}

func (b *bookingUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	if err := b.bookingW.Cancel(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrBookingNotFound)
		}
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}
