package usecase

import (
	"context"
	"errors"

	"salon-booking/internal/domain/staff"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrDuplicateStaffEmail = errors.New("staff email already exists")
	ErrStaffHasBookings    = errors.New("staff has bookings")
	ErrSelfDeletion        = errors.New("cannot delete own account")
)

type StaffRepository interface {
	Insert(ctx context.Context, s *staff.Staff) error
	FindByID(ctx context.Context, id uuid.UUID) (*staff.Staff, error)
	List(ctx context.Context) ([]*queries.StaffView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type StaffParams struct {
	Name     string
	Email    string
	Password string
	IsAdmin  bool
}

type StaffUseCase interface {
	ListStaff(ctx context.Context) ([]*queries.StaffView, error)
	CreateStaff(ctx context.Context, params StaffParams) (uuid.UUID, error)
	// DeleteStaff removes a staff account. The acting admin cannot remove
	// themselves, and staff with bookings on record are kept for history.
	DeleteStaff(ctx context.Context, actorID, id uuid.UUID) error
}

type staffUseCaseImpl struct {
	staff StaffRepository
}

func NewStaffUseCase(staffRepo StaffRepository) StaffUseCase {
	return &staffUseCaseImpl{staff: staffRepo}
}

func (s *staffUseCaseImpl) ListStaff(ctx context.Context) ([]*queries.StaffView, error) {
	views, err := s.staff.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if views == nil {
		views = []*queries.StaffView{}
	}
	return views, nil
}

func (s *staffUseCaseImpl) CreateStaff(ctx context.Context, params StaffParams) (uuid.UUID, error) {
	hash, err := password.HashPassword(params.Password)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInput)
	}

	member, err := staff.NewStaff(params.Name, params.Email, hash, params.IsAdmin)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInput)
	}

	if err := s.staff.Insert(ctx, member); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrDuplicateStaffEmail)
		}
		return uuid.Nil, errs.Mark(err, ErrStorageFailure)
	}
	return member.ID(), nil
}

func (s *staffUseCaseImpl) DeleteStaff(ctx context.Context, actorID, id uuid.UUID) error {
	member, err := s.staff.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrStaffNotFound)
		}
		return errs.Mark(err, ErrStorageFailure)
	}

	if err := member.EnsureDeletableBy(actorID); err != nil {
		return errs.Mark(err, ErrSelfDeletion)
	}

	if err := s.staff.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrStaffNotFound)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.Mark(err, ErrStaffHasBookings)
		default:
			return errs.Mark(err, ErrStorageFailure)
		}
	}
	return nil
}
