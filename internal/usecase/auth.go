package usecase

import (
	"context"
	"errors"

	"salon-booking/internal/domain/staff"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/pkg/password"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")
)

type AuthStaffReads interface {
	FindByEmail(ctx context.Context, email string) (*staff.Staff, error)
	FindByID(ctx context.Context, id uuid.UUID) (*staff.Staff, error)
}

type AuthUseCase interface {
	Login(ctx context.Context, email, plainPassword string) (string, *queries.StaffView, error)
	GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*queries.StaffView, error)
}

type authUseCaseImpl struct {
	staffReads AuthStaffReads
	jwtService *jwt.Service
}

func NewAuthUseCase(staffReads AuthStaffReads, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		staffReads: staffReads,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (string, *queries.StaffView, error) {
	member, err := a.staffReads.FindByEmail(ctx, email)
	if err != nil {
		// Uniform error keeps account enumeration off the login endpoint.
		return "", nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(member.PasswordHash(), plainPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(member.ID(), member.IsAdmin())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, staffToView(member), nil
}

func (a *authUseCaseImpl) GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*queries.StaffView, error) {
	member, err := a.staffReads.FindByID(ctx, staffID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, ErrStorageFailure
	}
	return staffToView(member), nil
}

func staffToView(member *staff.Staff) *queries.StaffView {
	return &queries.StaffView{
		ID:      member.ID(),
		Name:    member.Name(),
		Email:   member.Email(),
		IsAdmin: member.IsAdmin(),
	}
}
