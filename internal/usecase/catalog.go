package usecase

import (
	"context"
	"errors"

	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrDuplicateServiceName = errors.New("service name already exists")
	ErrServiceInUse         = errors.New("service has bookings")
)

type ServiceRepository interface {
	Insert(ctx context.Context, s *catalog.Service) error
	Update(ctx context.Context, s *catalog.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	List(ctx context.Context) ([]*queries.ServiceView, error)
}

type ServiceParams struct {
	Name        string
	Description string
	DurationMin int
	GapMin      *int
	PriceCents  int
}

type CatalogUseCase interface {
	ListServices(ctx context.Context) ([]*queries.ServiceView, error)
	GetService(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error)
	CreateService(ctx context.Context, params ServiceParams) (uuid.UUID, error)
	UpdateService(ctx context.Context, id uuid.UUID, params ServiceParams) error
	DeleteService(ctx context.Context, id uuid.UUID) error
}

type catalogUseCaseImpl struct {
	services ServiceRepository
}

func NewCatalogUseCase(services ServiceRepository) CatalogUseCase {
	return &catalogUseCaseImpl{services: services}
}

func (c *catalogUseCaseImpl) ListServices(ctx context.Context) ([]*queries.ServiceView, error) {
	views, err := c.services.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	if views == nil {
		views = []*queries.ServiceView{}
	}
	return views, nil
}

func (c *catalogUseCaseImpl) GetService(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	svc, err := c.services.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrServiceNotFound)
		}
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return &queries.ServiceView{
		ID:          svc.ID(),
		Name:        svc.Name(),
		Description: svc.Description(),
		DurationMin: svc.DurationMin(),
		GapMin:      svc.GapMin(),
		PriceCents:  svc.PriceCents(),
	}, nil
}

func (c *catalogUseCaseImpl) CreateService(ctx context.Context, params ServiceParams) (uuid.UUID, error) {
	svc, err := catalog.NewService(params.Name, params.Description, params.DurationMin, params.GapMin, params.PriceCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidInput)
	}

	if err := c.services.Insert(ctx, svc); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, errs.Mark(err, ErrDuplicateServiceName)
		}
		return uuid.Nil, errs.Mark(err, ErrStorageFailure)
	}
	return svc.ID(), nil
}

func (c *catalogUseCaseImpl) UpdateService(ctx context.Context, id uuid.UUID, params ServiceParams) error {
	svc, err := c.services.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrServiceNotFound)
		}
		return errs.Mark(err, ErrStorageFailure)
	}

	if err := svc.Update(params.Name, params.Description, params.DurationMin, params.GapMin, params.PriceCents); err != nil {
		return errs.Mark(err, ErrInvalidInput)
	}

	if err := c.services.Update(ctx, svc); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrServiceNotFound)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return errs.Mark(err, ErrDuplicateServiceName)
		default:
			return errs.Mark(err, ErrStorageFailure)
		}
	}
	return nil
}

func (c *catalogUseCaseImpl) DeleteService(ctx context.Context, id uuid.UUID) error {
	if err := c.services.Delete(ctx, id); err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return errs.Mark(err, ErrServiceNotFound)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.Mark(err, ErrServiceInUse)
		default:
			return errs.Mark(err, ErrStorageFailure)
		}
	}
	return nil
}
