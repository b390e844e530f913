package repository

import (
	"context"

	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(dbtx db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: dbtx}
}

const insertServiceSQL = `
INSERT INTO services (id, name, description, duration_min, gap_min, price_cents)
VALUES ($1, $2, $3, $4, $5, $6)
`

func (r *ServiceRepository) Insert(ctx context.Context, s *catalog.Service) error {
	_, err := r.db.Exec(ctx, insertServiceSQL,
		s.ID(), s.Name(), s.Description(), s.DurationMin(), s.GapMin(), s.PriceCents(),
	)
	if err != nil {
		return mapWriteErr("failed to insert service", err)
	}
	return nil
}

const updateServiceSQL = `
UPDATE services SET name = $2, description = $3, duration_min = $4, gap_min = $5, price_cents = $6
WHERE id = $1
`

func (r *ServiceRepository) Update(ctx context.Context, s *catalog.Service) error {
	tag, err := r.db.Exec(ctx, updateServiceSQL,
		s.ID(), s.Name(), s.Description(), s.DurationMin(), s.GapMin(), s.PriceCents(),
	)
	if err != nil {
		return mapWriteErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "service not found", nil)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return mapWriteErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "service not found", nil)
	}
	return nil
}

const findServiceSQL = `
SELECT id, name, description, duration_min, gap_min, price_cents
FROM services
WHERE id = $1
`

func (r *ServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	var (
		sid         uuid.UUID
		name, desc  string
		durationMin int
		gapMin      *int
		priceCents  int
	)
	err := r.db.QueryRow(ctx, findServiceSQL, id).Scan(&sid, &name, &desc, &durationMin, &gapMin, &priceCents)
	if err != nil {
		return nil, mapReadErr("service not found", err)
	}
	return catalog.ReconstructService(sid, name, desc, durationMin, gapMin, priceCents), nil
}

const listServicesSQL = `
SELECT id, name, description, duration_min, gap_min, price_cents
FROM services
ORDER BY name
`

func (r *ServiceRepository) List(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, listServicesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list services", err)
	}
	defer rows.Close()

	var views []*queries.ServiceView
	for rows.Next() {
		var v queries.ServiceView
		if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.DurationMin, &v.GapMin, &v.PriceCents); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan service view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read service views", err)
	}
	return views, nil
}
