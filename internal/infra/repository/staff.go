package repository

import (
	"context"

	"salon-booking/internal/domain/staff"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffRepository struct {
	db db.DBTX
}

func NewStaffRepository(dbtx db.DBTX) *StaffRepository {
	return &StaffRepository{db: dbtx}
}

const insertStaffSQL = `
INSERT INTO staff (id, name, email, password_hash, is_admin)
VALUES ($1, $2, $3, $4, $5)
`

func (r *StaffRepository) Insert(ctx context.Context, s *staff.Staff) error {
	_, err := r.db.Exec(ctx, insertStaffSQL, s.ID(), s.Name(), s.Email(), s.PasswordHash(), s.IsAdmin())
	if err != nil {
		return mapWriteErr("failed to insert staff", err)
	}
	return nil
}

const findStaffByEmailSQL = `
SELECT id, name, email, password_hash, is_admin
FROM staff
WHERE email = $1
`

func (r *StaffRepository) FindByEmail(ctx context.Context, email string) (*staff.Staff, error) {
	return r.findOne(ctx, findStaffByEmailSQL, email)
}

const findStaffByIDSQL = `
SELECT id, name, email, password_hash, is_admin
FROM staff
WHERE id = $1
`

func (r *StaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.Staff, error) {
	return r.findOne(ctx, findStaffByIDSQL, id)
}

func (r *StaffRepository) findOne(ctx context.Context, sql string, arg any) (*staff.Staff, error) {
	var (
		id                        uuid.UUID
		name, email, passwordHash string
		isAdmin                   bool
	)
	err := r.db.QueryRow(ctx, sql, arg).Scan(&id, &name, &email, &passwordHash, &isAdmin)
	if err != nil {
		return nil, mapReadErr("staff not found", err)
	}
	return staff.ReconstructStaff(id, name, email, passwordHash, isAdmin), nil
}

const listStaffSQL = `
SELECT id, name, email, is_admin
FROM staff
ORDER BY name
`

func (r *StaffRepository) List(ctx context.Context) ([]*queries.StaffView, error) {
	rows, err := r.db.Query(ctx, listStaffSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list staff", err)
	}
	defer rows.Close()

	var views []*queries.StaffView
	for rows.Next() {
		var v queries.StaffView
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.IsAdmin); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan staff view", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read staff views", err)
	}
	return views, nil
}

func (r *StaffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return mapWriteErr("failed to delete staff", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "staff not found", nil)
	}
	return nil
}
