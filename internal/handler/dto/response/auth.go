package response

import (
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	IsAdmin bool      `json:"isAdmin"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	Staff       StaffResponse `json:"staff"`
}

func FromStaffView(v *queries.StaffView) StaffResponse {
	return StaffResponse{
		ID:      v.ID,
		Name:    v.Name,
		Email:   v.Email,
		IsAdmin: v.IsAdmin,
	}
}
