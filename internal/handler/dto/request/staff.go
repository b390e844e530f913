package request

import "salon-booking/internal/usecase"

type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	IsAdmin  bool   `json:"is_admin"`
}

func (r CreateStaffRequest) ToParams() usecase.StaffParams {
	return usecase.StaffParams{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		IsAdmin:  r.IsAdmin,
	}
}
