package request

import "salon-booking/internal/usecase"

type ServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	DurationMin int    `json:"duration_min" binding:"required,min=1"`
	GapMin      *int   `json:"gap_min,omitempty"`
	PriceCents  int    `json:"price_cents" binding:"min=0"`
}

func (r ServiceRequest) ToParams() usecase.ServiceParams {
	return usecase.ServiceParams{
		Name:        r.Name,
		Description: r.Description,
		DurationMin: r.DurationMin,
		GapMin:      r.GapMin,
		PriceCents:  r.PriceCents,
	}
}
