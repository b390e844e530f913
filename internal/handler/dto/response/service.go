package response

import (
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DurationMin int       `json:"durationMin"`
	GapMin      *int      `json:"gapMin,omitempty"`
	PriceCents  int       `json:"priceCents"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		DurationMin: v.DurationMin,
		GapMin:      v.GapMin,
		PriceCents:  v.PriceCents,
	}
}
