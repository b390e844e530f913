package response

import (
	"salon-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	StaffID uuid.UUID `json:"staffId"`
	Date    string    `json:"date"`
	Slots   []string  `json:"slots"`
}

func FromSlots(staffID uuid.UUID, date string, slots []schedule.TimeOfDay) *AvailabilityResponse {
	labels := make([]string, 0, len(slots))
	for _, s := range slots {
		labels = append(labels, s.String())
	}
	return &AvailabilityResponse{
		StaffID: staffID,
		Date:    date,
		Slots:   labels,
	}
}
