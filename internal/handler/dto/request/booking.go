package request

import (
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/usecase"

	"github.com/google/uuid"
)

type SendCodeRequest struct {
	Contact string `json:"contact" binding:"required"`
}

type ConfirmBookingRequest struct {
	StaffID      uuid.UUID `json:"staff_id" binding:"required"`
	ServiceID    uuid.UUID `json:"service_id" binding:"required"`
	Date         string    `json:"date" binding:"required"`
	Start        string    `json:"start" binding:"required"`
	CustomerName string    `json:"customer_name" binding:"required"`
	Contact      string    `json:"contact" binding:"required"`
	Code         string    `json:"code" binding:"required"`
}

// ToParams parses the wire-level date and time strings. Deeper validation
// (opening hours, closed days, future starts) belongs to the domain.
func (r ConfirmBookingRequest) ToParams() (usecase.ConfirmParams, error) {
	day, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return usecase.ConfirmParams{}, err
	}

	start, err := schedule.ParseTimeOfDay(r.Start)
	if err != nil {
		return usecase.ConfirmParams{}, err
	}

	return usecase.ConfirmParams{
		StaffID:      r.StaffID,
		ServiceID:    r.ServiceID,
		Day:          day,
		Start:        start,
		CustomerName: r.CustomerName,
		Contact:      r.Contact,
		Code:         r.Code,
	}, nil
}
