package response

import (
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID           uuid.UUID `json:"id"`
	StaffID      uuid.UUID `json:"staffId"`
	ServiceID    uuid.UUID `json:"serviceId"`
	Date         string    `json:"date"`
	Start        string    `json:"start"`
	End          string    `json:"end"`
	DurationMin  int       `json:"durationMin"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customerName"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID(),
		StaffID:      b.StaffID(),
		ServiceID:    b.ServiceID(),
		Date:         b.Day().Format("2006-01-02"),
		Start:        b.Start().String(),
		End:          b.Interval().End.String(),
		DurationMin:  b.DurationMin(),
		Status:       b.Status().String(),
		CustomerName: b.CustomerName(),
	}
}

type BookingListResponse struct {
	ID           uuid.UUID `json:"id"`
	StaffID      uuid.UUID `json:"staffId"`
	StaffName    string    `json:"staffName"`
	ServiceID    uuid.UUID `json:"serviceId"`
	ServiceName  string    `json:"serviceName"`
	Date         string    `json:"date"`
	Start        string    `json:"start"`
	End          string    `json:"end"`
	DurationMin  int       `json:"durationMin"`
	Status       string    `json:"status"`
	CustomerName string    `json:"customerName"`
	Contact      string    `json:"contact"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingListResponse {
	start := schedule.TimeOfDay(v.StartMin)
	return &BookingListResponse{
		ID:           v.ID,
		StaffID:      v.StaffID,
		StaffName:    v.StaffName,
		ServiceID:    v.ServiceID,
		ServiceName:  v.ServiceName,
		Date:         v.Day.Format("2006-01-02"),
		Start:        start.String(),
		End:          start.Add(v.DurationMin).String(),
		DurationMin:  v.DurationMin,
		Status:       v.Status,
		CustomerName: v.CustomerName,
		Contact:      v.Contact,
		CreatedAt:    v.CreatedAt,
	}
}
