// Package queries holds the flat read models returned by list and detail
// queries. They carry presentation-ready joins (staff and service names) so
// handlers never reach back into the write model.
package queries

import (
	"time"

	"github.com/google/uuid"
)

type BookingView struct {
	ID           uuid.UUID
	StaffID      uuid.UUID
	StaffName    string
	ServiceID    uuid.UUID
	ServiceName  string
	Day          time.Time
	StartMin     int
	DurationMin  int
	Status       string
	CustomerName string
	Contact      string
	CreatedAt    time.Time
}

type ServiceView struct {
	ID          uuid.UUID
	Name        string
	Description string
	DurationMin int
	GapMin      *int
	PriceCents  int
}

type StaffView struct {
	ID      uuid.UUID
	Name    string
	Email   string
	IsAdmin bool
}
