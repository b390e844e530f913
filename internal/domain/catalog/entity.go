package catalog

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("service name is required")
	ErrInvalidDuration = errors.New("service duration must be positive")
	ErrInvalidGap      = errors.New("slot gap must be positive")
	ErrNegativePrice   = errors.New("price cannot be negative")
)

// Service is a bookable menu item. GapMin is optional; nil defers to the
// calendar-wide default gap.
type Service struct {
	id          uuid.UUID
	name        string
	description string
	durationMin int
	gapMin      *int
	priceCents  int
}

func NewService(name, description string, durationMin int, gapMin *int, priceCents int) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if gapMin != nil && *gapMin <= 0 {
		return nil, ErrInvalidGap
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Service{
		id:          uuid.New(),
		name:        name,
		description: strings.TrimSpace(description),
		durationMin: durationMin,
		gapMin:      gapMin,
		priceCents:  priceCents,
	}, nil
}

func ReconstructService(id uuid.UUID, name, description string, durationMin int, gapMin *int, priceCents int) *Service {
	return &Service{
		id:          id,
		name:        name,
		description: description,
		durationMin: durationMin,
		gapMin:      gapMin,
		priceCents:  priceCents,
	}
}

func (s *Service) Update(name, description string, durationMin int, gapMin *int, priceCents int) error {
	updated, err := NewService(name, description, durationMin, gapMin, priceCents)
	if err != nil {
		return err
	}
	s.name = updated.name
	s.description = updated.description
	s.durationMin = updated.durationMin
	s.gapMin = updated.gapMin
	s.priceCents = updated.priceCents
	return nil
}

// Gap resolves the slot stride, falling back to the calendar default when the
// service does not override it.
func (s *Service) Gap(defaultGapMin int) int {
	if s.gapMin != nil {
		return *s.gapMin
	}
	return defaultGapMin
}

func (s *Service) ID() uuid.UUID       { return s.id }
func (s *Service) Name() string        { return s.name }
func (s *Service) Description() string { return s.description }
func (s *Service) DurationMin() int    { return s.durationMin }
func (s *Service) GapMin() *int        { return s.gapMin }
func (s *Service) PriceCents() int     { return s.priceCents }
