package schedule

import (
	"strings"
	"time"

	"salon-booking/internal/pkg/errs"
)

var ErrInvalidWeekday = errs.New("invalid weekday name")

// Policy holds the calendar rules shared by every staff member: daily opening
// hours, weekly closed days, and fallback service dimensions.
type Policy struct {
	Open               TimeOfDay
	Close              TimeOfDay
	ClosedWeekdays     map[time.Weekday]bool
	DefaultGapMin      int
	DefaultDurationMin int
}

func NewPolicy(open, close TimeOfDay, closed []time.Weekday, defaultGapMin, defaultDurationMin int) (Policy, error) {
	if open >= close {
		return Policy{}, errs.New("opening time must precede closing time")
	}
	if defaultGapMin <= 0 || defaultDurationMin <= 0 {
		return Policy{}, errs.New("default gap and duration must be positive")
	}
	m := make(map[time.Weekday]bool, len(closed))
	for _, wd := range closed {
		m[wd] = true
	}
	return Policy{
		Open:               open,
		Close:              close,
		ClosedWeekdays:     m,
		DefaultGapMin:      defaultGapMin,
		DefaultDurationMin: defaultDurationMin,
	}, nil
}

func (p Policy) IsClosed(date time.Time) bool {
	return p.ClosedWeekdays[date.Weekday()]
}

// ParseWeekdays parses a comma-separated list of English weekday names,
// e.g. "Sunday,Monday". Empty input means no closed days.
func ParseWeekdays(s string) ([]time.Weekday, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	names := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
	var out []time.Weekday
	for _, part := range strings.Split(s, ",") {
		wd, ok := names[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return nil, errs.Mark(errs.New("unknown weekday "+part), ErrInvalidWeekday)
		}
		out = append(out, wd)
	}
	return out, nil
}

// fineStep is the stride used to walk past the current time on same-day
// requests, so afternoon requests do not skip most of the afternoon when the
// gap is coarse.
func fineStep(gapMin int) int {
	const step = 15
	if gapMin < step {
		return gapMin
	}
	return step
}

// Candidates generates the raw slot starts for one day, before any conflict
// filtering. The lower bound is the opening time for future days; for the
// current day the start is advanced in fine steps until it is strictly after
// now. Candidates whose interval would run past closing are discarded.
func (p Policy) Candidates(date time.Time, now time.Time, durationMin, gapMin int) []TimeOfDay {
	if p.IsClosed(date) {
		return nil
	}

	t := p.Open
	sameDay := date.Year() == now.Year() && date.YearDay() == now.YearDay()
	if sameDay {
		nowMin := TimeOfDayFrom(now)
		fine := fineStep(gapMin)
		for t <= nowMin {
			t = t.Add(fine)
		}
	}

	var starts []TimeOfDay
	for ; t.Add(durationMin) <= p.Close; t = t.Add(gapMin) {
		starts = append(starts, t)
	}
	return starts
}

// FreeSlots composes candidate generation with conflict detection and returns
// the bookable start times in ascending order.
func (p Policy) FreeSlots(date time.Time, now time.Time, durationMin, gapMin int, busy []Interval) []TimeOfDay {
	var free []TimeOfDay
	for _, start := range p.Candidates(date, now, durationMin, gapMin) {
		if IsFree(NewInterval(start, durationMin), busy) {
			free = append(free, start)
		}
	}
	return free
}
