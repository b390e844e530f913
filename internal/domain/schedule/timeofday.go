package schedule

import (
	"fmt"
	"time"

	"salon-booking/internal/pkg/errs"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a clock time within a single day, in minutes since midnight.
type TimeOfDay int

var ErrInvalidTimeOfDay = errs.New("invalid time of day")

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidTimeOfDay
	}
	return TimeOfDay(hour*60 + minute), nil
}

// ParseTimeOfDay parses "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errs.Mark(err, ErrInvalidTimeOfDay)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// At anchors the time of day onto a calendar date.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}

// TimeOfDayFrom truncates a timestamp to its minute-of-day.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}
