package bootstrap

import (
	"strings"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		NewCalendarPolicy,
	),
)

// NewCalendarPolicy translates the environment configuration into the
// domain-level calendar policy once, at startup.
func NewCalendarPolicy(cfg config.Config) (schedule.Policy, error) {
	open, err := schedule.ParseTimeOfDay(cfg.Calendar.OpenTime)
	if err != nil {
		return schedule.Policy{}, errs.Wrap(err, "invalid CALENDAR_OPEN_TIME")
	}

	closeAt, err := schedule.ParseTimeOfDay(cfg.Calendar.CloseTime)
	if err != nil {
		return schedule.Policy{}, errs.Wrap(err, "invalid CALENDAR_CLOSE_TIME")
	}

	closed, err := schedule.ParseWeekdays(strings.Join(cfg.Calendar.ClosedWeekdays, ","))
	if err != nil {
		return schedule.Policy{}, errs.Wrap(err, "invalid CALENDAR_CLOSED_WEEKDAYS")
	}

	return schedule.NewPolicy(open, closeAt, closed, cfg.Calendar.DefaultGapMin, cfg.Calendar.DefaultDurationMin)
}
